//go:build unit

package commands_test

import (
	"github.com/rios0rios0/projecttools/internal/domain/entities"
	infraRepos "github.com/rios0rios0/projecttools/internal/infrastructure/repositories"
	"github.com/rios0rios0/projecttools/test/infrastructure/repositorydoubles"
)

// registryWith returns a registry whose default backend yields spy.
func registryWith(spy *repositorydoubles.SpyVersionControlRepository) *infraRepos.VersionControlRegistry {
	registry := infraRepos.NewVersionControlRegistry()
	registry.Register(entities.GitBackendCLI, spy.Factory())
	return registry
}
