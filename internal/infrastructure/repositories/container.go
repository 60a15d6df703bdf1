package repositories

import (
	"github.com/rios0rios0/projecttools/internal/domain/entities"
	domainRepos "github.com/rios0rios0/projecttools/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/projecttools/internal/infrastructure/repositories/git"
	pypiRepo "github.com/rios0rios0/projecttools/internal/infrastructure/repositories/pypi"
	reqRepo "github.com/rios0rios0/projecttools/internal/infrastructure/repositories/requirementsfile"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register version control registry with all git backends
	if err := container.Provide(func() *VersionControlRegistry {
		reg := NewVersionControlRegistry()
		reg.Register(entities.GitBackendCLI, gitRepo.NewCLIVersionControlRepository)
		reg.Register(entities.GitBackendGoGit, gitRepo.NewGoGitVersionControlRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.PackageIndexFactory {
		return pypiRepo.NewPackageIndexRepository
	}); err != nil {
		return err
	}

	if err := container.Provide(reqRepo.NewRequirementsFileRepository); err != nil {
		return err
	}

	return nil
}
