//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

// StubPackageIndexRepository implements repositories.PackageIndexRepository
// with a fixed name-to-version table.
type StubPackageIndexRepository struct {
	Versions map[string]string
	// Errors fails the lookup of specific packages.
	Errors map[string]error

	LookedUp []string
	BaseURL  string
}

var _ repositories.PackageIndexRepository = (*StubPackageIndexRepository)(nil)

// Factory returns a repositories.PackageIndexFactory that records the base
// URL and yields the stub.
func (s *StubPackageIndexRepository) Factory() repositories.PackageIndexFactory {
	return func(baseURL string) repositories.PackageIndexRepository {
		s.BaseURL = baseURL
		return s
	}
}

func (s *StubPackageIndexRepository) LatestVersion(_ context.Context, name string) (string, error) {
	s.LookedUp = append(s.LookedUp, name)
	if err, ok := s.Errors[name]; ok {
		return "", err
	}
	version, ok := s.Versions[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", entities.ErrPackageNotFound, name)
	}
	return version, nil
}
