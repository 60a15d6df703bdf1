//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

// SpyRequirementsRepository implements repositories.RequirementsRepository
// as a configurable spy.
type SpyRequirementsRepository struct {
	// --- Read ---
	Requirements []entities.Requirement
	ReadErr      error
	ReadPaths    []string

	// --- Apply ---
	// ApplyErrs fails Apply for the named requirements.
	ApplyErrs map[string]error
	Applied   []entities.Update
}

var _ repositories.RequirementsRepository = (*SpyRequirementsRepository)(nil)

func (s *SpyRequirementsRepository) Read(_ context.Context, path string) ([]entities.Requirement, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	return s.Requirements, s.ReadErr
}

func (s *SpyRequirementsRepository) Apply(_ context.Context, update entities.Update) error {
	if err, ok := s.ApplyErrs[update.Requirement.Name]; ok {
		return err
	}
	s.Applied = append(s.Applied, update)
	return nil
}
