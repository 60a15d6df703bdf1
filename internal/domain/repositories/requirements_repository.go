package repositories

import (
	"context"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// RequirementsRepository reads and rewrites requirements files.
type RequirementsRepository interface {
	// Read returns the pins of path and of every file it includes, in file
	// order with includes expanded in place.
	Read(ctx context.Context, path string) ([]entities.Requirement, error)

	// Apply rewrites the requirement's source file so that it pins the
	// updated version.
	Apply(ctx context.Context, update entities.Update) error
}
