package commands

import (
	"context"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

// GetRequirements is the interface for the get command.
type GetRequirements interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RequirementsOptions) ([]entities.Requirement, error)
}

// GetRequirementsCommand lists every pinned requirement.
type GetRequirementsCommand struct {
	requirements repositories.RequirementsRepository
}

// NewGetRequirementsCommand creates a new GetRequirementsCommand.
func NewGetRequirementsCommand(requirements repositories.RequirementsRepository) *GetRequirementsCommand {
	return &GetRequirementsCommand{requirements: requirements}
}

// Execute reads the requirements file and its includes.
func (it *GetRequirementsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts RequirementsOptions,
) ([]entities.Requirement, error) {
	return it.requirements.Read(ctx, requirementsPath(settings, opts))
}
