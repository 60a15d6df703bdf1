package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

// UpdateRequirements is the interface for the update command.
type UpdateRequirements interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RequirementsOptions) ([]entities.Update, error)
}

// UpdateRequirementsCommand rewrites outdated pins to the latest version.
type UpdateRequirementsCommand struct {
	requirements repositories.RequirementsRepository
	newIndex     repositories.PackageIndexFactory
}

// NewUpdateRequirementsCommand creates a new UpdateRequirementsCommand.
func NewUpdateRequirementsCommand(
	requirements repositories.RequirementsRepository,
	newIndex repositories.PackageIndexFactory,
) *UpdateRequirementsCommand {
	return &UpdateRequirementsCommand{requirements: requirements, newIndex: newIndex}
}

// Execute applies each update as soon as it is found. On failure the
// updates applied so far are returned with the error; they stay on disk.
func (it *UpdateRequirementsCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts RequirementsOptions,
) ([]entities.Update, error) {
	applied := make([]entities.Update, 0)
	err := forEachUpdate(
		ctx, it.requirements, it.newIndex(settings.IndexURL), requirementsPath(settings, opts),
		func(update entities.Update) error {
			if applyErr := it.requirements.Apply(ctx, update); applyErr != nil {
				return fmt.Errorf("failed to update %s: %w", update.Requirement.Name, applyErr)
			}
			logger.Infof("Updated %s", update)
			applied = append(applied, update)
			return nil
		},
	)
	return applied, err
}
