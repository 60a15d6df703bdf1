package commands

import (
	"context"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

// GetUpdates is the interface for the get_updates command.
type GetUpdates interface {
	Execute(ctx context.Context, settings *entities.Settings, opts RequirementsOptions) ([]entities.Update, error)
}

// GetUpdatesCommand reports requirements with a newer published version.
type GetUpdatesCommand struct {
	requirements repositories.RequirementsRepository
	newIndex     repositories.PackageIndexFactory
}

// NewGetUpdatesCommand creates a new GetUpdatesCommand.
func NewGetUpdatesCommand(
	requirements repositories.RequirementsRepository,
	newIndex repositories.PackageIndexFactory,
) *GetUpdatesCommand {
	return &GetUpdatesCommand{requirements: requirements, newIndex: newIndex}
}

// Execute returns one update per outdated requirement, in file order.
func (it *GetUpdatesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts RequirementsOptions,
) ([]entities.Update, error) {
	updates := make([]entities.Update, 0)
	err := forEachUpdate(
		ctx, it.requirements, it.newIndex(settings.IndexURL), requirementsPath(settings, opts),
		func(update entities.Update) error {
			updates = append(updates, update)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return updates, nil
}
