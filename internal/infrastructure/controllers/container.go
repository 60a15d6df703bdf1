package controllers

import (
	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"go.uber.org/dig"
)

// ReleaseControllers are the subcommands of the release binary.
type ReleaseControllers []entities.Controller

// RequirementsControllers are the subcommands of the requirements binary.
type RequirementsControllers []entities.Controller

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewReleaseCandidateController,
		NewCheckCommitMessagesController,
		NewChangelogController,
		NewVersionController,
		NewGetRequirementsController,
		NewGetUpdatesController,
		NewUpdateRequirementsController,
		NewReleaseControllers,
		NewRequirementsControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewReleaseControllers aggregates the release controllers in help order.
func NewReleaseControllers(
	releaseCandidate *ReleaseCandidateController,
	checkCommitMessages *CheckCommitMessagesController,
	changelog *ChangelogController,
	version *VersionController,
) ReleaseControllers {
	return ReleaseControllers{
		releaseCandidate,
		checkCommitMessages,
		changelog,
		version,
	}
}

// NewRequirementsControllers aggregates the requirements controllers.
func NewRequirementsControllers(
	get *GetRequirementsController,
	getUpdates *GetUpdatesController,
	update *UpdateRequirementsController,
) RequirementsControllers {
	return RequirementsControllers{
		get,
		getUpdates,
		update,
	}
}
