package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewReleaseCandidateCommand,
		NewCheckCommitMessagesCommand,
		NewChangelogCommand,
		NewVersionCommand,
		NewGetRequirementsCommand,
		NewGetUpdatesCommand,
		NewUpdateRequirementsCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *ReleaseCandidateCommand) ReleaseCandidate { return impl },
		func(impl *CheckCommitMessagesCommand) CheckCommitMessages { return impl },
		func(impl *ChangelogCommand) Changelog { return impl },
		func(impl *VersionCommand) Version { return impl },
		func(impl *GetRequirementsCommand) GetRequirements { return impl },
		func(impl *GetUpdatesCommand) GetUpdates { return impl },
		func(impl *UpdateRequirementsCommand) UpdateRequirements { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
