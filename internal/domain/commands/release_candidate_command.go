package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	infraRepos "github.com/rios0rios0/projecttools/internal/infrastructure/repositories"
)

// ReleaseCandidate is the interface for the release_candidate command.
type ReleaseCandidate interface {
	Execute(ctx context.Context, settings *entities.Settings) error
}

// ReleaseCandidateCommand moves the release-candidate tag to the current
// commit and pushes it, which triggers the release pipeline.
type ReleaseCandidateCommand struct {
	registry *infraRepos.VersionControlRegistry
}

// NewReleaseCandidateCommand creates a new ReleaseCandidateCommand.
func NewReleaseCandidateCommand(registry *infraRepos.VersionControlRegistry) *ReleaseCandidateCommand {
	return &ReleaseCandidateCommand{registry: registry}
}

// Execute fetches, checks that the checkout matches the remote default
// branch, then force-tags and pushes.
func (it *ReleaseCandidateCommand) Execute(ctx context.Context, settings *entities.Settings) error {
	vcs, err := openVersionControl(it.registry, settings)
	if err != nil {
		return err
	}

	output, err := vcs.Fetch(ctx)
	logOutput(output)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}

	branch, err := vcs.DefaultBranchName(ctx)
	if err != nil {
		return err
	}
	logger.Infof("Default branch: %s", branch)

	output, err = vcs.EnsureInSync(ctx, branch)
	logOutput(output)
	if err != nil {
		return err
	}

	tag := settings.ReleaseCandidateTag
	output, err = vcs.ForceTag(ctx, tag)
	logOutput(output)
	if err != nil {
		return fmt.Errorf("failed to tag %s: %w", tag, err)
	}

	output, err = vcs.PushTag(ctx, tag)
	logOutput(output)
	if err != nil {
		return fmt.Errorf("failed to push %s: %w", tag, err)
	}

	logger.Infof("Pushed %s to %s", tag, settings.Remote)
	return nil
}

func logOutput(output string) {
	if output != "" {
		logger.Info(output)
	}
}
