package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	infraRepos "github.com/rios0rios0/projecttools/internal/infrastructure/repositories"
)

// Version is the interface for the version command.
type Version interface {
	Execute(ctx context.Context, settings *entities.Settings, opts VersionOptions) (string, error)
}

// VersionOptions holds runtime options for the version command.
type VersionOptions struct {
	CurrentRef string // Ref the build runs on, e.g. the value of $GITHUB_REF
}

// VersionCommand derives the next version from the commits since the
// latest release.
type VersionCommand struct {
	registry *infraRepos.VersionControlRegistry
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(registry *infraRepos.VersionControlRegistry) *VersionCommand {
	return &VersionCommand{registry: registry}
}

// Execute returns the next version, with a "+<commit>" suffix outside of
// release-candidate builds.
func (it *VersionCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts VersionOptions,
) (string, error) {
	vcs, err := openVersionControl(it.registry, settings)
	if err != nil {
		return "", err
	}

	latest, commits, err := commitsSinceLatestRelease(ctx, vcs, settings)
	if err != nil {
		return "", err
	}
	next := entities.NextVersion(latest, commits)

	onReleaseCandidate := settings.OnReleaseCandidate(opts.CurrentRef)
	shortCommit := ""
	if !onReleaseCandidate {
		shortCommit, err = vcs.CurrentCommitShort(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to read current commit: %w", err)
		}
	}

	version := entities.FormatVersion(next, shortCommit, onReleaseCandidate)
	logger.Debugf("Next version after %s: %s", latest.Version, version)
	return version, nil
}
