package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/projecttools/internal/infrastructure/repositories"
)

// openVersionControl opens the configured git backend on the project.
func openVersionControl(
	registry *infraRepos.VersionControlRegistry,
	settings *entities.Settings,
) (repositories.VersionControlRepository, error) {
	vcs, err := registry.Get(settings.GitBackend, settings.ProjectDir, settings.Remote)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	logger.Debugf("Using %s git backend in %s", settings.GitBackend, settings.ProjectDir)
	return vcs, nil
}

// latestRelease returns the highest "v<semver>" tag of the repository.
func latestRelease(
	ctx context.Context,
	vcs repositories.VersionControlRepository,
) (entities.VersionTag, error) {
	tags, err := vcs.ListTags(ctx, entities.VersionTagPattern)
	if err != nil {
		return entities.VersionTag{}, fmt.Errorf("failed to list tags: %w", err)
	}
	latest := entities.LatestVersionTag(tags)
	logger.Debugf("Latest release: %s (%s)", latest.Version, latest.CommitHash)
	return latest, nil
}

// commitsSince lists commit subjects after commitHash, falling back to the
// configured start commit when commitHash is empty.
func commitsSince(
	ctx context.Context,
	vcs repositories.VersionControlRepository,
	settings *entities.Settings,
	commitHash string,
) ([]string, error) {
	since := commitHash
	if since == "" {
		since = settings.StartCommit
	}
	subjects, err := vcs.CommitsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to read commit log: %w", err)
	}
	logger.Debugf("Found %d commits since %q", len(subjects), since)
	return subjects, nil
}

// commitsSinceLatestRelease classifies every commit after the latest release.
func commitsSinceLatestRelease(
	ctx context.Context,
	vcs repositories.VersionControlRepository,
	settings *entities.Settings,
) (entities.VersionTag, entities.CommitsByCategory, error) {
	latest, err := latestRelease(ctx, vcs)
	if err != nil {
		return entities.VersionTag{}, nil, err
	}
	subjects, err := commitsSince(ctx, vcs, settings, latest.CommitHash)
	if err != nil {
		return entities.VersionTag{}, nil, err
	}
	return latest, entities.ClassifyCommits(subjects), nil
}
