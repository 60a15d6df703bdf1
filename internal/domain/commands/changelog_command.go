package commands

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	infraRepos "github.com/rios0rios0/projecttools/internal/infrastructure/repositories"
)

// Changelog is the interface for the changelog command.
type Changelog interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ChangelogOptions) ([]string, error)
}

// ChangelogOptions holds runtime options for the changelog command.
type ChangelogOptions struct {
	// WriteFile, when set, is a Keep-a-Changelog file whose Unreleased
	// section receives the rendered lines.
	WriteFile string
}

// ChangelogCommand renders the commits since the latest release.
type ChangelogCommand struct {
	registry *infraRepos.VersionControlRegistry
}

// NewChangelogCommand creates a new ChangelogCommand.
func NewChangelogCommand(registry *infraRepos.VersionControlRegistry) *ChangelogCommand {
	return &ChangelogCommand{registry: registry}
}

// Execute returns the changelog lines and optionally writes them to a file.
func (it *ChangelogCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ChangelogOptions,
) ([]string, error) {
	vcs, err := openVersionControl(it.registry, settings)
	if err != nil {
		return nil, err
	}

	_, commits, err := commitsSinceLatestRelease(ctx, vcs, settings)
	if err != nil {
		return nil, err
	}
	lines := entities.FormatChangelog(commits)

	if opts.WriteFile != "" {
		if writeErr := writeUnreleased(opts.WriteFile, lines); writeErr != nil {
			return lines, writeErr
		}
	}
	return lines, nil
}

func writeUnreleased(path string, lines []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	modified := entities.InsertUnreleasedEntries(string(content), lines)
	if modified == string(content) {
		logger.Warnf("Nothing written to %s (no entries or no \"## [Unreleased]\" section)", path)
		return nil
	}

	if err = os.WriteFile(path, []byte(modified), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	logger.Infof("Updated %s", path)
	return nil
}
