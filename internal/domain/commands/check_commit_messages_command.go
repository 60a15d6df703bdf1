package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	infraRepos "github.com/rios0rios0/projecttools/internal/infrastructure/repositories"
)

const invalidMessageFmt = "Invalid commit message: %s"

// CheckCommitMessages is the interface for the check_commit_messages command.
type CheckCommitMessages interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]string, error)
}

// CheckCommitMessagesCommand validates every commit of the history (or
// since the configured start commit) against the "[tag] message" grammar.
type CheckCommitMessagesCommand struct {
	registry *infraRepos.VersionControlRegistry
}

// NewCheckCommitMessagesCommand creates a new CheckCommitMessagesCommand.
func NewCheckCommitMessagesCommand(registry *infraRepos.VersionControlRegistry) *CheckCommitMessagesCommand {
	return &CheckCommitMessagesCommand{registry: registry}
}

// Execute returns one diagnostic per invalid commit together with
// entities.ErrInvalidCommitMessages, or no diagnostics and a nil error.
func (it *CheckCommitMessagesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]string, error) {
	vcs, err := openVersionControl(it.registry, settings)
	if err != nil {
		return nil, err
	}

	subjects, err := commitsSince(ctx, vcs, settings, "")
	if err != nil {
		return nil, err
	}

	invalid := entities.ClassifyCommits(subjects).Invalid()
	diagnostics := make([]string, 0, len(invalid))
	for _, message := range invalid {
		diagnostics = append(diagnostics, fmt.Sprintf(invalidMessageFmt, message))
	}
	if len(diagnostics) > 0 {
		return diagnostics, fmt.Errorf("%w: %d of %d", entities.ErrInvalidCommitMessages, len(invalid), len(subjects))
	}
	return diagnostics, nil
}
