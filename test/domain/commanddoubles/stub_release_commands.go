//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/projecttools/internal/domain/commands"
	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// StubReleaseCandidateCommand is a stub implementation of commands.ReleaseCandidate.
type StubReleaseCandidateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.ReleaseCandidate = (*StubReleaseCandidateCommand)(nil)

func (s *StubReleaseCandidateCommand) Execute(_ context.Context, settings *entities.Settings) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.ExecuteErr
}

// StubCheckCommitMessagesCommand is a stub implementation of commands.CheckCommitMessages.
type StubCheckCommitMessagesCommand struct {
	ExecuteCallCount int
	Diagnostics      []string
	ExecuteErr       error
}

var _ commands.CheckCommitMessages = (*StubCheckCommitMessagesCommand)(nil)

func (s *StubCheckCommitMessagesCommand) Execute(_ context.Context, _ *entities.Settings) ([]string, error) {
	s.ExecuteCallCount++
	return s.Diagnostics, s.ExecuteErr
}

// StubChangelogCommand is a stub implementation of commands.Changelog.
type StubChangelogCommand struct {
	ExecuteCallCount int
	Lines            []string
	ExecuteErr       error
	LastOpts         commands.ChangelogOptions
}

var _ commands.Changelog = (*StubChangelogCommand)(nil)

func (s *StubChangelogCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.ChangelogOptions,
) ([]string, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Lines, s.ExecuteErr
}

// StubVersionCommand is a stub implementation of commands.Version.
type StubVersionCommand struct {
	ExecuteCallCount int
	Version          string
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.VersionOptions
}

var _ commands.Version = (*StubVersionCommand)(nil)

func (s *StubVersionCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.VersionOptions,
) (string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Version, s.ExecuteErr
}
