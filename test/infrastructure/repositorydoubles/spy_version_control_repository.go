//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

// SpyVersionControlRepository implements repositories.VersionControlRepository
// as a configurable spy. Configure the response fields for the methods your
// test exercises, then inspect Calls and the recorded arguments.
type SpyVersionControlRepository struct {
	// --- Fetch ---
	FetchOutput string
	FetchErr    error

	// --- DefaultBranchName ---
	DefaultBranch    string
	DefaultBranchErr error

	// --- EnsureInSync ---
	InSyncOutput string
	InSyncErr    error
	SyncedBranch string

	// --- ForceTag / PushTag ---
	ForceTagErr error
	PushTagErr  error
	TaggedNames []string
	PushedNames []string

	// --- ListTags ---
	Tags        []entities.Tag
	ListTagsErr error
	TagPatterns []string

	// --- CurrentCommitShort ---
	ShortCommit    string
	ShortCommitErr error

	// --- CommitsSince ---
	Subjects        []string
	CommitsSinceErr error
	SinceArgs       []string

	// Calls lists the invoked method names in order.
	Calls []string
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

// Factory returns a repositories.VersionControlFactory that always yields the spy.
func (s *SpyVersionControlRepository) Factory() repositories.VersionControlFactory {
	return func(_, _ string) (repositories.VersionControlRepository, error) {
		return s, nil
	}
}

func (s *SpyVersionControlRepository) Fetch(_ context.Context) (string, error) {
	s.Calls = append(s.Calls, "Fetch")
	return s.FetchOutput, s.FetchErr
}

func (s *SpyVersionControlRepository) DefaultBranchName(_ context.Context) (string, error) {
	s.Calls = append(s.Calls, "DefaultBranchName")
	return s.DefaultBranch, s.DefaultBranchErr
}

func (s *SpyVersionControlRepository) EnsureInSync(_ context.Context, branch string) (string, error) {
	s.Calls = append(s.Calls, "EnsureInSync")
	s.SyncedBranch = branch
	return s.InSyncOutput, s.InSyncErr
}

func (s *SpyVersionControlRepository) ForceTag(_ context.Context, tag string) (string, error) {
	s.Calls = append(s.Calls, "ForceTag")
	s.TaggedNames = append(s.TaggedNames, tag)
	return "", s.ForceTagErr
}

func (s *SpyVersionControlRepository) PushTag(_ context.Context, tag string) (string, error) {
	s.Calls = append(s.Calls, "PushTag")
	s.PushedNames = append(s.PushedNames, tag)
	return "", s.PushTagErr
}

func (s *SpyVersionControlRepository) ListTags(_ context.Context, pattern string) ([]entities.Tag, error) {
	s.Calls = append(s.Calls, "ListTags")
	s.TagPatterns = append(s.TagPatterns, pattern)
	return s.Tags, s.ListTagsErr
}

func (s *SpyVersionControlRepository) CurrentCommitShort(_ context.Context) (string, error) {
	s.Calls = append(s.Calls, "CurrentCommitShort")
	return s.ShortCommit, s.ShortCommitErr
}

func (s *SpyVersionControlRepository) CommitsSince(_ context.Context, since string) ([]string, error) {
	s.Calls = append(s.Calls, "CommitsSince")
	s.SinceArgs = append(s.SinceArgs, since)
	return s.Subjects, s.CommitsSinceErr
}
