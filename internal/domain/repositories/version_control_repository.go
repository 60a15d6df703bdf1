package repositories

import (
	"context"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
)

// VersionControlRepository abstracts the git operations the release tool
// needs. Implementations own all parsing of git output so the domain only
// deals with typed values.
type VersionControlRepository interface {
	// Fetch updates the remote-tracking refs and returns any tool output.
	Fetch(ctx context.Context) (string, error)

	// DefaultBranchName returns the branch the remote's HEAD points to.
	DefaultBranchName(ctx context.Context) (string, error)

	// EnsureInSync fails with entities.ErrBranchDiverged when the local
	// checkout differs from the remote-tracking copy of branch.
	EnsureInSync(ctx context.Context, branch string) (string, error)

	// ForceTag creates or moves tag to the current commit.
	ForceTag(ctx context.Context, tag string) (string, error)

	// PushTag pushes tag to the remote, replacing the remote copy.
	PushTag(ctx context.Context, tag string) (string, error)

	// ListTags returns the tags matching a glob pattern such as "v*".
	ListTags(ctx context.Context, pattern string) ([]entities.Tag, error)

	// CurrentCommitShort returns the abbreviated hash of HEAD.
	CurrentCommitShort(ctx context.Context) (string, error)

	// CommitsSince returns the subjects of the commits between since and
	// HEAD, oldest first. An empty since walks the whole history.
	CommitsSince(ctx context.Context, since string) ([]string, error)
}

// VersionControlFactory opens a VersionControlRepository for a working
// directory and remote name.
type VersionControlFactory func(dir, remote string) (VersionControlRepository, error)
