package git

import (
	"context"

	gogit "github.com/go-git/go-git/v5"
)

// ParseTagList exports parseTagList for testing.
var ParseTagList = parseTagList //nolint:gochecknoglobals // test export

// ParseDefaultBranch exports parseDefaultBranch for testing.
var ParseDefaultBranch = parseDefaultBranch //nolint:gochecknoglobals // test export

// ParseSubjects exports parseSubjects for testing.
var ParseSubjects = parseSubjects //nolint:gochecknoglobals // test export

// CommitSubject exports commitSubject for testing.
var CommitSubject = commitSubject //nolint:gochecknoglobals // test export

// TagListFormat exports tagListFormat for testing.
const TagListFormat = tagListFormat

// NewCLIVersionControlRepositoryWithRunner creates a CLI repository that
// runs the given function instead of the git executable.
func NewCLIVersionControlRepositoryWithRunner(
	dir, remote string,
	run func(ctx context.Context, dir string, args ...string) (string, error),
) *CLIVersionControlRepository {
	return &CLIVersionControlRepository{dir: dir, remote: remote, run: run}
}

// NewCommandError builds the error a failing git invocation returns.
func NewCommandError(args []string, exitCode int, stderr string) error {
	return &commandError{Args: args, ExitCode: exitCode, Stderr: stderr}
}

// NewGoGitVersionControlRepositoryFromRepo wraps an already opened repository.
func NewGoGitVersionControlRepositoryFromRepo(repo *gogit.Repository, remote string) *GoGitVersionControlRepository {
	return &GoGitVersionControlRepository{repo: repo, remote: remote}
}
