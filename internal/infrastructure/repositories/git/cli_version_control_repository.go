package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

const diffExitCode = 1

// commandError describes a git invocation that exited non-zero.
type commandError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *commandError) Error() string {
	msg := fmt.Sprintf("git %s: exit status %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *commandError) Unwrap() error { return e.Err }

// commandRunner runs git with args in dir and returns its trimmed stdout.
type commandRunner func(ctx context.Context, dir string, args ...string) (string, error)

// CLIVersionControlRepository implements repositories.VersionControlRepository
// by running the git executable.
type CLIVersionControlRepository struct {
	dir    string
	remote string
	run    commandRunner
}

// NewCLIVersionControlRepository creates a git-CLI backed repository.
func NewCLIVersionControlRepository(dir, remote string) (repositories.VersionControlRepository, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return nil, fmt.Errorf("git executable not found: %w", err)
	}
	return &CLIVersionControlRepository{dir: dir, remote: remote, run: runGit}, nil
}

func (r *CLIVersionControlRepository) Fetch(ctx context.Context) (string, error) {
	return r.run(ctx, r.dir, "fetch", r.remote)
}

func (r *CLIVersionControlRepository) DefaultBranchName(ctx context.Context) (string, error) {
	// a failing `remote show` still prints what it knows
	output, err := r.run(ctx, r.dir, "remote", "show", r.remote)
	if branch, ok := parseDefaultBranch(output); ok {
		return branch, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrDefaultBranchNotFound, err)
	}
	return "", entities.ErrDefaultBranchNotFound
}

func (r *CLIVersionControlRepository) EnsureInSync(ctx context.Context, branch string) (string, error) {
	ref := r.remote + "/" + branch
	output, err := r.run(ctx, r.dir, "diff", "--exit-code", ref)
	if err != nil {
		var cmdErr *commandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode == diffExitCode {
			return output, fmt.Errorf("%w: %s", entities.ErrBranchDiverged, ref)
		}
		return output, err
	}
	return output, nil
}

func (r *CLIVersionControlRepository) ForceTag(ctx context.Context, tag string) (string, error) {
	return r.run(ctx, r.dir, "tag", "--force", tag)
}

func (r *CLIVersionControlRepository) PushTag(ctx context.Context, tag string) (string, error) {
	return r.run(ctx, r.dir, "push", "--force", r.remote, "refs/tags/"+tag)
}

func (r *CLIVersionControlRepository) ListTags(ctx context.Context, pattern string) ([]entities.Tag, error) {
	output, err := r.run(ctx, r.dir, "tag", "--list", pattern, tagListFormat)
	if err != nil {
		return nil, err
	}
	return parseTagList(output)
}

func (r *CLIVersionControlRepository) CurrentCommitShort(ctx context.Context) (string, error) {
	return r.run(ctx, r.dir, "log", "--pretty=%h", "--max-count=1")
}

func (r *CLIVersionControlRepository) CommitsSince(ctx context.Context, since string) ([]string, error) {
	args := []string{"log", "--pretty=%s"}
	if since != "" {
		args = append(args, "HEAD..."+since)
	}
	output, err := r.run(ctx, r.dir, args...)
	if err != nil {
		return nil, err
	}
	return parseSubjects(output), nil
}

// runGit executes git and converts a non-zero exit into a *commandError.
func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	logger.Debugf("Running git %s", strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := strings.TrimSpace(stdout.String())
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return output, &commandError{
			Args:     args,
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderr.String()),
			Err:      err,
		}
	}
	return output, nil
}
