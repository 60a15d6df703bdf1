package git

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

const shortHashLength = 7

// GoGitVersionControlRepository implements repositories.VersionControlRepository
// in pure Go, without a git executable.
type GoGitVersionControlRepository struct {
	repo   *gogit.Repository
	remote string
}

// NewGoGitVersionControlRepository opens the repository containing dir.
func NewGoGitVersionControlRepository(dir, remote string) (repositories.VersionControlRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	return &GoGitVersionControlRepository{repo: repo, remote: remote}, nil
}

func (r *GoGitVersionControlRepository) Fetch(ctx context.Context) (string, error) {
	err := r.repo.FetchContext(ctx, &gogit.FetchOptions{RemoteName: r.remote})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return err.Error(), nil
	}
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", r.remote, err)
	}
	return "", nil
}

// DefaultBranchName asks the remote for its HEAD and falls back to the
// locally recorded refs/remotes/<remote>/HEAD.
func (r *GoGitVersionControlRepository) DefaultBranchName(ctx context.Context) (string, error) {
	branch, err := r.advertisedHead(ctx)
	if err == nil {
		return branch, nil
	}
	logger.Debugf("[go-git] remote HEAD lookup failed: %v", err)

	ref, err := r.repo.Reference(plumbing.NewRemoteHEADReferenceName(r.remote), false)
	if err != nil || ref.Type() != plumbing.SymbolicReference {
		return "", entities.ErrDefaultBranchNotFound
	}
	return strings.TrimPrefix(ref.Target().Short(), r.remote+"/"), nil
}

func (r *GoGitVersionControlRepository) advertisedHead(ctx context.Context) (string, error) {
	remote, err := r.repo.Remote(r.remote)
	if err != nil {
		return "", err
	}
	refs, err := remote.ListContext(ctx, &gogit.ListOptions{})
	if err != nil {
		return "", err
	}
	for _, ref := range refs {
		if ref.Name() == plumbing.HEAD && ref.Type() == plumbing.SymbolicReference {
			return ref.Target().Short(), nil
		}
	}
	return "", entities.ErrDefaultBranchNotFound
}

// EnsureInSync mirrors `git diff --exit-code <remote>/<branch>`: the tree
// of HEAD and of the remote branch must match and the worktree must hold
// no tracked changes.
func (r *GoGitVersionControlRepository) EnsureInSync(_ context.Context, branch string) (string, error) {
	remoteRef, err := r.repo.Reference(plumbing.NewRemoteReferenceName(r.remote, branch), true)
	if err != nil {
		return "", fmt.Errorf("resolving %s/%s: %w", r.remote, branch, err)
	}
	remoteCommit, err := r.repo.CommitObject(remoteRef.Hash())
	if err != nil {
		return "", err
	}
	headCommit, err := r.headCommit()
	if err != nil {
		return "", err
	}

	ref := r.remote + "/" + branch
	if headCommit.TreeHash != remoteCommit.TreeHash {
		return "", fmt.Errorf("%w: %s", entities.ErrBranchDiverged, ref)
	}

	dirty, err := r.trackedChanges()
	if err != nil {
		return "", err
	}
	if len(dirty) > 0 {
		return strings.Join(dirty, "\n"), fmt.Errorf("%w: %s", entities.ErrBranchDiverged, ref)
	}
	return "", nil
}

func (r *GoGitVersionControlRepository) trackedChanges() ([]string, error) {
	worktree, err := r.repo.Worktree()
	if errors.Is(err, gogit.ErrIsBareRepository) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}

	changed := make([]string, 0)
	for file, s := range status {
		if s.Staging == gogit.Untracked && s.Worktree == gogit.Untracked {
			continue
		}
		if s.Staging != gogit.Unmodified || s.Worktree != gogit.Unmodified {
			changed = append(changed, file)
		}
	}
	sort.Strings(changed)
	return changed, nil
}

func (r *GoGitVersionControlRepository) ForceTag(_ context.Context, tag string) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	if err = r.repo.DeleteTag(tag); err != nil && !errors.Is(err, gogit.ErrTagNotFound) {
		return "", fmt.Errorf("deleting tag %s: %w", tag, err)
	}
	if _, err = r.repo.CreateTag(tag, head.Hash(), nil); err != nil {
		return "", fmt.Errorf("creating tag %s: %w", tag, err)
	}
	return "", nil
}

func (r *GoGitVersionControlRepository) PushTag(ctx context.Context, tag string) (string, error) {
	refName := plumbing.NewTagReferenceName(tag)
	err := r.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: r.remote,
		RefSpecs:   []config.RefSpec{config.RefSpec(fmt.Sprintf("+%s:%s", refName, refName))},
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return err.Error(), nil
	}
	if err != nil {
		return "", fmt.Errorf("pushing %s: %w", tag, err)
	}
	return "", nil
}

// ListTags returns tags matching pattern, with annotated tags peeled to
// the commit they point to.
func (r *GoGitVersionControlRepository) ListTags(_ context.Context, pattern string) ([]entities.Tag, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	tags := make([]entities.Tag, 0)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if ok, _ := path.Match(pattern, name); !ok {
			return nil
		}
		hash := ref.Hash()
		if tagObj, tagErr := r.repo.TagObject(hash); tagErr == nil {
			commit, commitErr := tagObj.Commit()
			if commitErr != nil {
				return fmt.Errorf("peeling tag %s: %w", name, commitErr)
			}
			hash = commit.Hash
		}
		tags = append(tags, entities.Tag{Name: name, CommitHash: hash.String()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })
	return tags, nil
}

func (r *GoGitVersionControlRepository) CurrentCommitShort(_ context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}
	return head.Hash().String()[:shortHashLength], nil
}

// CommitsSince returns the subjects of the symmetric difference between
// HEAD and since, the same set `git log HEAD...<since>` prints.
func (r *GoGitVersionControlRepository) CommitsSince(_ context.Context, since string) ([]string, error) {
	head, err := r.headCommit()
	if err != nil {
		return nil, err
	}
	fromHead, err := r.ancestors(head)
	if err != nil {
		return nil, err
	}

	selected := fromHead
	if since != "" {
		base, resolveErr := r.resolveCommit(since)
		if resolveErr != nil {
			return nil, resolveErr
		}
		fromBase, walkErr := r.ancestors(base)
		if walkErr != nil {
			return nil, walkErr
		}
		selected = symmetricDifference(fromHead, fromBase)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Committer.When.After(selected[j].Committer.When)
	})
	slices.Reverse(selected) // oldest first

	subjects := make([]string, 0, len(selected))
	for _, commit := range selected {
		subjects = append(subjects, commitSubject(commit.Message))
	}
	return subjects, nil
}

func (r *GoGitVersionControlRepository) headCommit() (*object.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD reference: %w", err)
	}
	return r.repo.CommitObject(head.Hash())
}

// resolveCommit resolves a revision, peeling annotated tags.
func (r *GoGitVersionControlRepository) resolveCommit(rev string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", rev, err)
	}
	if commit, commitErr := r.repo.CommitObject(*hash); commitErr == nil {
		return commit, nil
	}
	tagObj, err := r.repo.TagObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", rev, err)
	}
	return tagObj.Commit()
}

// ancestors returns commit and everything reachable from it, newest first.
func (r *GoGitVersionControlRepository) ancestors(commit *object.Commit) ([]*object.Commit, error) {
	iter, err := r.repo.Log(&gogit.LogOptions{From: commit.Hash, Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("walking history from %s: %w", commit.Hash, err)
	}
	commits := make([]*object.Commit, 0)
	err = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, c)
		return nil
	})
	return commits, err
}

func symmetricDifference(a, b []*object.Commit) []*object.Commit {
	inA := make(map[plumbing.Hash]bool, len(a))
	for _, c := range a {
		inA[c.Hash] = true
	}
	inB := make(map[plumbing.Hash]bool, len(b))
	for _, c := range b {
		inB[c.Hash] = true
	}

	result := make([]*object.Commit, 0)
	for _, c := range a {
		if !inB[c.Hash] {
			result = append(result, c)
		}
	}
	for _, c := range b {
		if !inA[c.Hash] {
			result = append(result, c)
		}
	}
	return result
}

// commitSubject joins the first paragraph of a message into one line, as
// git's %s placeholder does.
func commitSubject(message string) string {
	lines := make([]string, 0)
	for _, line := range strings.Split(strings.TrimLeft(message, "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, " ")
}
