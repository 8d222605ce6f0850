package vcs

import (
	"context"
	"errors"
	"fmt"
	"path"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const stashRef plumbing.ReferenceName = "refs/stash"

// GoGitBackend implements Backend with go-git, without a git binary. The
// repository is reopened on every call so nothing outlives one query.
type GoGitBackend struct {
	Dir string
}

// NewGoGitBackend returns a go-git backend rooted at dir.
func NewGoGitBackend(dir string) *GoGitBackend {
	if dir == "" {
		dir = "."
	}
	return &GoGitBackend{Dir: dir}
}

func (b *GoGitBackend) open(ctx context.Context) (*git.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo, err := git.PlainOpenWithOptions(b.Dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, ErrNotRepository
	}
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	return repo, nil
}

func (b *GoGitBackend) IsRepository(ctx context.Context) (bool, error) {
	repo, err := b.open(ctx)
	if errors.Is(err, ErrNotRepository) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	// Bare repositories have no working tree to report on.
	if _, err := repo.Worktree(); err != nil {
		return false, nil
	}
	return true, nil
}

func (b *GoGitBackend) RemoteURL(ctx context.Context, remote string) (string, error) {
	repo, err := b.open(ctx)
	if err != nil {
		return "", err
	}
	r, err := repo.Remote(remote)
	if err != nil {
		return "", fmt.Errorf("remote %s: %w", remote, err)
	}
	urls := r.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

func (b *GoGitBackend) Head(ctx context.Context) (Head, error) {
	repo, err := b.open(ctx)
	if err != nil {
		return Head{}, err
	}

	branch := ""
	if sym, err := repo.Storer.Reference(plumbing.HEAD); err == nil &&
		sym.Type() == plumbing.SymbolicReference && sym.Target().IsBranch() {
		branch = sym.Target().Short()
	}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return Unborn(branch), nil
	}
	if err != nil {
		return Head{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	if head.Name().IsBranch() {
		return OnBranch(head.Name().Short()), nil
	}
	return Detached(head.Hash().String()), nil
}

func (b *GoGitBackend) StatusTally(ctx context.Context) (Tally, error) {
	repo, err := b.open(ctx)
	if err != nil {
		return Tally{}, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return Tally{}, fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return Tally{}, fmt.Errorf("status: %w", err)
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return Tally{}, fmt.Errorf("read index: %w", err)
	}
	sum := summarizeIndex(idx)

	t := Tally{Conflicts: len(sum.unmerged)}
	untracked := make(map[string]struct{})
	for name, fs := range status {
		if _, ok := sum.unmerged[name]; ok {
			continue
		}
		if fs.Staging == git.Untracked || fs.Worktree == git.Untracked {
			untracked[sum.untrackedKey(name)] = struct{}{}
			continue
		}
		t.addFileStatus(fs)
	}
	t.Untracked = len(untracked)
	return t, nil
}

// addFileStatus counts a tracked go-git status entry as staged, unstaged or
// both, like the porcelain classifier does for changed records.
func (t *Tally) addFileStatus(fs *git.FileStatus) {
	if fs == nil {
		return
	}
	if fs.Staging != git.Unmodified {
		t.Staged++
	}
	if fs.Worktree != git.Unmodified {
		t.Unstaged++
	}
}

// indexSummary holds what the tally needs from the index that go-git's
// worktree status does not report.
type indexSummary struct {
	// unmerged holds paths with a conflict stage entry. Status does not
	// flag these as unmerged.
	unmerged map[string]struct{}
	// dirs holds every directory containing at least one tracked path.
	dirs map[string]struct{}
}

func summarizeIndex(idx *index.Index) indexSummary {
	sum := indexSummary{
		unmerged: make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
	}
	for _, e := range idx.Entries {
		// Merged entries decode as stage 0; index.Merged equals AncestorMode.
		if e.Stage != 0 {
			sum.unmerged[e.Name] = struct{}{}
		}
		for dir := path.Dir(e.Name); dir != "."; dir = path.Dir(dir) {
			if _, seen := sum.dirs[dir]; seen {
				break
			}
			sum.dirs[dir] = struct{}{}
		}
	}
	return sum
}

// untrackedKey collapses an untracked path to its shallowest directory that
// holds no tracked files, the way `--untracked-files=normal` reports it.
func (s indexSummary) untrackedKey(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] != '/' {
			continue
		}
		if _, tracked := s.dirs[name[:i]]; !tracked {
			return name[:i+1]
		}
	}
	return name
}

func (b *GoGitBackend) AheadBehind(ctx context.Context, branch string) (int, int, error) {
	if branch == "" {
		return 0, 0, nil
	}
	repo, err := b.open(ctx)
	if err != nil {
		return 0, 0, err
	}

	cfg, err := repo.Config()
	if err != nil {
		return 0, 0, fmt.Errorf("read config: %w", err)
	}
	bc, ok := cfg.Branches[branch]
	if !ok || bc.Merge == "" {
		return 0, 0, nil
	}
	upstreamName := bc.Merge
	if bc.Remote != "" && bc.Remote != "." {
		upstreamName = plumbing.NewRemoteReferenceName(bc.Remote, bc.Merge.Short())
	}

	local, err := repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve %s: %w", branch, err)
	}
	upstream, err := repo.Reference(upstreamName, true)
	if err != nil {
		return 0, 0, fmt.Errorf("resolve upstream %s: %w", upstreamName, err)
	}
	if local.Hash() == upstream.Hash() {
		return 0, 0, nil
	}

	localSet, err := ancestors(ctx, repo, local.Hash())
	if err != nil {
		return 0, 0, err
	}
	upstreamSet, err := ancestors(ctx, repo, upstream.Hash())
	if err != nil {
		return 0, 0, err
	}
	return countMissing(localSet, upstreamSet), countMissing(upstreamSet, localSet), nil
}

func (b *GoGitBackend) HasStash(ctx context.Context) (bool, error) {
	repo, err := b.open(ctx)
	if err != nil {
		return false, err
	}
	_, err = repo.Reference(stashRef, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ancestors collects every commit reachable from tip, tip included.
func ancestors(ctx context.Context, repo *git.Repository, tip plumbing.Hash) (map[plumbing.Hash]struct{}, error) {
	iter, err := repo.Log(&git.LogOptions{From: tip})
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", tip, err)
	}
	defer iter.Close()

	seen := make(map[plumbing.Hash]struct{})
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		seen[c.Hash] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seen, nil
}

// countMissing counts members of a that are absent from b.
func countMissing(a, b map[plumbing.Hash]struct{}) int {
	n := 0
	for h := range a {
		if _, ok := b[h]; !ok {
			n++
		}
	}
	return n
}
