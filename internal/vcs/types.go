package vcs

import (
	"context"
	"errors"
	"strings"
)

// ErrNotRepository is returned by backends asked about a directory outside any
// working tree.
var ErrNotRepository = errors.New("not a git repository")

// Backend answers the read-only questions the Inspector asks about one
// working tree. Implementations may shell out to git or use a library.
type Backend interface {
	// IsRepository reports whether the directory is inside a working tree.
	IsRepository(ctx context.Context) (bool, error)
	// RemoteURL returns the first URL of the named remote.
	RemoteURL(ctx context.Context, remote string) (string, error)
	// Head describes what HEAD points at.
	Head(ctx context.Context) (Head, error)
	// StatusTally counts working-tree entries per category.
	StatusTally(ctx context.Context) (Tally, error)
	// AheadBehind compares branch with its configured upstream.
	AheadBehind(ctx context.Context, branch string) (ahead, behind int, err error)
	// HasStash reports whether at least one stash entry exists.
	HasStash(ctx context.Context) (bool, error)
}

// RemoteKind classifies where the origin remote is hosted.
type RemoteKind int

const (
	RemoteOther RemoteKind = iota
	RemoteGitHub
	RemoteGitLab
)

func (k RemoteKind) String() string {
	switch k {
	case RemoteGitHub:
		return "github"
	case RemoteGitLab:
		return "gitlab"
	default:
		return "other"
	}
}

// ClassifyRemote maps a remote URL to its host kind. An empty URL is Other.
func ClassifyRemote(url string) RemoteKind {
	switch {
	case strings.Contains(url, "github.com"):
		return RemoteGitHub
	case strings.Contains(url, "gitlab.com"):
		return RemoteGitLab
	default:
		return RemoteOther
	}
}

// HeadKind tells branch, detached and unborn HEADs apart.
type HeadKind int

const (
	HeadUnborn HeadKind = iota
	HeadOnBranch
	HeadDetached
)

// ShortHashLen is the number of hex characters shown for a detached HEAD.
const ShortHashLen = 7

// Head describes the current checkout.
type Head struct {
	Kind HeadKind
	// Name is the branch name; for an unborn HEAD it is the branch HEAD will
	// create, when known.
	Name string
	// Hash is the abbreviated commit id of a detached HEAD.
	Hash string
}

// OnBranch returns a Head on the named branch.
func OnBranch(name string) Head { return Head{Kind: HeadOnBranch, Name: name} }

// Detached returns a detached Head, abbreviating hash to ShortHashLen.
func Detached(hash string) Head { return Head{Kind: HeadDetached, Hash: shortHash(hash)} }

// Unborn returns a Head that does not resolve to a commit yet.
func Unborn(name string) Head { return Head{Kind: HeadUnborn, Name: name} }

func shortHash(hash string) string {
	hash = strings.TrimSpace(hash)
	if len(hash) > ShortHashLen {
		return hash[:ShortHashLen]
	}
	return hash
}

// Tally counts working-tree entries. One entry may count as both staged and
// unstaged, never twice in the same category.
type Tally struct {
	Staged    int
	Unstaged  int
	Untracked int
	Conflicts int
}

// Dirty reports whether any category is non-zero.
func (t Tally) Dirty() bool {
	return t.Staged+t.Unstaged+t.Untracked+t.Conflicts > 0
}

// Snapshot is the complete result of inspecting a directory once. When
// IsRepository is false no other field is meaningful.
type Snapshot struct {
	IsRepository bool
	Remote       RemoteKind
	Head         Head
	Tally        Tally
	HasStash     bool
	Ahead        int
	Behind       int
}
