// Package vcstest provides an in-memory vcs.Backend for tests.
package vcstest

import (
	"context"

	"github.com/cj3636/zprompt/internal/vcs"
)

// Fake answers Backend queries from its fields and records which were asked.
type Fake struct {
	Repo      bool
	RepoErr   error
	URL       string
	URLErr    error
	HeadValue vcs.Head
	HeadErr   error
	Tally     vcs.Tally
	TallyErr  error
	Ahead     int
	Behind    int
	ABErr     error
	Stash     bool
	StashErr  error

	Calls []string
}

var _ vcs.Backend = (*Fake)(nil)

func (f *Fake) IsRepository(context.Context) (bool, error) {
	f.Calls = append(f.Calls, "IsRepository")
	return f.Repo, f.RepoErr
}

func (f *Fake) RemoteURL(_ context.Context, remote string) (string, error) {
	f.Calls = append(f.Calls, "RemoteURL")
	return f.URL, f.URLErr
}

func (f *Fake) Head(context.Context) (vcs.Head, error) {
	f.Calls = append(f.Calls, "Head")
	return f.HeadValue, f.HeadErr
}

func (f *Fake) StatusTally(context.Context) (vcs.Tally, error) {
	f.Calls = append(f.Calls, "StatusTally")
	return f.Tally, f.TallyErr
}

func (f *Fake) AheadBehind(_ context.Context, branch string) (int, int, error) {
	f.Calls = append(f.Calls, "AheadBehind")
	return f.Ahead, f.Behind, f.ABErr
}

func (f *Fake) HasStash(context.Context) (bool, error) {
	f.Calls = append(f.Calls, "HasStash")
	return f.Stash, f.StashErr
}
