package vcs

import (
	"context"

	"go.uber.org/zap"
)

// OriginRemote is the remote used to classify repository hosting.
const OriginRemote = "origin"

// Inspector turns Backend answers into a Snapshot. Every failed query
// degrades to the empty value of its category.
type Inspector struct {
	backend Backend
	log     *zap.Logger
}

// NewInspector returns an Inspector over b. A nil logger disables logging.
func NewInspector(b Backend, log *zap.Logger) *Inspector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inspector{backend: b, log: log}
}

// Inspect queries the backend once per category and returns a fresh
// snapshot. Outside a repository it returns the zero Snapshot without issuing
// any further queries.
func (i *Inspector) Inspect(ctx context.Context) Snapshot {
	ok, err := i.backend.IsRepository(ctx)
	if err != nil {
		i.degraded("repository", err)
	}
	if !ok || err != nil {
		return Snapshot{}
	}

	snap := Snapshot{IsRepository: true}

	url, err := i.backend.RemoteURL(ctx, OriginRemote)
	if err != nil {
		i.degraded("remote", err)
		url = ""
	}
	snap.Remote = ClassifyRemote(url)

	snap.Head, err = i.backend.Head(ctx)
	if err != nil {
		i.degraded("head", err)
		snap.Head = Unborn("")
	}

	snap.Tally, err = i.backend.StatusTally(ctx)
	if err != nil {
		i.degraded("status", err)
		snap.Tally = Tally{}
	}

	if snap.Head.Kind == HeadOnBranch {
		snap.Ahead, snap.Behind, err = i.backend.AheadBehind(ctx, snap.Head.Name)
		if err != nil {
			i.degraded("ahead-behind", err)
			snap.Ahead, snap.Behind = 0, 0
		}
	}

	snap.HasStash, err = i.backend.HasStash(ctx)
	if err != nil {
		i.degraded("stash", err)
		snap.HasStash = false
	}

	i.log.Debug("repository inspected",
		zap.Stringer("remote", snap.Remote),
		zap.String("branch", snap.Head.Name),
		zap.Int("staged", snap.Tally.Staged),
		zap.Int("unstaged", snap.Tally.Unstaged),
		zap.Int("untracked", snap.Tally.Untracked),
		zap.Int("conflicts", snap.Tally.Conflicts),
		zap.Bool("stash", snap.HasStash),
		zap.Int("ahead", snap.Ahead),
		zap.Int("behind", snap.Behind))
	return snap
}

func (i *Inspector) degraded(query string, err error) {
	i.log.Debug("query degraded", zap.String("query", query), zap.Error(err))
}
