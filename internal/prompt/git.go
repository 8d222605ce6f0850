package prompt

import (
	"context"
	"strconv"

	"github.com/cj3636/zprompt/internal/color"
	"github.com/cj3636/zprompt/internal/config"
	"github.com/cj3636/zprompt/internal/segment"
	"github.com/cj3636/zprompt/internal/vcs"
)

// Aggregate inspects the repository once and returns its segments.
func Aggregate(ctx context.Context, insp *vcs.Inspector, theme config.Theme, ov config.Overrides) []segment.Segment {
	return Build(insp.Inspect(ctx), theme, ov)
}

// Build turns a snapshot into segments in a fixed order: remote icon, VCS
// icon, HEAD, file counts, stash, clean, ahead, behind. A snapshot outside a
// repository yields no segments.
func Build(snap vcs.Snapshot, theme config.Theme, ov config.Overrides) []segment.Segment {
	if !snap.IsRepository {
		return nil
	}

	var segs []segment.Segment
	emit := func(text string, r config.Role, def color.Color) {
		segs = append(segs, segment.Colored(text, ov.Resolve(r, def)))
	}

	emit(remoteIcon(snap.Remote), config.RoleVCSIcon, theme.RemoteIcon)
	emit(IconVCS, config.RoleVCSIcon, theme.VCSIcon)
	if snap.Head.Kind == vcs.HeadDetached {
		emit(DetachedMark+snap.Head.Hash, config.RoleBranch, theme.Detached)
	} else {
		emit(headText(snap.Head), config.RoleBranch, theme.Branch)
	}

	dirty := len(segs)
	t := snap.Tally
	if t.Staged > 0 {
		emit(MarkStaged+strconv.Itoa(t.Staged), config.RoleStaged, theme.Staged)
	}
	if t.Unstaged > 0 {
		emit(MarkUnstaged+strconv.Itoa(t.Unstaged), config.RoleUnstaged, theme.Unstaged)
	}
	if t.Untracked > 0 {
		emit(MarkUntracked+strconv.Itoa(t.Untracked), config.RoleUntracked, theme.Untracked)
	}
	if t.Conflicts > 0 {
		emit(IconConflict+strconv.Itoa(t.Conflicts), config.RoleConflict, theme.Conflict)
	}
	if snap.HasStash {
		emit(IconStash, config.RoleStashed, theme.Stashed)
	}
	if len(segs) == dirty {
		emit(IconClean, config.RoleClean, theme.Clean)
	}

	if snap.Ahead > 0 {
		emit(MarkAhead+strconv.Itoa(snap.Ahead), config.RoleAhead, theme.Ahead)
	}
	if snap.Behind > 0 {
		emit(MarkBehind+strconv.Itoa(snap.Behind), config.RoleBehind, theme.Behind)
	}
	return segs
}

func remoteIcon(k vcs.RemoteKind) string {
	switch k {
	case vcs.RemoteGitHub:
		return IconGitHub
	case vcs.RemoteGitLab:
		return IconGitLab
	default:
		return IconRemote
	}
}

func headText(h vcs.Head) string {
	if h.Name == "" {
		return UnknownBranch
	}
	return h.Name
}
