package prompt

// Nerd Font glyphs used by the repository and last-command segments.
const (
	IconGitHub   = "\uf09b"     // nf-fa-github
	IconGitLab   = "\uf296"     // nf-fa-gitlab
	IconRemote   = "\U000f02a2" // nf-md-git
	IconVCS      = "\ue725"     // nf-dev-git_branch
	IconConflict = "\ue727"     // nf-dev-git_merge
	IconStash    = "\uf01c"     // nf-fa-inbox
	IconClean    = "\uf00c"     // nf-fa-check
	IconSuccess  = "\uf00c"     // nf-fa-check
	IconFailure  = "\uf00d"     // nf-fa-times
)

const (
	DetachedMark  = ":"
	UnknownBranch = "unknown"
)

// Count markers prefixed to the staged, unstaged, untracked, ahead and behind
// segments.
const (
	MarkStaged    = "+"
	MarkUnstaged  = "!"
	MarkUntracked = "?"
	MarkAhead     = "↑"
	MarkBehind    = "↓"
)
