package vcs

import "strings"

// recordKind is the class of one `git status --porcelain=v2 -z` record,
// decided by its leading character.
type recordKind int

const (
	recordUnknown recordKind = iota
	recordHeader
	recordOrdinary
	recordRenamed
	recordUnmerged
	recordUntracked
	recordIgnored
)

// Fixed columns of the XY field in changed and unmerged records.
const (
	colIndex    = 2
	colWorktree = 3
	minXYRecord = colWorktree + 1
	unchanged   = '.'
)

func classifyRecord(rec string) recordKind {
	if rec == "" {
		return recordUnknown
	}
	switch rec[0] {
	case '#':
		return recordHeader
	case '1':
		return recordOrdinary
	case '2':
		return recordRenamed
	case 'u':
		return recordUnmerged
	case '?':
		return recordUntracked
	case '!':
		return recordIgnored
	default:
		return recordUnknown
	}
}

// ParsePorcelainV2 tallies the NUL separated output of
// `git status --porcelain=v2 -z`. A rename or copy record is followed by a
// record holding the original path, which is skipped.
func ParsePorcelainV2(out string) Tally {
	var t Tally
	skipOrigPath := false

	for _, rec := range strings.Split(out, "\x00") {
		if skipOrigPath {
			skipOrigPath = false
			continue
		}

		switch classifyRecord(rec) {
		case recordOrdinary:
			t.addChange(rec)
		case recordRenamed:
			t.addChange(rec)
			skipOrigPath = true
		case recordUnmerged:
			t.Conflicts++
		case recordUntracked:
			t.Untracked++
		}
	}
	return t
}

func (t *Tally) addChange(rec string) {
	if len(rec) < minXYRecord {
		return
	}
	if rec[colIndex] != unchanged {
		t.Staged++
	}
	if rec[colWorktree] != unchanged {
		t.Unstaged++
	}
}
