package vcs

import (
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeIndex(t *testing.T) {
	sum := summarizeIndex(&index.Index{Entries: []*index.Entry{
		{Name: "README.md"},
		{Name: "src/main.go"},
		{Name: "src/pkg/util.go"},
		{Name: "both.txt", Stage: index.AncestorMode},
		{Name: "both.txt", Stage: index.OurMode},
		{Name: "both.txt", Stage: index.TheirMode},
		{Name: "docs/ours.md", Stage: index.OurMode},
	}})

	assert.Equal(t, map[string]struct{}{"both.txt": {}, "docs/ours.md": {}}, sum.unmerged)
	assert.Equal(t, map[string]struct{}{"src": {}, "src/pkg": {}, "docs": {}}, sum.dirs)

	tests := map[string]string{
		"top.txt":        "top.txt",
		"newdir/x":       "newdir/",
		"newdir/deep/y":  "newdir/",
		"src/new/a.go":   "src/new/",
		"src/pkg/new.go": "src/pkg/new.go",
		"docs/extra.md":  "docs/extra.md",
	}
	for name, want := range tests {
		assert.Equal(t, want, sum.untrackedKey(name), name)
	}
}

func TestAddFileStatus(t *testing.T) {
	var tally Tally
	tally.addFileStatus(&git.FileStatus{Staging: git.Modified, Worktree: git.Modified})
	tally.addFileStatus(&git.FileStatus{Staging: git.Added, Worktree: git.Unmodified})
	tally.addFileStatus(&git.FileStatus{Staging: git.Unmodified, Worktree: git.Deleted})
	tally.addFileStatus(nil)
	assert.Equal(t, Tally{Staged: 2, Unstaged: 2}, tally)
}
