package vcs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func nulJoin(records ...string) string {
	return strings.Join(records, "\x00") + "\x00"
}

func TestClassifyRecord(t *testing.T) {
	tests := map[string]recordKind{
		"# branch.oid abc":   recordHeader,
		"1 M. N... a b c":    recordOrdinary,
		"2 R. N... a b c R1": recordRenamed,
		"u UU N... a b c":    recordUnmerged,
		"? new.txt":          recordUntracked,
		"! ignored.log":      recordIgnored,
		"":                   recordUnknown,
		"x what":             recordUnknown,
	}
	for rec, want := range tests {
		assert.Equal(t, want, classifyRecord(rec), rec)
	}
}

func TestParsePorcelainV2(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want Tally
	}{
		{
			name: "empty",
			out:  "",
			want: Tally{},
		},
		{
			name: "staged only",
			out: nulJoin(
				"1 A. N... 000000 100644 100644 0000 1111 a.txt",
				"1 M. N... 100644 100644 100644 1111 2222 b.txt",
			),
			want: Tally{Staged: 2},
		},
		{
			name: "partially staged counts twice",
			out:  nulJoin("1 MM N... 100644 100644 100644 1111 2222 both.txt"),
			want: Tally{Staged: 1, Unstaged: 1},
		},
		{
			name: "worktree deletion and type change",
			out: nulJoin(
				"1 .D N... 100644 100644 000000 1111 1111 gone.txt",
				"1 .T N... 100644 100644 120000 1111 1111 link",
			),
			want: Tally{Unstaged: 2},
		},
		{
			name: "rename skips original path",
			out: nulJoin(
				"2 R. N... 100644 100644 100644 1111 1111 R100 new name.txt",
				"1 weird old name starting with one",
				"? untracked.txt",
			),
			want: Tally{Staged: 1, Untracked: 1},
		},
		{
			name: "unmerged untracked ignored and headers",
			out: nulJoin(
				"# branch.oid 0123456789abcdef",
				"# branch.head main",
				"# branch.ab +1 -2",
				"u UU N... 100644 100644 100644 100644 1111 2222 3333 c.txt",
				"u AA N... 100644 100644 100644 100644 1111 2222 3333 d.txt",
				"? x",
				"? y",
				"! build/",
			),
			want: Tally{Untracked: 2, Conflicts: 2},
		},
		{
			name: "filename with newline stays one record",
			out:  nulJoin("? line\nbreak.txt", "1 .M N... 100644 100644 100644 1111 1111 a\n1 MM fake"),
			want: Tally{Unstaged: 1, Untracked: 1},
		},
		{
			name: "truncated record is ignored",
			out:  nulJoin("1 M"),
			want: Tally{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePorcelainV2(tt.out))
		})
	}
}

func TestTallyDirty(t *testing.T) {
	assert.False(t, Tally{}.Dirty())
	assert.True(t, Tally{Conflicts: 1}.Dirty())
}

func TestClassifyRemote(t *testing.T) {
	assert.Equal(t, RemoteGitHub, ClassifyRemote("git@github.com:cj3636/zprompt.git"))
	assert.Equal(t, RemoteGitLab, ClassifyRemote("https://gitlab.com/group/project.git"))
	assert.Equal(t, RemoteOther, ClassifyRemote("ssh://git.example.org/repo"))
	assert.Equal(t, RemoteOther, ClassifyRemote(""))
}

func TestDetachedShortHash(t *testing.T) {
	assert.Equal(t, "abcdef1", Detached("abcdef1234\n").Hash)
	assert.Equal(t, "abc", Detached("abc").Hash)
}
