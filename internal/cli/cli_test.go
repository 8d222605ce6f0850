package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cj3636/zprompt/internal/color"
	"github.com/cj3636/zprompt/internal/config"
	"github.com/cj3636/zprompt/internal/prompt"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config lookup at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfig, filepath.Join(dir, "config.yaml"))
	t.Setenv(config.EnvPreset, "")
	t.Setenv(config.EnvLogLevel, "")
	return dir
}

func run(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return stdout.String(), stderr.String()
}

func TestCmdSuccess(t *testing.T) {
	isolate(t)
	out, _ := run(t, "cmd", "--last-status", "0")
	assert.Equal(t, "\x1b[32m"+prompt.IconSuccess+"\x1b[39m", out)
}

func TestCmdFailurePlain(t *testing.T) {
	isolate(t)
	out, _ := run(t, "--format", "plain", "cmd", "--last-status", "2")
	assert.Equal(t, prompt.IconFailure+" 2", out)
}

func TestCmdColorOverride(t *testing.T) {
	isolate(t)
	out, _ := run(t, "cmd", "--last-status", "0", "--color", "#f00")
	assert.Equal(t, "\x1b[38;2;255;0;0m"+prompt.IconSuccess+"\x1b[39m", out)

	out, _ = run(t, "cmd", "--last-status", "0", "--color", "not-a-color")
	assert.Equal(t, "\x1b[32m"+prompt.IconSuccess+"\x1b[39m", out)
}

func TestCmdFormatFromConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("format: plain\n"), 0o644))

	out, _ := run(t, "cmd", "--last-status", "1")
	assert.Equal(t, prompt.IconFailure+" 1", out)

	// The flag wins over the file.
	out, _ = run(t, "--format", "bash", "cmd", "--last-status", "1")
	assert.Equal(t, "\x01\x1b[31m\x02"+prompt.IconFailure+" 1\x01\x1b[39m\x02", out)
}

func TestUnknownFormatFallsBackToANSI(t *testing.T) {
	isolate(t)
	out, _ := run(t, "--format", "html", "cmd", "--last-status", "0")
	assert.Equal(t, "\x1b[32m"+prompt.IconSuccess+"\x1b[39m", out)
}

func TestGitOutsideRepository(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, _ := run(t, "git")
	assert.Empty(t, out)

	out, _ = run(t, "git", "--branch-color", "#zzz", "--color", "nope", "--staged-color", "green")
	assert.Empty(t, out)
}

func TestColorFlagsOverrides(t *testing.T) {
	var f colorFlags
	fs := flag.NewFlagSet("git", flag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse([]string{
		"--color", "white",
		"--git-icon-color", "#123",
		"--branch-color", "bogus",
		"--behind-color", "RED",
	}))

	ov := f.overrides()
	require.NotNil(t, ov.Global)
	assert.Equal(t, color.Named(color.White), *ov.Global)
	require.NotNil(t, ov.Role(config.RoleVCSIcon))
	assert.Equal(t, color.RGB(0x11, 0x22, 0x33), *ov.Role(config.RoleVCSIcon))
	assert.Nil(t, ov.Role(config.RoleBranch))
	require.NotNil(t, ov.Role(config.RoleBehind))
	assert.Equal(t, color.Named(color.Red), *ov.Role(config.RoleBehind))

	for _, rf := range roleFlags {
		assert.NotNil(t, fs.Lookup(rf.name), rf.name)
	}
	assert.Len(t, roleFlags, len(config.Roles()))
}

func TestPalettePlain(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("colors:\n  branch: cyan\n"), 0o644))

	out, _ := run(t, "palette")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 14)
	assert.Contains(t, lines, "branch\tcyan\tbranch")
	assert.Contains(t, lines, "detached\tcyan\tbranch")
	assert.Contains(t, lines, "staged\tgreen\tstaged")
	assert.Contains(t, lines, "success\tgreen\t-")
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, _ := run(t, "--version")
	assert.Equal(t, "zprompt version test\n", out)
}
