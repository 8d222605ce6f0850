package vcs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// Runner abstracts executing git commands.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner executes the configured git binary.
type ExecRunner struct {
	GitBin string
}

// NewExecRunner returns a runner for gitBin, defaulting to "git" on PATH.
func NewExecRunner(gitBin string) *ExecRunner {
	if strings.TrimSpace(gitBin) == "" {
		gitBin = "git"
	}
	return &ExecRunner{GitBin: gitBin}
}

// Run executes git in dir and returns its stdout. Optional locks are disabled
// so that read-only queries such as status never rewrite the index.
func (e *ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, e.GitBin, args...)
	if strings.TrimSpace(dir) != "" {
		cmd.Dir = dir
	}
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0", "GIT_TERMINAL_PROMPT=0")

	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("git %s: %w", sanitizeArgs(args), ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(errb.String())
			if msg == "" {
				msg = err.Error()
			}
			return "", &ExitError{Args: sanitizeArgs(args), Code: exitErr.ExitCode(), Stderr: redactTokens(msg)}
		}
		return "", fmt.Errorf("git %s: %w", sanitizeArgs(args), err)
	}
	return out.String(), nil
}

// ExitError reports a git command that ran and exited non-zero. Failures to
// start git or a cancelled context are returned as ordinary wrapped errors.
type ExitError struct {
	Args   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("git %s: exit %d: %s", e.Args, e.Code, e.Stderr)
}

// isExit reports whether err is git answering with a non-zero status, as
// opposed to git not running at all.
func isExit(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

var (
	safeArg    = regexp.MustCompile(`^[a-z][a-z-]*$`)
	urlCreds   = regexp.MustCompile(`(https?://)[^\s@/]+@`)
	tokenParam = regexp.MustCompile(`(?i)(token|secret|password|passwd|bearer)=[^\s]+`)
)

// sanitizeArgs keeps at most the first two subcommand words so error messages
// never carry paths or URLs.
func sanitizeArgs(args []string) string {
	safe := make([]string, 0, 2)
	for _, a := range args {
		if !safeArg.MatchString(a) {
			break
		}
		safe = append(safe, a)
		if len(safe) == 2 {
			break
		}
	}
	if len(safe) == 0 {
		return "<redacted>"
	}
	return strings.Join(safe, " ")
}

// redactTokens scrubs credentials embedded in remote URLs and key=value pairs.
func redactTokens(s string) string {
	s = urlCreds.ReplaceAllString(s, "${1}<redacted>@")
	return tokenParam.ReplaceAllString(s, "$1=<redacted>")
}
