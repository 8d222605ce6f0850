package vcs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// fatalExit is the status git dies with, e.g. outside any repository or in
// one it refuses to trust.
const fatalExit = 128

// ExecBackend implements Backend by running the git binary in Dir.
type ExecBackend struct {
	Dir string
	r   Runner
}

// NewExecBackend returns a backend using gitBin ("" means git on PATH).
func NewExecBackend(dir, gitBin string) *ExecBackend {
	return &ExecBackend{Dir: dir, r: NewExecRunner(gitBin)}
}

// NewExecBackendWithRunner returns a backend driven by r.
func NewExecBackendWithRunner(dir string, r Runner) *ExecBackend {
	return &ExecBackend{Dir: dir, r: r}
}

func (b *ExecBackend) run(ctx context.Context, args ...string) (string, error) {
	return b.r.Run(ctx, b.Dir, args...)
}

func (b *ExecBackend) IsRepository(ctx context.Context) (bool, error) {
	out, err := b.run(ctx, "rev-parse", "--is-inside-work-tree")
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code == fatalExit {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "true", nil
}

func (b *ExecBackend) RemoteURL(ctx context.Context, remote string) (string, error) {
	out, err := b.run(ctx, "remote", "get-url", remote)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (b *ExecBackend) Head(ctx context.Context) (Head, error) {
	branch := ""
	out, err := b.run(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	switch {
	case err == nil:
		branch = strings.TrimSpace(out)
	case !isExit(err):
		return Head{}, err
	}

	out, err = b.run(ctx, "rev-parse", "--verify", "-q", "HEAD")
	if isExit(err) {
		return Unborn(branch), nil
	}
	if err != nil {
		return Head{}, err
	}
	if branch != "" {
		return OnBranch(branch), nil
	}
	return Detached(out), nil
}

func (b *ExecBackend) StatusTally(ctx context.Context) (Tally, error) {
	out, err := b.run(ctx, "status", "--porcelain=v2", "-z", "--untracked-files=normal")
	if err != nil {
		return Tally{}, err
	}
	return ParsePorcelainV2(out), nil
}

func (b *ExecBackend) AheadBehind(ctx context.Context, branch string) (int, int, error) {
	if branch == "" {
		return 0, 0, nil
	}
	// Fails when the branch has no upstream.
	ref := "refs/heads/" + branch
	out, err := b.run(ctx, "rev-list", "--left-right", "--count", ref+"..."+ref+"@{upstream}")
	if err != nil {
		return 0, 0, err
	}
	return parseLeftRightCount(out)
}

func (b *ExecBackend) HasStash(ctx context.Context) (bool, error) {
	_, err := b.run(ctx, "rev-parse", "--verify", "-q", "refs/stash")
	if isExit(err) {
		return false, nil
	}
	return err == nil, err
}

// parseLeftRightCount reads the "<left>\t<right>" line printed by
// `git rev-list --left-right --count`.
func parseLeftRightCount(out string) (int, int, error) {
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output %q", strings.TrimSpace(out))
	}
	left, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse ahead count: %w", err)
	}
	right, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse behind count: %w", err)
	}
	return left, right, nil
}
