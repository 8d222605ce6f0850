//go:build !gogit

package vcs

// DefaultBackendName names the backend compiled in as the default.
const DefaultBackendName = "exec"

// NewDefaultBackend returns the backend selected at build time. Build with
// -tags gogit to use go-git instead of the git binary.
func NewDefaultBackend(dir string) Backend {
	return NewExecBackend(dir, "")
}
