//go:build gogit

package vcs

// DefaultBackendName names the backend compiled in as the default.
const DefaultBackendName = "gogit"

// NewDefaultBackend returns the backend selected at build time.
func NewDefaultBackend(dir string) Backend {
	return NewGoGitBackend(dir)
}
