package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotin/pkg/filesystem"
	"github.com/arthur-debert/dotin/pkg/types"
)

// TestEnvironment is an isolated home directory and dotfiles root living
// side by side in a temporary directory.
type TestEnvironment struct {
	Root         string
	HomeDir      string
	DotfilesRoot string

	FS types.FS

	t *testing.T
}

// NewTestEnvironment creates <tmp>/home and <tmp>/home/dotfiles.
// Paths are canonical so they compare equal to what the importer resolves.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	env := &TestEnvironment{
		Root:         root,
		HomeDir:      filepath.Join(root, "home"),
		DotfilesRoot: filepath.Join(root, "home", "dotfiles"),
		FS:           filesystem.NewOS(),
		t:            t,
	}
	CreateDir(t, env.DotfilesRoot, "")

	return env
}

// GroupDir returns the path of a group under the dotfiles root.
func (env *TestEnvironment) GroupDir(name string) string {
	return filepath.Join(env.DotfilesRoot, name)
}

// Home joins rel onto the home directory.
func (env *TestEnvironment) Home(rel ...string) string {
	return filepath.Join(append([]string{env.HomeDir}, rel...)...)
}

// WithHomeTree populates the home directory.
func (env *TestEnvironment) WithHomeTree(tree FileTree) {
	env.t.Helper()
	WriteTree(env.t, env.HomeDir, tree)
}

// WithDotfilesTree populates the dotfiles root.
func (env *TestEnvironment) WithDotfilesTree(tree FileTree) {
	env.t.Helper()
	WriteTree(env.t, env.DotfilesRoot, tree)
}
