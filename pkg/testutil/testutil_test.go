package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "test.txt", "hello world")
	assert.True(t, FileExists(t, path))
	assert.Equal(t, "hello world", ReadFile(t, path))

	nested := CreateFile(t, dir, "sub/dir/test2.txt", "nested")
	assert.True(t, FileExists(t, nested))
	assert.True(t, DirExists(t, filepath.Join(dir, "sub", "dir")))
}

func TestCreateSymlink(t *testing.T) {
	SkipOnWindows(t)
	dir := t.TempDir()

	target := CreateFile(t, dir, "target.txt", "target content")
	link := filepath.Join(dir, "links", "link.txt")
	CreateSymlink(t, target, link)

	assert.True(t, SymlinkExists(t, link))
	assert.False(t, SymlinkExists(t, target))
	AssertFileContent(t, link, "target content")
}

func TestSymlinkExists_Dangling(t *testing.T) {
	SkipOnWindows(t)
	dir := t.TempDir()
	link := filepath.Join(dir, "dangling")
	CreateSymlink(t, filepath.Join(dir, "missing"), link)

	assert.True(t, SymlinkExists(t, link), "a dangling symlink is still an entry")
	assert.False(t, FileExists(t, link))

	AssertNoFile(t, filepath.Join(dir, "missing"))
}

func TestWriteTreeAndSnapshot(t *testing.T) {
	SkipOnWindows(t)
	dir := t.TempDir()

	WriteTree(t, dir, FileTree{
		".bashrc": "# bashrc",
		".config": FileTree{
			"nvim": FileTree{
				"init.lua": "-- init",
			},
			"empty": FileTree{},
		},
		".vimrc": Symlink{Target: "dotfiles/vim/vimrc"},
	})

	want := map[string]string{
		".bashrc":               "# bashrc",
		".config":               "dir/",
		".config/nvim":          "dir/",
		".config/nvim/init.lua": "-- init",
		".config/empty":         "dir/",
		".vimrc":                "-> dotfiles/vim/vimrc",
	}
	assert.Equal(t, want, Snapshot(t, dir))
	assert.Equal(t, want, Flatten(FileTree{
		".bashrc": "# bashrc",
		".config": FileTree{
			"nvim":  FileTree{"init.lua": "-- init"},
			"empty": FileTree{},
		},
		".vimrc": Symlink{Target: "dotfiles/vim/vimrc"},
	}))
}

func TestNewTestEnvironment(t *testing.T) {
	env := NewTestEnvironment(t)

	require.True(t, DirExists(t, env.HomeDir))
	require.True(t, DirExists(t, env.DotfilesRoot))
	assert.Equal(t, filepath.Join(env.HomeDir, "dotfiles"), env.DotfilesRoot)
	assert.Equal(t, filepath.Join(env.DotfilesRoot, "git"), env.GroupDir("git"))
	assert.Equal(t, filepath.Join(env.HomeDir, ".config", "git"), env.Home(".config", "git"))

	resolved, err := filepath.EvalSymlinks(env.Root)
	require.NoError(t, err)
	assert.Equal(t, env.Root, resolved, "root is canonical")

	env.WithHomeTree(FileTree{".gitconfig": "[user]"})
	env.WithDotfilesTree(FileTree{"git": FileTree{"existing": "x"}})
	AssertFileContent(t, env.Home(".gitconfig"), "[user]")
	AssertFileContent(t, filepath.Join(env.GroupDir("git"), "existing"), "x")
}
