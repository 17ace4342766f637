package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("explicit values", func(t *testing.T) {
		p, err := New("/srv/dotfiles", "/home/tester")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/srv/dotfiles"), p.DotfilesRoot())
		assert.Equal(t, filepath.FromSlash("/home/tester"), p.HomeDir())
		assert.Equal(t, filepath.FromSlash("/srv/dotfiles/vim"), p.GroupPath("vim"))
	})

	t.Run("DOTFILES_ROOT is used when root is empty", func(t *testing.T) {
		t.Setenv(EnvDotfilesRoot, "/opt/dots")
		p, err := New("", "/home/tester")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/opt/dots"), p.DotfilesRoot())
	})

	t.Run("defaults to dotfiles under home", func(t *testing.T) {
		t.Setenv(EnvDotfilesRoot, "")
		p, err := New("", "/home/tester")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/home/tester/dotfiles"), p.DotfilesRoot())
	})

	t.Run("tilde expands to the user home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvHome, home)
		p, err := New("~/dots", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "dots"), p.DotfilesRoot())
		assert.Equal(t, home, p.HomeDir())
	})
}

func TestXDGFilePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")

	assert.Equal(t, filepath.FromSlash("/cfg/dotin/config.toml"), ConfigFilePath())
	assert.Equal(t, filepath.FromSlash("/state/dotin/dotin.log"), LogFilePath())
}
