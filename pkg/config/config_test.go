package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every location Load reads at empty temp directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(EnvConfigFile, "")
	t.Setenv("DOTFILES_ROOT", "")
	return home
}

func writeUserConfig(t *testing.T, home, content string) string {
	t.Helper()
	path := filepath.Join(home, ".config", "dotin", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "dotfiles"), cfg.Paths.DotfilesRoot)
	assert.Empty(t, cfg.Paths.HomeDir)
	assert.Equal(t, os.FileMode(0755), cfg.Import.DirMode.Perm())
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, 0, cfg.Log.Verbosity)
}

func TestLoad_UserFile(t *testing.T) {
	home := isolate(t)
	writeUserConfig(t, home, `
[paths]
dotfiles_root = "~/src/dots"

[import]
dir_mode = "0700"

[output]
format = "json"
`)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "src", "dots"), cfg.Paths.DotfilesRoot)
	assert.Equal(t, FileMode(0700), cfg.Import.DirMode)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 0, cfg.Log.Verbosity, "keys missing from the file keep their defaults")
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	home := isolate(t)

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(home, "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte("[log]\nverbosity = 2\n"), 0644))
		t.Setenv(EnvConfigFile, path)

		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Log.Verbosity)
		assert.Equal(t, path, UserConfigPath())
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(home, "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  format: text\n"), 0644))
		t.Setenv(EnvConfigFile, path)

		cfg, err := Load(nil)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Output.Format)
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv(EnvConfigFile, filepath.Join(home, "nope.toml"))

		_, err := Load(nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestLoad_MalformedFile(t *testing.T) {
	home := isolate(t)
	path := writeUserConfig(t, home, "[paths\ndotfiles_root = ")

	_, err := Load(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)

	t.Setenv("DOTFILES_ROOT", "/srv/dotfiles")
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/srv/dotfiles", cfg.Paths.DotfilesRoot)

	t.Setenv("DOTIN_PATHS_DOTFILES_ROOT", "/opt/dotfiles")
	t.Setenv("DOTIN_LOG_VERBOSITY", "3")
	t.Setenv("DOTIN_IMPORT_DIR_MODE", "0750")
	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/opt/dotfiles", cfg.Paths.DotfilesRoot, "DOTIN_ variables win over DOTFILES_ROOT")
	assert.Equal(t, 3, cfg.Log.Verbosity)
	assert.Equal(t, FileMode(0750), cfg.Import.DirMode)
}

func TestLoad_OverridesWin(t *testing.T) {
	home := isolate(t)
	writeUserConfig(t, home, "[output]\nformat = \"json\"\n")
	t.Setenv("DOTIN_OUTPUT_FORMAT", "text")

	cfg, err := Load(map[string]interface{}{
		"output.format":       "term",
		"paths.home_dir":      "~/other",
		"paths.dotfiles_root": "/tmp/dots",
	})
	require.NoError(t, err)
	assert.Equal(t, "term", cfg.Output.Format)
	assert.Equal(t, filepath.Join(home, "other"), cfg.Paths.HomeDir)
	assert.Equal(t, "/tmp/dots", cfg.Paths.DotfilesRoot)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
		code      errors.ErrorCode
		key       string
	}{
		{
			name:      "unknown format",
			overrides: map[string]interface{}{"output.format": "yaml"},
			code:      errors.ErrConfigValid,
			key:       "output.format",
		},
		{
			name:      "mode without owner access",
			overrides: map[string]interface{}{"import.dir_mode": "0444"},
			code:      errors.ErrConfigValid,
			key:       "import.dir_mode",
		},
		{
			name:      "mode with type bits",
			overrides: map[string]interface{}{"import.dir_mode": "4755"},
			code:      errors.ErrConfigValid,
			key:       "import.dir_mode",
		},
		{
			name:      "negative verbosity",
			overrides: map[string]interface{}{"log.verbosity": -1},
			code:      errors.ErrConfigValid,
			key:       "log.verbosity",
		},
		{
			name:      "mode that is not octal",
			overrides: map[string]interface{}{"import.dir_mode": "0999"},
			code:      errors.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := Load(tt.overrides)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			if tt.key != "" {
				assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
			}
		})
	}
}

func TestGenerate_RoundTrip(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(map[string]interface{}{
		"paths.dotfiles_root": filepath.Join(home, "dots"),
		"import.dir_mode":     "0700",
		"output.format":       "text",
		"log.verbosity":       1,
	})
	require.NoError(t, err)

	data, err := Generate(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[import]")
	assert.Contains(t, string(data), "0700")

	path := filepath.Join(home, "generated.toml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	t.Setenv(EnvConfigFile, path)

	reloaded, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestDefaultsContent(t *testing.T) {
	content := DefaultsContent()
	for _, section := range []string{"[paths]", "[import]", "[output]", "[log]"} {
		assert.Contains(t, content, section)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"DOTIN_PATHS_DOTFILES_ROOT": "paths.dotfiles_root",
		"DOTIN_OUTPUT_FORMAT":       "output.format",
		"DOTIN_LOG_VERBOSITY":       "log.verbosity",
		"DOTIN_CONFIG":              "",
		"DOTIN__X":                  "",
		"DOTIN_PATHS_":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestFileMode(t *testing.T) {
	mode, err := ParseFileMode("755")
	require.NoError(t, err)
	assert.Equal(t, "0755", mode.String())

	text, err := FileMode(0700).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0700", string(text))

	_, err = ParseFileMode("rwxr-xr-x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
