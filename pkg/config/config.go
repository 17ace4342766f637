package config

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/arthur-debert/dotin/pkg/errors"
)

// Config is the effective dotin configuration.
type Config struct {
	Paths  Paths  `koanf:"paths" toml:"paths"`
	Import Import `koanf:"import" toml:"import"`
	Output Output `koanf:"output" toml:"output"`
	Log    Log    `koanf:"log" toml:"log"`
}

// Paths locates the dotfiles root and the home directory.
type Paths struct {
	DotfilesRoot string `koanf:"dotfiles_root" toml:"dotfiles_root"`
	HomeDir      string `koanf:"home_dir" toml:"home_dir"`
}

// Import tunes the import operation.
type Import struct {
	DirMode FileMode `koanf:"dir_mode" toml:"dir_mode"`
}

// Output selects how reports are rendered.
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Log controls the console log level.
type Log struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// FileMode is a permission mode written as an octal string ("0755").
type FileMode fs.FileMode

// ParseFileMode parses an octal permission string.
func ParseFileMode(s string) (FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigParse, "invalid file mode %q", s)
	}
	return FileMode(v), nil
}

// MarshalText writes the mode back as a zero-padded octal string.
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m FileMode) String() string {
	return fmt.Sprintf("%04o", uint32(m))
}

// Perm returns the mode as fs.FileMode.
func (m FileMode) Perm() fs.FileMode {
	return fs.FileMode(m)
}

// Formats lists the accepted output.format values.
var Formats = []string{"auto", "term", "text", "json"}

// Validate checks values the loaders cannot check by type alone.
func (c *Config) Validate() error {
	if c.Import.DirMode == 0 || fs.FileMode(c.Import.DirMode)&^fs.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigValid, "import.dir_mode must be a permission mode like 0755, got %s", c.Import.DirMode).
			WithDetail("key", "import.dir_mode")
	}
	if fs.FileMode(c.Import.DirMode)&0700 != 0700 {
		return errors.Newf(errors.ErrConfigValid, "import.dir_mode %s must give the owner full access (07xx)", c.Import.DirMode).
			WithDetail("key", "import.dir_mode")
	}

	valid := false
	for _, f := range Formats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return errors.Newf(errors.ErrConfigValid, "output.format must be one of %v, got %q", Formats, c.Output.Format).
			WithDetail("key", "output.format")
	}

	if c.Log.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "log.verbosity cannot be negative, got %d", c.Log.Verbosity).
			WithDetail("key", "log.verbosity")
	}
	return nil
}
