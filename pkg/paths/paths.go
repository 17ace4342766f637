package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotin/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for dotfiles location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DefaultDotfilesDir is the default directory name for dotfiles, under home
	DefaultDotfilesDir = "dotfiles"

	// DotinDirName is the directory name for dotin-specific files
	DotinDirName = "dotin"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "dotin.log"
)

// Paths provides centralized path management for dotin
type Paths interface {
	DotfilesRoot() string
	HomeDir() string
	GroupPath(groupName string) string
}

type paths struct {
	dotfilesRoot string
	homeDir      string
}

// New creates a new Paths instance.
// An empty dotfilesRoot is taken from DOTFILES_ROOT, then ~/dotfiles.
// An empty homeDir is the current user's home directory.
func New(dotfilesRoot, homeDir string) (Paths, error) {
	p := &paths{}

	if homeDir == "" {
		home, err := GetHomeDirectory()
		if err != nil {
			return nil, err
		}
		homeDir = home
	}
	absHome, err := filepath.Abs(expandHome(homeDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for home directory")
	}
	p.homeDir = absHome

	if dotfilesRoot == "" {
		dotfilesRoot = os.Getenv(EnvDotfilesRoot)
	}
	if dotfilesRoot == "" {
		dotfilesRoot = filepath.Join(p.homeDir, DefaultDotfilesDir)
	}
	absRoot, err := filepath.Abs(expandHome(dotfilesRoot))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	return p, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := GetHomeDirectory()
		if err != nil {
			return path
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// DotfilesRoot returns the root directory for dotfiles
func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// HomeDir returns the directory files are imported from
func (p *paths) HomeDir() string {
	return p.homeDir
}

// GroupPath returns the path to a specific group
func (p *paths) GroupPath(groupName string) string {
	return filepath.Join(p.dotfilesRoot, groupName)
}

// LogFilePath returns $XDG_STATE_HOME/dotin/dotin.log.
func LogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	return filepath.Join(stateHome, DotinDirName, LogFileName)
}

// ConfigFilePath returns $XDG_CONFIG_HOME/dotin/config.toml.
// XDG_CONFIG_HOME is read at call time so tests can redirect it.
func ConfigFilePath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, DotinDirName, ConfigFileName)
}
