package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/dotin/pkg/errors"
	"github.com/arthur-debert/dotin/pkg/logging"
	"github.com/arthur-debert/dotin/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix starts every environment variable dotin reads as config.
	EnvPrefix = "DOTIN_"

	// EnvConfigFile points at a config file to use instead of the XDG one.
	EnvConfigFile = "DOTIN_CONFIG"
)

// Load builds the effective configuration. Later layers win:
//  1. embedded defaults
//  2. the user file (DOTIN_CONFIG, else $XDG_CONFIG_HOME/dotin/config.toml)
//  3. DOTFILES_ROOT, then DOTIN_<SECTION>_<KEY> variables
//  4. overrides, keyed by dotted path ("paths.dotfiles_root")
func Load(overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	// 2. User config file
	userPath := UserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), parserFor(userPath)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath).
				WithDetail("path", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	} else if os.Getenv(EnvConfigFile) != "" {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s set in %s cannot be read", userPath, EnvConfigFile).
			WithDetail("path", userPath)
	}

	// 3. Environment
	if root := os.Getenv(paths.EnvDotfilesRoot); root != "" {
		if err := k.Load(confmap.Provider(map[string]interface{}{"paths.dotfiles_root": root}, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load DOTFILES_ROOT")
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 4. Flag overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFileModeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Paths.DotfilesRoot = paths.ExpandHome(cfg.Paths.DotfilesRoot)
	cfg.Paths.HomeDir = paths.ExpandHome(cfg.Paths.HomeDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UserConfigPath returns the config file Load reads, whether or not it exists.
func UserConfigPath() string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return paths.ExpandHome(path)
	}
	return paths.ConfigFilePath()
}

// parserFor picks the YAML parser for .yaml and .yml files, TOML otherwise.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps DOTIN_PATHS_DOTFILES_ROOT to paths.dotfiles_root: the first
// underscore separates the section, the rest belong to the key.
// Variables without a section, like DOTIN_CONFIG, are ignored.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, found := strings.Cut(key, "_")
	if !found || section == "" || name == "" {
		return ""
	}
	return section + "." + name
}

// stringToFileModeHookFunc decodes octal strings into FileMode.
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(FileMode(0)) {
			return data, nil
		}
		return ParseFileMode(data.(string))
	}
}
