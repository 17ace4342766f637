package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotin/pkg/errors"
)

// Generate renders cfg as a TOML document that Load reads back unchanged.
func Generate(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return data, nil
}
