// Package config handles configuration management for dotin.
// It layers embedded TOML defaults, the user's TOML file, environment
// variables and command-line flag overrides, in that order.
package config
