// Package config loads the optional terms configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the name of the configuration file inside the terms config directory.
const ConfigFileName = "config.toml"

// Config holds user preferences read from config.toml.
type Config struct {
	// StorePath overrides the glossary location. A leading "~/" is expanded.
	StorePath string `toml:"store_path,omitempty"`
	// Color forces colored output on or off. Unset leaves the terminal default.
	Color *bool `toml:"color,omitempty"`
}

// DefaultPath returns <user config dir>/terms/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "terms", ConfigFileName), nil
}

// Load reads the configuration at path. A missing file is not an error and
// yields an empty Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveStorePath returns StorePath with a leading "~/" replaced by the
// user's home directory, or "" when no store path is configured.
func (c *Config) ResolveStorePath() (string, error) {
	p := c.StorePath
	if p == "" {
		return "", nil
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding '%s': %w", p, err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return filepath.Clean(p), nil
}
