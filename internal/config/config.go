// Package config loads the optional user configuration for the swatch CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the user-tunable defaults. Command-line flags override
// these, and these override the built-in defaults.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	Method    string `yaml:"method"`
	Verbose   bool   `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputDir: ".",
		Method:    "kmeans",
	}
}

// Path returns the location of the config file: swatch/config.yml under
// $XDG_CONFIG_HOME, falling back to ~/.config.
func Path() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "swatch", "config.yml"), nil
}

// Load reads the config file if one exists. A missing file, or no
// resolvable config path at all, yields the defaults.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Method == "" {
		cfg.Method = "kmeans"
	}
	return cfg, nil
}
