// Package config loads and persists the CLI's optional settings file
// (config.yaml in the tool's home directory). Command-line flags always
// win over file values; the file only supplies defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	fileName = "config.yaml"
	dirMode  = 0o700
	fileMode = 0o600
)

// Config holds the persisted CLI defaults.
type Config struct {
	// Mode is the default importance mode flag value: "L1" or "L2".
	Mode string `yaml:"mode"`
	// LogLevel is the default log verbosity: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		Mode:     "L2",
		LogLevel: "info",
	}
}

// Save writes c to dir/config.yaml.
func Save(dir string, c *Config) error {
	if dir == "" {
		return errors.New("config: directory required")
	}
	if c == nil {
		return errors.New("config: config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// ReadOrCreate loads dir/config.yaml, creating the directory and a
// default file when absent. Invalid YAML is surfaced, never silently
// replaced.
func ReadOrCreate(dir string) (*Config, error) {
	if dir == "" {
		return nil, errors.New("config: directory required")
	}

	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return nil, fmt.Errorf("config: create dir %s: %w", dir, err)
		}
	}

	path := filepath.Join(dir, fileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(dir, Default()); err != nil {
			return nil, err
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// HomeDir returns the tool's settings directory (~/.stepdiag), falling
// back to the current directory when the home directory is unknown.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".stepdiag")
}
