// Package config loads tool configuration: built-in defaults, then an
// optional YAML file, then ANTMANIA_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/talgya/ant-mania/internal/engine"
)

// Config holds every tunable the CLI honors.
type Config struct {
	MaxMoves int           `json:"max_moves" yaml:"max_moves"`
	MaxSteps int           `json:"max_steps" yaml:"max_steps"`
	LogLevel string        `json:"log_level" yaml:"log_level"`
	Archive  ArchiveConfig `json:"archive" yaml:"archive"`
}

// ArchiveConfig controls the run archive.
type ArchiveConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxMoves: engine.DefaultMaxMoves,
		MaxSteps: engine.DefaultMaxSteps,
		LogLevel: "info",
		Archive: ArchiveConfig{
			Enabled: false,
			Path:    "antmania.db",
		},
	}
}

// Load builds the effective configuration: defaults, the YAML file at path
// when one is given, then environment overrides. An empty path skips the
// file; a missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ANTMANIA_MAX_MOVES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxMoves = n
		}
	}
	if v := os.Getenv("ANTMANIA_MAX_STEPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxSteps = n
		}
	}
	if v := os.Getenv("ANTMANIA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ANTMANIA_ARCHIVE_PATH"); v != "" {
		c.Archive.Path = v
	}
}

// Validate checks for values the engine or the archive would reject.
func (c *Config) Validate() error {
	if c.MaxMoves <= 0 {
		return fmt.Errorf("max_moves must be positive, got %d", c.MaxMoves)
	}
	if c.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, or error, got %q", c.LogLevel)
	}
	if c.Archive.Enabled && c.Archive.Path == "" {
		return fmt.Errorf("archive.path must be set when archive is enabled")
	}
	return nil
}
