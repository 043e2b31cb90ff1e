package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/talgya/ant-mania/internal/engine"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.MaxMoves != engine.DefaultMaxMoves {
		t.Errorf("MaxMoves = %d, want %d", cfg.MaxMoves, engine.DefaultMaxMoves)
	}
	if cfg.MaxSteps != engine.DefaultMaxSteps {
		t.Errorf("MaxSteps = %d, want %d", cfg.MaxSteps, engine.DefaultMaxSteps)
	}
	if cfg.Archive.Enabled {
		t.Error("archive enabled by default")
	}
}

func TestLoadNoPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antmania.yaml")
	src := `
max_moves: 500
log_level: debug
archive:
  enabled: true
  path: runs.db
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxMoves != 500 {
		t.Errorf("MaxMoves = %d, want 500", cfg.MaxMoves)
	}
	if cfg.MaxSteps != engine.DefaultMaxSteps {
		t.Errorf("MaxSteps = %d, want default %d (not in file)", cfg.MaxSteps, engine.DefaultMaxSteps)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.Archive.Enabled || cfg.Archive.Path != "runs.db" {
		t.Errorf("Archive = %+v, want enabled at runs.db", cfg.Archive)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load of a missing explicit path succeeded, want error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ANTMANIA_MAX_MOVES", "77")
	t.Setenv("ANTMANIA_MAX_STEPS", "888")
	t.Setenv("ANTMANIA_LOG_LEVEL", "warn")
	t.Setenv("ANTMANIA_ARCHIVE_PATH", "elsewhere.db")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxMoves != 77 || cfg.MaxSteps != 888 {
		t.Errorf("caps = %d/%d, want 77/888", cfg.MaxMoves, cfg.MaxSteps)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.Archive.Path != "elsewhere.db" {
		t.Errorf("Archive.Path = %q, want elsewhere.db", cfg.Archive.Path)
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "antmania.yaml")
	if err := os.WriteFile(path, []byte("max_moves: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ANTMANIA_MAX_MOVES", "9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxMoves != 9 {
		t.Errorf("MaxMoves = %d, want the env value 9", cfg.MaxMoves)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero max_moves", func(c *Config) { c.MaxMoves = 0 }, "max_moves"},
		{"negative max_steps", func(c *Config) { c.MaxSteps = -1 }, "max_steps"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"archive without path", func(c *Config) { c.Archive.Enabled = true; c.Archive.Path = "" }, "archive.path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, want it to mention %q", err, tc.want)
			}
		})
	}
}
