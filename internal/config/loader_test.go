package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg LifeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultLifeConfig() {
		t.Errorf("embedded default %+v differs from DefaultLifeConfig() %+v", cfg, DefaultLifeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadLifeCustomPath(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 80
  height: 80
timing:
  interval_ms: 50
`)

	cfg, err := LoadLife(path)
	if err != nil {
		t.Fatalf("LoadLife: %v", err)
	}

	if cfg.Grid.Width != 80 || cfg.Grid.Height != 80 {
		t.Errorf("grid = %dx%d, expected 80x80", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, expected 50ms", cfg.Interval())
	}
	// Unspecified sections keep defaults
	if cfg.Board.CellSize != 10 || cfg.Timing.TickRate != 30 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}

	opts := cfg.BoardOptions()
	if opts.Width != 80 || opts.CellSize != 10 || opts.CellPadding != 0.5 {
		t.Errorf("BoardOptions() = %+v", opts)
	}
}

func TestLoadLifeCustomPathErrors(t *testing.T) {
	if _, err := LoadLife(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	if _, err := LoadLife(writeConfig(t, "grid: [not, a, map]")); err == nil {
		t.Error("expected parse error")
	}

	_, err := LoadLife(writeConfig(t, "grid:\n  width: 0\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero width, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*LifeConfig)
	}{
		{"zero height", func(c *LifeConfig) { c.Grid.Height = 0 }},
		{"zero cell size", func(c *LifeConfig) { c.Board.CellSize = 0 }},
		{"padding too large", func(c *LifeConfig) { c.Board.CellPadding = 10 }},
		{"negative padding", func(c *LifeConfig) { c.Board.CellPadding = -1 }},
		{"zero interval", func(c *LifeConfig) { c.Timing.IntervalMS = 0 }},
		{"zero tick rate", func(c *LifeConfig) { c.Timing.TickRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLifeConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}
