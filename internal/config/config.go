// Package config provides YAML-based configuration loading for the
// simulation and its terminal front end.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LifeConfig contains all configuration for a simulation run.
type LifeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Seed   SeedConfig   `yaml:"seed"`
}

// GridConfig defines the grid dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// BoardConfig defines the spatial layout of a cell.
type BoardConfig struct {
	CellSize    float64 `yaml:"cell_size"`
	CellPadding float64 `yaml:"cell_padding"`
}

// TimingConfig defines evolution and frame timing.
type TimingConfig struct {
	IntervalMS int `yaml:"interval_ms"`
	TickRate   int `yaml:"tick_rate"`
}

// SeedConfig selects the initial pattern.
type SeedConfig struct {
	Pattern string `yaml:"pattern"`
}

// Interval returns the evolution period.
func (c LifeConfig) Interval() time.Duration {
	return time.Duration(c.Timing.IntervalMS) * time.Millisecond
}

// BoardOptions converts the config into simulation board options.
func (c LifeConfig) BoardOptions() life.BoardOptions {
	return life.BoardOptions{
		Width:       c.Grid.Width,
		Height:      c.Grid.Height,
		CellSize:    c.Board.CellSize,
		CellPadding: c.Board.CellPadding,
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c LifeConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Board.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive, got %v", ErrInvalidConfig, c.Board.CellSize)
	case c.Board.CellPadding < 0 || c.Board.CellPadding >= c.Board.CellSize:
		return fmt.Errorf("%w: cell_padding must be in [0, cell_size), got %v", ErrInvalidConfig, c.Board.CellPadding)
	case c.Timing.IntervalMS <= 0:
		return fmt.Errorf("%w: interval_ms must be positive, got %d", ErrInvalidConfig, c.Timing.IntervalMS)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	}
	return nil
}
