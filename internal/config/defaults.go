package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the built-in configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		Board: BoardConfig{
			CellSize:    10,
			CellPadding: 0.5,
		},
		Timing: TimingConfig{
			IntervalMS: 200,
			TickRate:   30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLifeYAML
}
