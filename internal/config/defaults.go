package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hard-coded snake configuration.
// It matches defaults/snake.yaml and is used if the embed cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Screen: ScreenConfig{
			Width:    640,
			Height:   480,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			BaseRate:   10,
			BoostBonus: 20,
		},
		Boost: BoostConfig{
			HoldTicks: 18,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
