// Package config provides YAML-based configuration loading for the snake
// game, with embedded defaults and validation.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Speed  SpeedConfig  `yaml:"speed"`
	Boost  BoostConfig  `yaml:"boost"`
	Rules  RulesConfig  `yaml:"rules"`
}

// ScreenConfig defines the board geometry in screen units.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines tick pacing.
type SpeedConfig struct {
	BaseRate   int `yaml:"base_rate"`
	BoostBonus int `yaml:"boost_bonus"`
}

// BoostConfig defines how a held boost key is detected.
type BoostConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// RulesConfig toggles rule variations.
type RulesConfig struct {
	DoubleStepOnTurn bool `yaml:"double_step_on_turn"`
}

// Validate reports the first problem that would make the config unplayable.
func (c SnakeConfig) Validate() error {
	s := c.Screen
	if s.CellSize <= 0 {
		return errors.New("config: screen.cell_size must be positive")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return errors.New("config: screen.width and screen.height must be positive")
	}
	if s.Width%s.CellSize != 0 || s.Height%s.CellSize != 0 {
		return fmt.Errorf("config: cell_size %d does not divide %dx%d", s.CellSize, s.Width, s.Height)
	}
	if s.Width/s.CellSize < 2 || s.Height/s.CellSize < 2 {
		return errors.New("config: board must be at least 2x2 cells")
	}
	if c.Speed.BaseRate <= 0 {
		return errors.New("config: speed.base_rate must be positive")
	}
	if c.Speed.BoostBonus < 0 {
		return errors.New("config: speed.boost_bonus must not be negative")
	}
	if c.Boost.HoldTicks < 1 {
		return errors.New("config: boost.hold_ticks must be at least 1")
	}
	return nil
}
