package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// newLogger builds the process logger. A full-screen game owns the
// terminal, so without --log-file the output is discarded.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the YAML config and hands it to the snake package.
// doubleStep overrides the file when non-nil.
func loadGameConfig(path string, doubleStep *bool, logger *log.Logger) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if doubleStep != nil {
		cfg.Rules.DoubleStepOnTurn = *doubleStep
	}

	snake.SetConfig(cfg)
	logger.Debug("config loaded",
		"board", fmt.Sprintf("%dx%d/%d", cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.CellSize),
		"base_rate", cfg.Speed.BaseRate,
		"double_step", cfg.Rules.DoubleStepOnTurn,
	)
	return cfg, nil
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig(cfg config.SnakeConfig) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Speed.BaseRate,
		Seed:     flagSeed,
	}
}
