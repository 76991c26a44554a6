package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tcellhost"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const defaultVariant = "stone"

var (
	flagConfig     string
	flagBackend    string
	flagDoubleStep bool
)

var playCmd = &cobra.Command{
	Use:   "play [classic|stone]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: stone).

Controls:
  Arrows/WASD/hjkl  - Steer
  Space             - Boost (stone only, while held)
  P                 - Pause
  Q/Ctrl+C          - Quit

Backends:
  tui    - Bubble Tea (default)
  tcell  - direct tcell screen

Examples:
  snake play
  snake play classic
  snake play stone --config ./my-snake.yaml
  snake play classic --double-step`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Display backend: tui or tcell")
	playCmd.Flags().BoolVar(&flagDoubleStep, "double-step", false, "Move twice on the tick a turn is applied")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}
	if flagBackend != "tui" && flagBackend != "tcell" {
		return fmt.Errorf("unknown backend %q, want tui or tcell", flagBackend)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	var doubleStep *bool
	if cmd.Flags().Changed("double-step") {
		doubleStep = &flagDoubleStep
	}
	gameCfg, err := loadGameConfig(flagConfig, doubleStep, logger)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	cfg := runtimeConfig(gameCfg)
	if flagBackend == "tcell" {
		return playTcell(game, cfg, logger)
	}
	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playTcell(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tcellhost.Run(ctx, game, screen, cfg, logger)
}
