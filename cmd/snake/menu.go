package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Quitting a game returns to the menu.

Examples:
  snake menu
  snake menu --seed 42`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadGameConfig(flagConfig, nil, logger)
	if err != nil {
		return err
	}
	cfg := runtimeConfig(gameCfg)
	last := defaultVariant

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg, last)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}

		// Update config with any size changes
		cfg = result.Config
		last = result.GameID

		game, err := registry.Create(result.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
