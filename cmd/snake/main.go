// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake play [classic|stone]  - Play a variant (default: stone)
//	snake menu                  - Pick a variant interactively
//	snake list                  - List available variants
//	snake version               - Print the version
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file (default: discard)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic game for the terminal. Steer the snake to the
food to grow; running into your own body sends you back to the start.
The stone variant adds a rock to avoid and a space-bar speed boost.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker
  list     - Show all available variants
  version  - Print the version

Examples:
  snake play
  snake play classic --backend tcell
  snake menu --seed 42
  snake play stone --log-file snake.log --log-level debug`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}
