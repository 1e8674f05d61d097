// shooter is a minimal arcade circle shooter for the terminal and the desktop.
//
// Usage:
//
//	shooter play             - Play in the terminal
//	shooter window           - Play in a desktop window
//	shooter serve            - Start SSH server for remote play
//	shooter history          - Show finished games
//	shooter config           - Print the effective game configuration
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search ~/.shooter, ./configs)
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible enemy colors
//	--db <path>     - Set database path (default: ~/.shooter/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circle-shooter/internal/config"
	"github.com/vovakirdan/circle-shooter/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Circle Shooter - clear the enemy row before it touches you",
	Long: `Circle Shooter is a minimal arcade shooter. Steer the green circle,
fire bullets upward and destroy every enemy circle without touching one.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  history  - Show finished games
  config   - Print the effective game configuration

Examples:
  shooter play
  shooter play --seed 42
  shooter window --scale 1.5
  shooter serve --ssh :2222
  shooter history --interactive`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the game config or exits.
func loadConfig() config.ShooterConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}
