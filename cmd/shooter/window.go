package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/circle-shooter/internal/platform/window"
	"github.com/vovakirdan/circle-shooter/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Arrows/WASD - Steer (releasing any direction stops)
  Space       - Fire
  P           - Pause
  R           - Restart (after the game ends)
  Esc         - Quit

Examples:
  shooter window
  shooter window --scale 1.5 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playing field")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}

	runErr := window.Run(window.Options{
		Config:   cfg,
		Seed:     flagSeed,
		Scale:    flagScale,
		TickRate: flagFPS,
		Store:    store,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fail("%v", runErr)
	}
}
