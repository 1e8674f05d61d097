package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/circle-shooter/internal/core"
	"github.com/vovakirdan/circle-shooter/internal/games/shooter"
	"github.com/vovakirdan/circle-shooter/internal/platform/tui"
	"github.com/vovakirdan/circle-shooter/internal/storage"
)

var (
	flagLogFile      string
	flagNoHistory    bool
	flagReleaseAfter int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD - Steer
  Space       - Fire
  X           - Stop
  P/Esc       - Pause
  R           - Restart (after the game ends)
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Terminals only report key presses, so a direction is let go after
--release-after ticks without a repeat.

Examples:
  shooter play
  shooter play --seed 42 --fps 30
  shooter play --config ./my-shooter.yaml
  shooter play --log-file ./shooter.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	playCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record finished games")
	playCmd.Flags().IntVar(&flagReleaseAfter, "release-after", tui.DefaultReleaseAfter, "Ticks before a held direction is let go")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fail("%v", err)
	}
}

// openLogger returns a logger writing to path, or discarding output when
// path is empty. The closer must be closed once the game ends.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	var out io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "shooter",
	})
	return logger, closer, nil
}

// playGame runs one terminal game. Deferred cleanup always runs before the
// caller exits.
func playGame() error {
	cfg := loadConfig()

	// The game owns the terminal, so logs only go to a file
	logger, logFile, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var store *storage.Store
	if !flagNoHistory {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			// Continue without history - game still works
			logger.Warn("could not open history database", "error", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	err = tui.Run(shooter.New(cfg), tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:        store,
		Logger:       logger,
		ReleaseAfter: flagReleaseAfter,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
