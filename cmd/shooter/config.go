package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/circle-shooter/internal/config"
	"github.com/vovakirdan/circle-shooter/internal/core"
	"github.com/vovakirdan/circle-shooter/internal/platform/palette"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration the game would run with, as YAML.

The file is looked up in this order: --config, ~/.shooter/shooter.yaml,
./configs/shooter.yaml, then the built-in defaults. Keys left out of a
file keep their default values.

Examples:
  shooter config > ~/.shooter/shooter.yaml
  shooter config --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	for _, c := range colorTokens(cfg) {
		if !palette.Valid(c) {
			fmt.Fprintf(os.Stderr, "Warning: unknown color %q will be drawn white\n", c)
		}
	}

	out, err := config.Encode(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(out)
}

// colorTokens lists every color the configuration refers to.
func colorTokens(cfg config.ShooterConfig) []core.Color {
	tokens := []core.Color{cfg.Player.Color, cfg.Bullet.Color}
	return append(tokens, cfg.Enemies.Palette...)
}
