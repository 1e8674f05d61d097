package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/circle-shooter/internal/platform/tui"
	"github.com/vovakirdan/circle-shooter/internal/storage"
)

var (
	flagHistoryLimit int
	flagInteractive  bool
	flagClear        bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished games",
	Long: `List the most recent finished games with their outcome and counters.

Examples:
  shooter history
  shooter history --limit 50
  shooter history --interactive
  shooter history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	outcomes, err := store.RecentOutcomes(flagHistoryLimit)
	if err != nil {
		store.Close()
		fail("%v", err)
	}
	summary, err := store.Summary()
	if err != nil {
		store.Close()
		fail("%v", err)
	}

	fmt.Println("Game History")
	fmt.Println(tui.SummaryLine(summary))
	fmt.Println()

	if len(outcomes) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' and finish a game to see it here!")
		return
	}

	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-5s  %s\n", "#", "Outcome", "Frames", "Shots", "Hits", "Date")
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-5s  %s\n", "-", "-------", "------", "-----", "----", "----")
	for _, o := range outcomes {
		fmt.Printf("  %-5d  %-7s  %-7d  %-6d  %-5d  %s\n",
			o.ID, strings.ToUpper(o.Outcome), o.Ticks, o.Shots, o.EnemiesDestroyed,
			o.CreatedAt.Format("2006-01-02 15:04"))
	}
}
