package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagHistoryLimit   int
	flagHistoryPattern string
	flagHistoryClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently recorded runs",
	Long: `Shows the most recent runs recorded in the history database.

A run is recorded when a session ends after at least one generation.

Examples:
  life history
  life history --limit 25
  life history --pattern glider
  life history --clear
  life history --db ./history.db`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().StringVar(&flagHistoryPattern, "pattern", "", "Report the longest run for this pattern (empty = hand-drawn)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	runs, err := store.RecentRuns(core.Clamp(flagHistoryLimit, 1, 1000))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read history: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("Run 'life play' and let the board evolve.")
		return
	}

	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-16s  %-14s  %-7s  %11s  %6s  %6s\n", "Date", "Pattern", "Grid", "Generations", "Peak", "Final")
	fmt.Printf("  %-16s  %-14s  %-7s  %11s  %6s  %6s\n", "----", "-------", "----", "-----------", "----", "-----")

	for _, r := range runs {
		pattern := r.Pattern
		if pattern == "" {
			pattern = "(drawn)"
		}
		grid := fmt.Sprintf("%dx%d", r.Width, r.Height)
		fmt.Printf("  %-16s  %-14s  %-7s  %11d  %6d  %6d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), pattern, grid,
			r.Generations, r.PeakPopulation, r.FinalPopulation)
	}

	if best, err := store.LongestRun(flagHistoryPattern); err == nil && best > 0 {
		label := "hand-drawn"
		if flagHistoryPattern != "" {
			label = flagHistoryPattern
		}
		fmt.Println()
		fmt.Printf("Longest %s run: %d generations\n", label, best)
	}
}
