// life is Conway's Game of Life in the terminal.
//
// Usage:
//
//	life play [--pattern <name|file>]  - Edit and run a board
//	life patterns                      - List built-in seed patterns
//	life serve                         - Start SSH server for remote sessions
//	life history                       - Show recently recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: from config)
//	--db <path>     - Set database path (default: ~/.life/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life runs Conway's Game of Life (B3/S23) on a fixed, non-wrapping grid.

Click cells to toggle them while the board is paused, then press space to
let it evolve.

Available commands:
  play      - Edit and run a board
  patterns  - List built-in seed patterns
  serve     - Start SSH server for remote sessions
  history   - Show recently recorded runs

Examples:
  life play
  life play --pattern glider
  life play --pattern ./my-pattern.yaml --width 60 --height 30
  life serve --ssh :2222
  life history --limit 5`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/history.db", "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
