package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagConfig   string
	flagPattern  string
	flagWidth    int
	flagHeight   int
	flagInterval int
	flagLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Edit and run a board",
	Long: `Open a board in the terminal.

The board starts paused. Click cells to toggle them, then press space to
let the board evolve. Press space again to pause and edit.

Controls:
  Mouse      - Toggle a cell (paused only)
  Space      - Run/pause
  C          - Clear the board (paused only)
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Configuration is read from --config, ~/.life/configs/life.yaml or
./configs/life.yaml, falling back to built-in defaults. Flags override it.

Examples:
  life play
  life play --pattern gosper-gun --width 60 --height 30
  life play --pattern ./my-pattern.yaml
  life play --interval 100 --log-file /tmp/life.log
  life play --config ./my-life.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagPattern, "pattern", "", "Seed pattern name or YAML file")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells (0 = from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells (0 = from config)")
	playCmd.Flags().IntVar(&flagInterval, "interval", 0, "Evolution interval in milliseconds (0 = from config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadLife(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, fileErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if fileErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", fileErr)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "life",
		Level:           log.DebugLevel,
	})

	sim, err := life.NewSimulation(cfg.BoardOptions(),
		life.WithInterval(cfg.Interval()),
		life.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var patternName string
	if cfg.Seed.Pattern != "" {
		p, _, seedErr := patterns.Seed(sim, cfg.Seed.Pattern)
		if seedErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", seedErr)
			fmt.Fprintln(os.Stderr, "Run 'life patterns' to see available patterns.")
			os.Exit(1)
		}
		patternName = p.Name
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without storage
		store = nil
	}

	runErr := tui.Run(sim, store, rc, tui.Options{Pattern: patternName, Logger: logger})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cfg *config.LifeConfig) {
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if flagInterval > 0 {
		cfg.Timing.IntervalMS = flagInterval
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagPattern != "" {
		cfg.Seed.Pattern = flagPattern
	}
}
