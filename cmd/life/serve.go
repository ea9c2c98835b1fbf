package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/patterns"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that gives every connection its own board.

Sessions start from the same configuration (and --pattern seed) but evolve
independently. Finished runs are recorded in the shared history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.life/host_key

Examples:
  life serve                           # Listen on :23234 with auto-generated key
  life serve --ssh :2222               # Listen on port 2222
  life serve --pattern glider          # Seed every session with a glider
  life serve --host-key ./my_host_key  # Use specific host key
  life serve --db ./history.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	serveCmd.Flags().StringVar(&flagPattern, "pattern", "", "Seed pattern name or YAML file")
	serveCmd.Flags().IntVar(&flagWidth, "width", 0, "Grid width in cells (0 = from config)")
	serveCmd.Flags().IntVar(&flagHeight, "height", 0, "Grid height in cells (0 = from config)")
	serveCmd.Flags().IntVar(&flagInterval, "interval", 0, "Evolution interval in milliseconds (0 = from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	lifeCfg, err := config.LoadLife(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&lifeCfg)
	if lifeCfg.Seed.Pattern != "" {
		if _, err := patterns.Resolve(lifeCfg.Seed.Pattern); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Life:        lifeCfg,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting life SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
