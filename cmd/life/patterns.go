package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/patterns"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List built-in seed patterns",
	Long:  `Shows the seed patterns that can be passed to 'life play --pattern'.`,
	Run:   runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) {
	list := patterns.List()

	if len(list) == 0 {
		fmt.Println("No patterns available.")
		return
	}

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range list {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Title")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-----")

	for _, p := range list {
		size := fmt.Sprintf("%dx%d", p.Width, p.Height)
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, p.Name, size, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'life play --pattern <name>' to start from a pattern.")
}
