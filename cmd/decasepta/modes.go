package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/decasepta/internal/config"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List difficulty modes",
	Long:  `Shows each difficulty and the chaser speed it sets.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	fmt.Println("Difficulty modes:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-8s  %s\n", "Mode", "Chaser speed")
	fmt.Printf("  %-8s  %s\n", "----", "------------")

	for _, d := range config.Difficulties() {
		marker := ""
		if d == config.DefaultDifficulty {
			marker = "  (default)"
		}
		fmt.Printf("  %-8s  %.1f units/s%s\n", d, config.ChaserSpeedFor(d), marker)
	}
}
