package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/decasepta/internal/chase"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List all characters",
	Long:  `Shows every character that can be picked in the menu.`,
	Run:   runCharacters,
}

func runCharacters(cmd *cobra.Command, args []string) {
	roster := chase.Roster()

	fmt.Println("Available characters:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-3s  %s  %s\n", "#", runewidth.FillRight("", 2), "Name")
	fmt.Printf("  %-3s  %s  %s\n", "-", runewidth.FillRight("", 2), "----")

	for i, c := range roster {
		fmt.Printf("  %-3d  %s  %s\n", i+1, runewidth.FillRight(c.Glyph, 2), c.Name)
	}

	fmt.Println()
	fmt.Println("Run 'decasepta play --character <name>' to start with one.")
}
