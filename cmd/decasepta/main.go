// decasepta is a terminal chase: run forward, keep ahead of the pursuer.
//
// Usage:
//
//	decasepta play            - Pick a character and difficulty, then run
//	decasepta sim             - Run a headless chase and print the summary
//	decasepta characters      - List selectable characters
//	decasepta modes           - List difficulty modes
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--config <path>       - Chase config YAML (default: search path)
//	--log-file <path>     - Write logs to a file during interactive play
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "decasepta",
	Short: "Decasepta - outrun the chaser in your terminal",
	Long: `Decasepta is a side-scrolling chase played in the terminal.
Hold thrust to build speed. If the chaser reaches you, your score is
halved and it is knocked back.

Available commands:
  play        - Interactive chase with character selection
  sim         - Headless deterministic run
  characters  - Show all characters
  modes       - Show difficulty modes

Examples:
  decasepta play
  decasepta play --character Fox --difficulty hard
  decasepta sim --ticks 600 --thrust --difficulty insane`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to chase config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive play (default: no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(modesCmd)
}

// fail prints an error and exits. Used for startup failures only.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
