package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/decasepta/internal/chase"
	"github.com/vovakirdan/decasepta/internal/core"
	"github.com/vovakirdan/decasepta/internal/platform/tui"
	"github.com/vovakirdan/decasepta/internal/session"
)

var (
	flagCharacter  string
	flagDifficulty string
	flagBackground string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the chase",
	Long: `Pick a character and a difficulty, then run from the chaser.

Menu controls:
  Up/Down     - Choose character
  Left/Right  - Choose difficulty
  Enter       - Start

Chase controls:
  Space       - Thrust (hold)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  decasepta play
  decasepta play --character Wizard --difficulty easy
  decasepta play --background ./art/hills.txt
  decasepta play --log-file chase.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Preselect a character by name")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselect a difficulty: easy, medium, hard, insane")
	playCmd.Flags().StringVar(&flagBackground, "background", "", "Text-art file drawn behind the scene")
}

func runPlay(cmd *cobra.Command, args []string) {
	chaseCfg := loadConfig()
	character, _ := resolveCharacter(flagCharacter)
	difficulty, _ := resolveDifficulty(flagDifficulty)

	background, err := tui.LoadBackground(flagBackground)
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogFile(flagLogFile, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sess := session.New(chase.ParamsFromConfig(chaseCfg), logger)
	sess.Preselect(character.Name, difficulty)

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Scene:      tui.SceneFromConfig(chaseCfg, background),
		ThrustHold: time.Duration(chaseCfg.View.ThrustHoldMS) * time.Millisecond,
		Logger:     logger,
	}

	if err := tui.Run(sess, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	fmt.Print(sess.Summary().String())
}
