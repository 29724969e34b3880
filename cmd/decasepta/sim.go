package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/decasepta/internal/chase"
	"github.com/vovakirdan/decasepta/internal/core"
	"github.com/vovakirdan/decasepta/internal/platform/tui"
	"github.com/vovakirdan/decasepta/internal/session"
)

var (
	flagTicks    int
	flagDT       float64
	flagThrust   bool
	flagRealtime bool
	flagTrace    int
	flagSimChar  string
	flagSimMode  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless chase",
	Long: `Run the chase without a terminal UI and print the summary.

The run confirms the selection, steps the given number of frames and quits.
With a fixed dt the result is fully deterministic. --realtime paces frames
with the wall clock at --fps and integrates with the measured dt instead.
Ctrl+C ends the run at the next frame.

Examples:
  decasepta sim --ticks 600 --thrust
  decasepta sim --ticks 3000 --dt 0.5 --difficulty insane --trace 10
  decasepta sim --ticks 300 --realtime --thrust --character Fox`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of chase frames to run")
	simCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60.0, "Seconds per frame (ignored with --realtime)")
	simCmd.Flags().BoolVar(&flagThrust, "thrust", false, "Hold thrust for the whole run")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with the wall clock")
	simCmd.Flags().IntVar(&flagTrace, "trace", 0, "Print the HUD line every N frames (0 = off)")
	simCmd.Flags().StringVar(&flagSimChar, "character", chase.DefaultCharacter().Name, "Character name")
	simCmd.Flags().StringVar(&flagSimMode, "difficulty", "medium", "Difficulty: easy, medium, hard, insane")
}

func runSim(cmd *cobra.Command, args []string) {
	if flagTicks < 0 {
		fail("--ticks must not be negative")
	}

	chaseCfg := loadConfig()
	character, _ := resolveCharacter(flagSimChar)
	difficulty, _ := resolveDifficulty(flagSimMode)

	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}

	sess := session.New(chase.ParamsFromConfig(chaseCfg), logger)
	sess.Preselect(character.Name, difficulty)

	var clock session.Clock = session.FixedClock{DT: flagDT}
	if flagRealtime {
		clock = session.NewFrameClock(flagFPS)
	}

	frames := make([]core.InputFrame, 0, flagTicks+1)
	frames = append(frames, core.FrameOf(core.ActionConfirm))
	for range flagTicks {
		if flagThrust {
			frames = append(frames, core.FrameOf(core.ActionThrust))
		} else {
			frames = append(frames, core.NewInputFrame())
		}
	}

	var out session.Renderer = session.RenderFunc(func(chase.Snapshot) error { return nil })
	if flagTrace > 0 {
		out = session.RenderFunc(func(snap chase.Snapshot) error {
			if snap.ElapsedTicks%flagTrace == 0 {
				_, err := fmt.Println(tui.HUDLine(snap))
				return err
			}
			return nil
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &session.Loop{Session: sess, Clock: clock, Logger: logger}
	summary, err := loop.Run(ctx, session.Script(frames...), out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}

	fmt.Print(summary.String())
}
