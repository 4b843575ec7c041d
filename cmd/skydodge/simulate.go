package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skydodge/internal/core"
	"github.com/vovakirdan/skydodge/internal/games/skydodge"
	"github.com/vovakirdan/skydodge/internal/platform/headless"
	"github.com/vovakirdan/skydodge/internal/storage"
)

var (
	flagMaxTicks  int
	flagAutopilot bool
	flagRealtime  bool
	flagRecord    bool
	flagVerbose   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a game without a terminal and print the result",
	Long: `Run a session headless until the player is hit or the tick budget
runs out. Without --autopilot the player never moves.

Examples:
  skydodge simulate --seed 42
  skydodge simulate --autopilot --ticks 100000
  skydodge simulate --autopilot --realtime --fps 60
  skydodge simulate --autopilot --record`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagMaxTicks, "ticks", 1_000_000, "Maximum number of ticks (0 = unlimited)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer away from falling blocks")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at --fps instead of as fast as possible")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run and best score in the scores database")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log game events to stderr")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simulate",
		Level:           level,
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := skydodge.Options{Config: cfg, Seed: seed, Logger: logger}

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
		opts.Store = store
	}

	var pilot *skydodge.Autopilot
	if flagAutopilot {
		pilot = skydodge.NewAutopilot(cfg)
		opts.Input = pilot
	}

	engine := skydodge.New(opts)

	runOpts := headless.Options{MaxTicks: flagMaxTicks}
	if flagRealtime && flagFPS > 0 {
		runOpts.Interval = time.Second / time.Duration(flagFPS)
	}
	if pilot != nil {
		runOpts.BeforeTick = func(int) {
			pilot.Steer(engine.Player(), engine.Obstacles())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	res, runErr := headless.Run(ctx, engine, headless.NullSurface{}, runOpts)
	if runErr != nil {
		logger.Warn("simulation interrupted", "ticks", res.Ticks, "error", runErr)
	}

	st := engine.State()
	if store != nil && st.GameOver && st.Score > 0 {
		if _, err := store.SaveScore(skydodge.GameID, st.Score); err != nil {
			logger.Error("cannot record run", "error", err)
		}
	}

	printSimulation(seed, st, res, time.Since(started))
	return nil
}

func printSimulation(seed int64, st core.GameState, res headless.Result, elapsed time.Duration) {
	outcome := "hit"
	if !st.GameOver {
		outcome = "survived"
	}
	fmt.Printf("seed:      %d\n", seed)
	fmt.Printf("outcome:   %s\n", outcome)
	fmt.Printf("score:     %s\n", humanize.Comma(int64(st.Score)))
	fmt.Printf("best:      %s\n", humanize.Comma(int64(st.BestScore)))
	fmt.Printf("frames:    %s\n", humanize.Comma(int64(st.Frame)))
	fmt.Printf("speed:     %.1f\n", st.Speed)
	fmt.Printf("obstacles: %d\n", st.Obstacles)
	fmt.Printf("ticks:     %s in %s\n", humanize.Comma(int64(res.Ticks)), elapsed.Round(time.Millisecond))
}
