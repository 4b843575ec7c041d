package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skydodge/internal/config"
	"github.com/vovakirdan/skydodge/internal/core"
	"github.com/vovakirdan/skydodge/internal/platform/tui"
	"github.com/vovakirdan/skydodge/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Sky Dodge",
	Long: `Start a game in this terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space/Down - Stop
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower blocks that speed up gently
  normal - Default speed and progression
  hard   - Faster blocks that speed up quickly
  fixed  - No progression, blocks keep their starting speed

Examples:
  skydodge play
  skydodge play --difficulty easy
  skydodge play --config ./my-skydodge.yaml
  skydodge play --log ./skydodge.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug logs to this file")
}

// addGameFlags registers the flags that shape a game session.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig loads the configuration and applies the difficulty preset.
func loadGameConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.Config{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// openLogger returns a file logger, or a discarding one when path is empty.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "skydodge",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, logCloser, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	// The game still works without a database; the best score then only
	// lasts for this process.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		opts.Store = storage.NewMemoryStore()
	} else {
		defer store.Close()
		opts.Store = store
		opts.History = store
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
