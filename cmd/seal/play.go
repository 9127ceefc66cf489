package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seal-arcade/internal/config"
	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/games/seal"
	"github.com/vovakirdan/seal-arcade/internal/platform/tui"
	"github.com/vovakirdan/seal-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Seal Snack",
	Long: `Start the game in this terminal.

Controls:
  Space/Up/W  - Boost upward (also starts a run)
  Enter       - Start / play again
  P/Esc       - Pause
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  seal play
  seal play --difficulty hard
  seal play --config ./my-seal.yaml
  seal play --log seal.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file (the screen is owned by the game)")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// loadConfig loads the game config and applies the --difficulty preset.
func loadConfig() (config.SealConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SealConfig{}, err
	}
	cfg, err := config.LoadSeal(flagConfig)
	if err != nil {
		return config.SealConfig{}, err
	}
	config.ApplySealPreset(&cfg, preset)
	return cfg, nil
}

// openLogger returns a logger writing to --log, or a discarding one.
// The returned close func is never nil.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "seal",
	})
	return logger, func() { f.Close() }, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}

	opts := []tui.Option{
		tui.WithPlayer(os.Getenv("USER")),
		tui.WithLogger(logger),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
	} else {
		opts = append(opts, tui.WithStore(store))
	}

	game := seal.New(cfg, seal.WithLogger(logger))
	runErr := tui.Run(game, rc, opts...)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}
