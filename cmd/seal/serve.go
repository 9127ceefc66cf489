package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/games/seal"
	"github.com/vovakirdan/seal-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Seal Snack SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Runs are stored per-server, so all
players share the same history, each under their SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.seal/host_key

Examples:
  seal serve                           # Listen on :23234 with auto-generated key
  seal serve --ssh :2222               # Listen on port 2222
  seal serve --host-key ./my_host_key  # Use specific host key
  seal serve --difficulty hard         # Every session plays on hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runServe(cmd *cobra.Command, _ []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level: %v", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "seal-ssh",
	})

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	newGame := func(l *log.Logger) core.Game {
		return seal.New(gameCfg, seal.WithLogger(l))
	}

	server, err := tui.NewSSHServer(cfg, newGame, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Seal Snack SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		fail("server: %v", err)
	}
}
