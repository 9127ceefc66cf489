package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seal-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after the search
path and the --difficulty preset are applied. Redirect the output to a file
to start a custom config:

  seal config dump > ~/.seal/configs/seal.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

func init() {
	configDumpCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configDumpCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(out)
}
