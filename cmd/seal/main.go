// seal is a terminal arcade game: steer a seal against gravity, eat the
// fish, dodge the sharks.
//
// Usage:
//
//	seal play              - Play in this terminal
//	seal serve             - Start SSH server for remote play
//	seal scores            - Show run history
//	seal config dump       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.seal/runs.db)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seal",
	Short: "Seal Snack - a terminal arcade game",
	Long: `Seal Snack puts you in charge of a hungry seal. Gravity pulls it down,
the boost key pushes it up. Fish drift in from the right and are worth
points; a single shark ends the run.

Examples:
  seal play
  seal play --difficulty hard
  seal serve --ssh :2222
  seal scores --interactive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.seal/runs.db", "Path to run history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// seed returns the --seed flag, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
