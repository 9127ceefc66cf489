package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seal-arcade/internal/games/seal"
	"github.com/vovakirdan/seal-arcade/internal/platform/tui"
	"github.com/vovakirdan/seal-arcade/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best runs recorded in the database.

Examples:
  seal scores
  seal scores --limit 25
  seal scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a full-screen table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run history: %v", err)
	}
	defer store.Close()

	const title = "Seal Snack"

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, seal.ID, title, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	runs, err := store.TopRuns(seal.ID, flagLimit)
	if err != nil {
		store.Close()
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'seal play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Fish", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "----", "------", "-----", "----", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-5d  %s\n",
			i+1, player, r.Score, r.FishEaten, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(seal.ID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Fish eaten: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalFish)
	}
}
