package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best finished runs and overall statistics.

Examples:
  platformer scores
  platformer scores --limit 20
  platformer scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	game := platformer.New()
	gameID := game.ID()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	// Get best runs
	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Coins", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	// Print runs
	for i, r := range runs {
		level := fmt.Sprintf("%d", r.Level+1)
		if r.Won {
			level = "WON"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-6s  %s\n", i+1, r.Player, r.Score, r.Coins, level, dateStr)
	}

	// Show totals
	stats, err := store.GameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.0f  Coins: %d\n",
			stats.RunsCount, stats.Wins, stats.HighScore, stats.AvgScore, stats.TotalCoins)
	}
}
