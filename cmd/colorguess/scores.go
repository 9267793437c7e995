package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorguess/internal/storage"
)

var (
	flagUser  string
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best streak and streak history",
	Long: `Display the best streak and the longest finished streaks.

Local play is stored under the "local" user; SSH players are stored
under their SSH user name.

Examples:
  colorguess scores
  colorguess scores --user alice --limit 20`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagUser, "user", storage.DefaultNamespace, "Player whose streaks to show")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of streaks to show")
}

func runScores(cmd *cobra.Command, args []string) {
	gameCfg := loadConfig()

	store, bucket, err := openBucket(flagUser)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening streak database: %v\n", err)
		os.Exit(1)
	}

	best, _, err := bucket.Get(gameCfg.StorageKey)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error reading best streak: %v\n", err)
		os.Exit(1)
	}

	entries, err := bucket.TopStreaks(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving streaks: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if best == "" {
		best = "0"
	}
	fmt.Printf("Streaks - %s\n", bucket.Namespace())
	fmt.Println()
	fmt.Printf("Best streak: %s\n", best)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No streaks recorded yet.")
		fmt.Println()
		fmt.Println("Play 'colorguess play' to start one!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-4s  %s\n", "Rank", "Streak", "Mode", "Date")
	fmt.Printf("  %-4s  %-6s  %-4s  %s\n", "----", "------", "----", "----")

	for i, e := range entries {
		dateStr := e.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-4s  %s\n", i+1, e.Length, e.Mode, dateStr)
	}
}
