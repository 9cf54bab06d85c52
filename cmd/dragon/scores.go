package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-runner/internal/platform/tui"
	"github.com/vovakirdan/dragon-runner/internal/storage"
)

var (
	flagScoresTop   bool
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display finished runs from the sqlite run history.
The history is kept in the database given by --db (or the config)
whatever backend holds the high score.

Examples:
  dragon scores
  dragon scores --top
  dragon scores --all
  dragon scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTop, "top", false, "Order by score instead of by time")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "List every recorded run")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(tui.GameID); err != nil {
			fail("%v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	var scores []storage.ScoreEntry
	switch {
	case flagScoresAll:
		scores, err = store.AllScores(tui.GameID)
	case flagScoresTop:
		scores, err = store.TopScores(tui.GameID, flagScoresLimit)
	default:
		scores, err = store.RecentScores(tui.GameID, flagScoresLimit)
	}
	if err != nil {
		fail("retrieving scores: %v", err)
	}

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dragon play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Run", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "---", "-----", "----")

	for _, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", entry.ID, entry.Score, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(tui.GameID); err == nil {
		fmt.Printf("Best run: %d\n", best)
	}
	if stats, err := store.GetGameStats(tui.GameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
}
