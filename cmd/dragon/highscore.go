package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-runner/internal/gamestate"
)

var flagReset bool

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Print or reset the high score",
	Long: `Print the raw high score record and how it parses.
With --reset the record is removed, so the next session starts at 0.

Examples:
  dragon highscore
  dragon highscore --reset`,
	Args: cobra.NoArgs,
	Run:  runHighscore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Remove the persisted high score")
}

func runHighscore(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	backend, _, err := openBackend(cfg)
	if err != nil {
		fail("%v", err)
	}
	defer backend.Close()

	key := cfg.Storage.Key

	if flagReset {
		if err := backend.Delete(key); err != nil {
			fail("%v", err)
		}
		fmt.Printf("High score under %q reset.\n", key)
		return
	}

	raw, ok, err := backend.Get(key)
	if err != nil {
		fail("%v", err)
	}
	if !ok {
		fmt.Printf("No high score stored under %q yet.\n", key)
		return
	}

	fmt.Printf("Raw:    %q\n", raw)
	fmt.Printf("Parsed: %d\n", gamestate.ParseHighScore(raw))
}
