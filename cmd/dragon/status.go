package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the persisted high score",
	Long: `Open the configured backend the way a new session would and print
the state it starts in.

Examples:
  dragon status
  dragon status --storage file`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr, "dragon")
	if err != nil {
		fail("%v", err)
	}

	backend, _, err := openBackend(cfg)
	if err != nil {
		fail("%v", err)
	}
	defer backend.Close()

	snap := newState(backend, cfg, logger).Snapshot()

	fmt.Printf("Backend:    %s\n", cfg.Storage.Backend)
	fmt.Printf("Key:        %s\n", cfg.Storage.Key)
	fmt.Printf("Status:     %s\n", snap.Status)
	fmt.Printf("High score: %d\n", snap.HighScore)
	fmt.Printf("Speed:      %.1f\n", snap.Speed)
}
