package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragon-runner/internal/config"
	"github.com/vovakirdan/dragon-runner/internal/core"
	"github.com/vovakirdan/dragon-runner/internal/platform/tui"
)

var (
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive a run from the keyboard",
	Long: `Open the console and drive the game state store by hand.

Controls:
  Enter/S    - Start a run (restarts after game over)
  Space      - Score one step
  1-9        - Score that many steps
  X          - Game over
  J / I      - Toggle jumping / invincibility
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest speed, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, the speed stays at the base

Every run starts at the base speed; the preset's level applies from
the first score.

Examples:
  dragon play
  dragon play --difficulty hard
  dragon play --storage file
  dragon play --config ./my-dragon.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.dragon/dragon.log", "Where the console writes its log")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		fail("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)

	// The alt screen owns the terminal, so the log goes to a file
	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "dragon")
	if err != nil {
		fail("%v", err)
	}

	backend, history, err := openBackend(cfg)
	if err != nil {
		fail("%v", err)
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Info("console started", "backend", cfg.Storage.Backend, "difficulty", preset)
	state := newState(backend, cfg, logger)
	runErr := tui.Run(state, history, cfg, rt, logger)

	// Close backend before potential exit
	if closeErr := backend.Close(); closeErr != nil {
		logger.Warn("could not close storage", "error", closeErr)
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
