// dragon is a terminal console for the dragon runner game state store.
//
// Usage:
//
//	dragon play              - Drive a run from the keyboard
//	dragon status            - Print the persisted high score
//	dragon highscore         - Print or reset the high score
//	dragon scores            - Show recorded runs
//	dragon backends          - List storage backends
//	dragon serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Path to a config YAML
//	--storage <name>    - Storage backend (sqlite, file, memory)
//	--db <path>         - Database path for the sqlite backend
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-runner/internal/config"
	"github.com/vovakirdan/dragon-runner/internal/gamestate"
	"github.com/vovakirdan/dragon-runner/internal/platform/tui"
	"github.com/vovakirdan/dragon-runner/internal/registry"
	"github.com/vovakirdan/dragon-runner/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagStorage  string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Dragon Runner - score keeping for an endless runner",
	Long: `Dragon Runner keeps the state of an endless runner: the current run,
its score and the persisted high score.

Available commands:
  play      - Drive a run from the keyboard
  status    - Print the persisted high score
  highscore - Print or reset the high score
  scores    - Show recorded runs
  backends  - List storage backends
  serve     - Start SSH server for remote play

Examples:
  dragon play
  dragon play --storage memory
  dragon highscore --reset
  dragon serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "Storage backend (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the sqlite database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config and applies the global flag overrides.
func loadConfig() (config.DragonConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagStorage != "" {
		cfg.Storage.Backend = flagStorage
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openBackend opens the configured storage backend. The run history is
// only available when the backend is the sqlite store.
func openBackend(cfg config.DragonConfig) (registry.Backend, tui.RunHistory, error) {
	backend, err := registry.Open(cfg.Storage.Backend, registry.Options{
		Path:    cfg.Storage.Path,
		AppName: cfg.Storage.AppName,
	})
	if err != nil {
		return nil, nil, err
	}

	var history tui.RunHistory
	if s, ok := backend.(*storage.Store); ok {
		history = s
	}
	return backend, history, nil
}

// newState creates a game state store over backend using the config.
func newState(backend gamestate.Storage, cfg config.DragonConfig, logger *log.Logger) *gamestate.Store {
	return gamestate.New(backend,
		gamestate.WithLogger(logger),
		gamestate.WithBaseSpeed(cfg.Run.BaseSpeed),
		gamestate.WithKey(cfg.Storage.Key),
	)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
