// Package config provides YAML-based configuration loading and speed
// progression for the dragon runner.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DragonConfig contains all configuration for the dragon runner.
type DragonConfig struct {
	Run        RunConfig        `yaml:"run"`
	Storage    StorageConfig    `yaml:"storage"`
	Score      ScoreConfig      `yaml:"score"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// RunConfig defines the values a run starts from.
type RunConfig struct {
	BaseSpeed float64 `yaml:"base_speed"`
}

// StorageConfig selects where the high score and run history live.
type StorageConfig struct {
	Backend string `yaml:"backend"`  // "sqlite", "file" or "memory"
	Path    string `yaml:"path"`     // SQLite database path
	AppName string `yaml:"app_name"` // Data directory name for the file backend
	Key     string `yaml:"key"`      // Key the high score is stored under
}

// ScoreConfig defines how points are awarded and shown.
type ScoreConfig struct {
	Step    int `yaml:"step"`    // Points per award key press
	History int `yaml:"history"` // Finished runs listed in the console
}

// DifficultyConfig defines how speed grows with score during a run.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialLevel    float64 `yaml:"initial_level"`    // 0.0 = easy, 1.0 = hard
	MaxAt           int     `yaml:"max_at"`           // Score at which max difficulty is reached
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// ThemeConfig holds the jurassic palette as hex colors.
type ThemeConfig struct {
	Leaf    string `yaml:"leaf"`
	Rock    string `yaml:"rock"`
	Volcano string `yaml:"volcano"`
	Glow    string `yaml:"glow"`
	Sky     string `yaml:"sky"`
}

// Validate reports the first setting the game cannot run with.
func (c DragonConfig) Validate() error {
	switch {
	case c.Run.BaseSpeed <= 0:
		return fmt.Errorf("%w: run.base_speed must be positive, got %v", ErrInvalid, c.Run.BaseSpeed)
	case c.Storage.Key == "":
		return fmt.Errorf("%w: storage.key must not be empty", ErrInvalid)
	case c.Storage.Backend == "":
		return fmt.Errorf("%w: storage.backend must not be empty", ErrInvalid)
	case c.Score.Step <= 0:
		return fmt.Errorf("%w: score.step must be positive, got %d", ErrInvalid, c.Score.Step)
	case c.Score.History < 0:
		return fmt.Errorf("%w: score.history must not be negative, got %d", ErrInvalid, c.Score.History)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("%w: difficulty.initial_level must be within [0, 1], got %v", ErrInvalid, c.Difficulty.InitialLevel)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. An empty string keeps the
// config's own settings and is reported with ok == true.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DragonConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
