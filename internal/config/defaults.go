package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// Default returns the built-in configuration.
func Default() DragonConfig {
	return DragonConfig{
		Run: RunConfig{
			BaseSpeed: 5,
		},
		Storage: StorageConfig{
			Backend: "sqlite",
			Path:    "~/.dragon/dragon.db",
			AppName: "dragon-runner",
			Key:     "dragon-highscore",
		},
		Score: ScoreConfig{
			Step:    1,
			History: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			InitialLevel:    0.0,
			MaxAt:           500,
			SpeedMultiplier: 1.0,
		},
		Theme: ThemeConfig{
			Leaf:    "#166534",
			Rock:    "#451a03",
			Volcano: "#991b1b",
			Glow:    "#fbbf24",
			Sky:     "#0f172a",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
