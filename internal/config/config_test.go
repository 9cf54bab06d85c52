package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v\nhardcoded = %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dragon.yaml")
	data := []byte("run:\n  base_speed: 8\nstorage:\n  backend: memory\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Run.BaseSpeed != 8 {
		t.Errorf("BaseSpeed = %v, expected 8", cfg.Run.BaseSpeed)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Backend = %q, expected memory", cfg.Storage.Backend)
	}
	// Untouched keys keep their defaults
	if cfg.Storage.Key != "dragon-highscore" {
		t.Errorf("Key = %q, expected default", cfg.Storage.Key)
	}
	if cfg.Score.Step != 1 {
		t.Errorf("Step = %d, expected default 1", cfg.Score.Step)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("run: [not, a, map"), 0o600)
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	os.WriteFile(invalid, []byte("run:\n  base_speed: 0\n"), 0o600)
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() of invalid config = %v, expected ErrInvalid", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	// No user or local config can be found from here
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadPrefersUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	dir := filepath.Join(home, ".dragon", "configs")
	os.MkdirAll(dir, 0o755)
	os.WriteFile(filepath.Join(dir, "dragon.yaml"), []byte("score:\n  step: 10\n"), 0o600)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Score.Step != 10 {
		t.Errorf("Step = %d, expected 10 from user config", cfg.Score.Step)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DragonConfig)
		ok     bool
	}{
		{"defaults", func(*DragonConfig) {}, true},
		{"zero speed", func(c *DragonConfig) { c.Run.BaseSpeed = 0 }, false},
		{"empty key", func(c *DragonConfig) { c.Storage.Key = "" }, false},
		{"empty backend", func(c *DragonConfig) { c.Storage.Backend = "" }, false},
		{"zero step", func(c *DragonConfig) { c.Score.Step = 0 }, false},
		{"negative history", func(c *DragonConfig) { c.Score.History = -1 }, false},
		{"level above one", func(c *DragonConfig) { c.Difficulty.InitialLevel = 1.5 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) should be accepted", s)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) should be rejected")
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:         true,
		MaxAt:           100,
		SpeedMultiplier: 1.0,
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 5},
		{50, 7.5},
		{100, 10},
		{1000, 10}, // clamped at max difficulty
		{-20, 5},   // negative scores clamp to the start
	}

	for _, tc := range tests {
		if got := d.Speed(5, tc.score); got != tc.expected {
			t.Errorf("Speed(5, %d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:         false,
		InitialLevel:    0.5,
		MaxAt:           100,
		SpeedMultiplier: 2.0,
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Speed(5, 90); got != 10 {
		t.Errorf("Speed() = %v, expected 10 at fixed level 0.5", got)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) failed: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir(%q) failed: %v", old, err)
		}
	})
}
