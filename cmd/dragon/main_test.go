package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dragon-runner/internal/storage"
)

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	flagStorage, flagDBPath = "memory", "/tmp/other.db"
	t.Cleanup(func() { flagStorage, flagDBPath = "", "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Storage.Backend != "memory" || cfg.Storage.Path != "/tmp/other.db" {
		t.Errorf("storage = %+v, expected flag values", cfg.Storage)
	}
}

func TestOpenBackendHistory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}

	cfg.Storage.Backend = storage.BackendMemory
	backend, history, err := openBackend(cfg)
	if err != nil {
		t.Fatalf("openBackend(memory) failed: %v", err)
	}
	backend.Close()
	if history != nil {
		t.Error("memory backend should not offer a run history")
	}

	cfg.Storage.Backend = storage.BackendSQLite
	cfg.Storage.Path = filepath.Join(t.TempDir(), "dragon.db")
	backend, history, err = openBackend(cfg)
	if err != nil {
		t.Fatalf("openBackend(sqlite) failed: %v", err)
	}
	defer backend.Close()
	if history == nil {
		t.Error("sqlite backend should offer a run history")
	}

	cfg.Storage.Backend = "sqlit"
	if _, _, err := openBackend(cfg); err == nil {
		t.Error("openBackend() of unknown backend should fail")
	}
}

func TestNewStateReadsStoredHighScore(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	kv := storage.NewMemoryKV()
	kv.Set(cfg.Storage.Key, "120")

	flagLogLevel = "error"
	t.Cleanup(func() { flagLogLevel = "info" })
	logger, err := newLogger(os.Stderr, "test")
	if err != nil {
		t.Fatal(err)
	}

	if hs := newState(kv, cfg, logger).HighScore(); hs != 120 {
		t.Errorf("HighScore = %d, expected 120", hs)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })

	if _, err := newLogger(os.Stderr, "test"); err == nil {
		t.Error("newLogger() should reject an unknown level")
	}
}

func TestOpenLogFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f, err := openLogFile("~/.dragon/dragon.log")
	if err != nil {
		t.Fatalf("openLogFile() failed: %v", err)
	}
	f.Close()

	if _, err := os.Stat(filepath.Join(home, ".dragon", "dragon.log")); err != nil {
		t.Errorf("log file not created: %v", err)
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
