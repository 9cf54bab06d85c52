package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-runner/internal/config"
	"github.com/vovakirdan/dragon-runner/internal/storage"
)

func newTestSSHServer(t *testing.T, game config.DragonConfig, kv *storage.MemoryKV) *SSHServer {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, game, kv, nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	return srv
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout <= 0 {
		t.Errorf("IdleTimeout = %v, expected a positive timeout", cfg.IdleTimeout)
	}
}

func TestSSHServerAddr(t *testing.T) {
	srv := newTestSSHServer(t, config.Default(), storage.NewMemoryKV())
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected the configured address", srv.Addr())
	}
}

func TestSSHServerNeedsStorage(t *testing.T) {
	_, err := NewSSHServer(DefaultSSHServerConfig(), config.Default(), nil, nil, nil)
	if err == nil {
		t.Error("NewSSHServer() without storage should fail")
	}
}

func TestSSHSessionsShareHighScore(t *testing.T) {
	game := config.Default()
	game.Storage.Key = "shared-record"
	kv := storage.NewMemoryKV()
	srv := newTestSSHServer(t, game, kv)
	logger := log.New(io.Discard)

	first := srv.newSessionState(logger)
	first.StartGame()
	first.IncrementScore(40)

	if v, _, _ := kv.Get("shared-record"); v != "40" {
		t.Fatalf("persisted = %q under the configured key, expected \"40\"", v)
	}

	// A later session starts from the shared record
	second := srv.newSessionState(logger)
	if second.HighScore() != 40 {
		t.Errorf("second session HighScore() = %d, expected 40", second.HighScore())
	}
	if second.Score() != 0 {
		t.Errorf("second session Score() = %d, expected its own run", second.Score())
	}
}
