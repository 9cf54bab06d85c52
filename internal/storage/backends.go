package storage

import (
	"github.com/vovakirdan/dragon-runner/internal/registry"
)

// Backend names accepted by --storage.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Register the backends with the registry
func init() {
	registry.Register(BackendSQLite, "SQLite database, also keeps run history", func(opts registry.Options) (registry.Backend, error) {
		return Open(opts.Path)
	})
	registry.Register(BackendFile, "one file per key in the user data directory", func(opts registry.Options) (registry.Backend, error) {
		return OpenFileKV(opts.AppName)
	})
	registry.Register(BackendMemory, "in-process only, forgotten on exit", func(registry.Options) (registry.Backend, error) {
		return NewMemoryKV(), nil
	})
}

// Ensure every backend satisfies the registry contract
var (
	_ registry.Backend = (*Store)(nil)
	_ registry.Backend = (*FileKV)(nil)
	_ registry.Backend = (*MemoryKV)(nil)
)
