package storage

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

// FileKV keeps each key as an item in the per-user application data
// directory managed by gdata. On wasm builds gdata falls back to the
// browser's local storage, so the same keys work in both places.
type FileKV struct {
	mu sync.Mutex
	m  *gdata.Manager
}

// OpenFileKV opens the data directory for the given application name.
func OpenFileKV(appName string) (*FileKV, error) {
	if appName == "" {
		return nil, fmt.Errorf("storage: file backend needs an application name")
	}

	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data directory for %q: %w", appName, err)
	}

	return &FileKV{m: m}, nil
}

// Get returns the value stored under key.
func (f *FileKV) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.m == nil {
		return "", false, ErrClosed
	}

	data, err := f.m.LoadItem(key)
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot load item %q: %w", key, err)
	}
	if data == nil {
		// Never saved
		return "", false, nil
	}
	return string(data), true, nil
}

// Set stores value under key.
func (f *FileKV) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.m == nil {
		return ErrClosed
	}

	if err := f.m.SaveItem(key, []byte(value)); err != nil {
		return fmt.Errorf("storage: cannot save item %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.m == nil {
		return ErrClosed
	}

	if err := f.m.DeleteItem(key); err != nil {
		return fmt.Errorf("storage: cannot delete item %q: %w", key, err)
	}
	return nil
}

// Close releases the manager. gdata holds no open handles, so this only
// marks the backend unusable.
func (f *FileKV) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.m = nil
	return nil
}
