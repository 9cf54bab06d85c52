// Package registry provides a global registry of storage backends.
// Backends register themselves in init() functions, allowing the CLI and the
// SSH server to pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Backend is a key-value store the game state can persist into.
type Backend interface {
	// Get returns the value under key; ok is false if it was never set.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key.
	Set(key, value string) error

	// Delete removes key. Missing keys are not an error.
	Delete(key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Options carries the settings a backend factory may need.
type Options struct {
	Path    string // Database path for file-based backends
	AppName string // Application name for per-user data directories
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory opens a backend with the given options.
type Factory func(opts Options) (Backend, error)

type entry struct {
	factory     Factory
	description string
}

var (
	backends = make(map[string]entry)
	mu       sync.RWMutex
)

// maxSuggestDistance is the largest edit distance still offered as a suggestion.
const maxSuggestDistance = 3

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	backends[name] = entry{factory: f, description: description}
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(backends))
	for name, e := range backends {
		result = append(result, BackendInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open instantiates a backend by name.
// Unknown names fail with a suggestion of the closest registered name.
func Open(name string, opts Options) (Backend, error) {
	mu.RLock()
	e, ok := backends[name]
	mu.RUnlock()

	if !ok {
		if s := Suggest(name); s != "" {
			return nil, fmt.Errorf("registry: unknown backend %q, did you mean %q?", name, s)
		}
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	b, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot open %s backend: %w", name, err)
	}
	return b, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := backends[name]
	return ok
}

// Suggest returns the registered name closest to name, or "" if none is near.
func Suggest(name string) string {
	mu.RLock()
	defer mu.RUnlock()

	best := ""
	bestDist := maxSuggestDistance + 1
	for candidate := range backends {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist || (d == bestDist && candidate < best) {
			best = candidate
			bestDist = d
		}
	}
	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}
