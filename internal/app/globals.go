package app

import (
	"fmt"
	"sort"
	"sync"
)

// Well-known global property keys.
const (
	// APIKey holds the configured backend HTTP client (*adapter.APIClient).
	APIKey = "$api"
	// BackendKey holds the typed backend calls (adapter.BackendAdapter).
	BackendKey = "$backend"
	// StateKey holds the state registry installed by the state plugin.
	StateKey = "$state"
	// RouterKey holds the installed router.
	RouterKey = "$router"
)

// GlobalProperties is a goroutine-safe bag of values shared by every view
// of an [App].
type GlobalProperties struct {
	mu     sync.RWMutex
	values map[string]any
}

func newGlobalProperties() *GlobalProperties {
	return &GlobalProperties{values: make(map[string]any)}
}

// Set stores v under key, replacing any previous value.
func (g *GlobalProperties) Set(key string, v any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values[key] = v
}

// Get returns the value stored under key.
func (g *GlobalProperties) Get(key string) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.values[key]
	return v, ok
}

// Keys returns the defined keys in sorted order.
func (g *GlobalProperties) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]string, 0, len(g.values))
	for k := range g.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Global returns the global property key of a as a T.
func Global[T any](a *App, key string) (T, error) {
	var zero T

	v, ok := a.Globals().Get(key)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrGlobalNotDefined, key)
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("global property %s has type %T, want %T", key, v, zero)
	}

	return t, nil
}
