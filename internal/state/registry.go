package state

import (
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-agent-console/internal/app"
)

// Registry owns the stores of one app instance.
type Registry struct {
	mu     sync.Mutex
	stores map[string]resettable
}

type resettable interface {
	Reset()
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]resettable)}
}

// Install implements app.Plugin. The registry becomes the "$state" global.
func (r *Registry) Install(a *app.App) error {
	a.Globals().Set(app.StateKey, r)
	return nil
}

// IDs returns the ids of the stores created so far, sorted.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.stores))
	for id := range r.stores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ResetAll resets every store to its initial state.
func (r *Registry) ResetAll() {
	r.mu.Lock()
	stores := make([]resettable, 0, len(r.stores))
	for _, s := range r.stores {
		stores = append(stores, s)
	}
	r.mu.Unlock()

	for _, s := range stores {
		s.Reset()
	}
}

// FromApp returns the registry installed into a.
func FromApp(a *app.App) (*Registry, error) {
	r, err := app.Global[*Registry](a, app.StateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRegistry, err)
	}
	return r, nil
}

// Definition declares a store. It holds no state itself.
type Definition[T any] struct {
	id   string
	init func() T
}

// Define declares a store identified by id whose initial state is
// produced by init.
func Define[T any](id string, init func() T) Definition[T] {
	return Definition[T]{id: id, init: init}
}

// ID returns the store id.
func (d Definition[T]) ID() string {
	return d.id
}

// Use returns the store of reg, creating it on first use. Every call with
// the same registry returns the same store.
func (d Definition[T]) Use(reg *Registry) (*Store[T], error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if existing, ok := reg.stores[d.id]; ok {
		s, ok := existing.(*Store[T])
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrStoreType, d.id)
		}
		return s, nil
	}

	s := &Store[T]{id: d.id, init: d.init, state: d.init()}
	reg.stores[d.id] = s
	return s, nil
}

// Store holds one piece of state. Access is goroutine-safe.
type Store[T any] struct {
	id   string
	init func() T

	mu    sync.RWMutex
	state T
}

// ID returns the store id.
func (s *Store[T]) ID() string {
	return s.id
}

// State returns the current state. Reference types (maps, slices) inside T
// are shared with the store and must only be changed through Patch.
func (s *Store[T]) State() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// View calls fn with the state under the read lock. Use it instead of
// State when T holds maps or slices that others may patch concurrently.
func (s *Store[T]) View(fn func(state T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Patch applies fn to the state under the store lock.
func (s *Store[T]) Patch(fn func(state *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Reset restores the initial state.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.init()
}
