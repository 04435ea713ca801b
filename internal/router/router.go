package router

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-agent-console/internal/app"
	"github.com/MKhiriev/go-agent-console/internal/logger"
)

type entry struct {
	route Route

	mu     sync.Mutex
	cached Component
}

// component returns the route component, loading it if needed. The entry
// lock is held during the load so concurrent navigations share one load.
func (e *entry) component(ctx context.Context) (Component, bool, error) {
	if !e.route.IsLazy() {
		return e.route.component, false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cached != nil {
		return e.cached, false, nil
	}

	c, err := e.route.load(ctx)
	if err != nil {
		return nil, false, err
	}
	if c == nil {
		return nil, false, ErrNilLoadedResult
	}

	e.cached = c
	return c, true, nil
}

// Router resolves paths against an ordered route table.
type Router struct {
	entries []*entry
	byName  map[string]*entry
	logger  *logger.Logger
}

// New creates a router over routes. Paths and names must be unique.
func New(logger *logger.Logger, routes ...Route) (*Router, error) {
	rt := &Router{
		byName: make(map[string]*entry, len(routes)),
		logger: logger.WithComponent("router"),
	}

	paths := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if _, ok := paths[r.Path]; ok {
			return nil, fmt.Errorf("%w: path %s", ErrDuplicateRoute, r.Path)
		}
		if _, ok := rt.byName[r.Name]; ok {
			return nil, fmt.Errorf("%w: name %s", ErrDuplicateRoute, r.Name)
		}

		e := &entry{route: r}
		paths[r.Path] = struct{}{}
		rt.byName[r.Name] = e
		rt.entries = append(rt.entries, e)
	}

	return rt, nil
}

// Install implements app.Plugin.
func (rt *Router) Install(a *app.App) error {
	return a.SetRouter(rt)
}

// Routes returns the route table in declaration order.
func (rt *Router) Routes() []Route {
	out := make([]Route, len(rt.entries))
	for i, e := range rt.entries {
		out[i] = e.route
	}
	return out
}

// Resolve returns the route matching path and its component. Lazy
// components are loaded on the first call.
func (rt *Router) Resolve(ctx context.Context, path string) (Route, Component, error) {
	path = normalizePath(path)

	for _, e := range rt.entries {
		if e.route.Path != path {
			continue
		}

		c, loaded, err := e.component(ctx)
		if err != nil {
			rt.logger.Error().Err(err).Str("route", e.route.Name).Msg("failed to load route component")
			return e.route, nil, fmt.Errorf("load %s: %w", e.route.Name, err)
		}
		if loaded {
			rt.logger.Debug().Str("route", e.route.Name).Msg("route component loaded")
		}

		return e.route, c, nil
	}

	return Route{}, nil, fmt.Errorf("%w: %s", ErrNoMatch, path)
}

// Loaded reports whether the component of route name is available without
// calling a loader. Eager routes are always loaded.
func (rt *Router) Loaded(name string) bool {
	e, ok := rt.byName[name]
	if !ok {
		return false
	}
	if !e.route.IsLazy() {
		return true
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cached != nil
}

// Invalidate drops the cached component of a lazy route so the next
// navigation loads it again. It is a no-op for eager routes.
func (rt *Router) Invalidate(name string) error {
	e, ok := rt.byName[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cached != nil {
		e.cached = nil
		rt.logger.Debug().Str("route", name).Msg("route component invalidated")
	}
	return nil
}
