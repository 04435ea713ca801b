package router

import (
	"fmt"
	"strings"
)

// Route is one entry of the route table.
type Route struct {
	// Path is the exact path the route matches, e.g. "/chat".
	Path string
	// Name identifies the route, e.g. "chat". It is also the page title.
	Name string

	component Component
	load      Loader
}

// Eager returns a route whose component exists up front.
func Eager(path, name string, c Component) Route {
	return Route{Path: path, Name: name, component: c}
}

// Lazy returns a route whose component is produced by load on the first
// navigation.
func Lazy(path, name string, load Loader) Route {
	return Route{Path: path, Name: name, load: load}
}

// IsLazy reports whether the component is loaded on demand.
func (r Route) IsLazy() bool {
	return r.load != nil
}

func (r Route) validate() error {
	switch {
	case !strings.HasPrefix(r.Path, "/"):
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, r.Path)
	case strings.ContainsAny(r.Path, "{}*:"):
		return fmt.Errorf("%w: path %q has dynamic segments", ErrInvalidRoute, r.Path)
	case r.Path != "/" && strings.HasSuffix(r.Path, "/"):
		return fmt.Errorf("%w: path %q has a trailing slash", ErrInvalidRoute, r.Path)
	case r.Name == "":
		return fmt.Errorf("%w: route %q has no name", ErrInvalidRoute, r.Path)
	case (r.component == nil) == (r.load == nil):
		return fmt.Errorf("%w: route %q needs exactly one of component or loader", ErrInvalidRoute, r.Name)
	}
	return nil
}

// normalizePath maps "/chat/" to "/chat" and "" to "/".
func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			return "/"
		}
	}
	return p
}
