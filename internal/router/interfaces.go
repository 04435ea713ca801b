package router

import (
	"context"
	"io"
	"net/http"
)

// Component renders a view. The output is placed inside the mount anchor of
// the app shell.
type Component interface {
	Render(w io.Writer, r *http.Request) error
}

// Submitter is implemented by components that handle form posts to their
// route. Submit writes the full response (usually a redirect).
type Submitter interface {
	Submit(w http.ResponseWriter, r *http.Request) error
}

// Loader produces a component on demand.
type Loader func(ctx context.Context) (Component, error)
