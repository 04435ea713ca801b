package router

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-agent-console/internal/app"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler serves every route: GET renders the component into layout and
// POST is passed to components implementing [Submitter].
func (rt *Router) Handler(layout app.Layout) http.Handler {
	mux := chi.NewRouter()
	// "/chat/" resolves like "/chat"
	mux.Use(middleware.StripSlashes)

	for _, e := range rt.entries {
		path := e.route.Path
		mux.Get(path, rt.render(layout))
		mux.Post(path, rt.submit)
	}

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = layout.Page(w, r, "not found", template.HTML("<p>"+template.HTMLEscapeString(app.MsgPageNotFound)+"</p>"))
	})

	return mux
}

// routePath returns the path relative to the router mount point.
func routePath(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
		return rctx.RoutePath
	}
	return r.URL.Path
}

func (rt *Router) render(layout app.Layout) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		route, c, err := rt.Resolve(r.Context(), routePath(r))
		if err != nil {
			writeResolveError(w, err)
			return
		}

		var buf bytes.Buffer
		if err = c.Render(&buf, r); err != nil {
			log.Error().Err(err).Str("route", route.Name).Msg("failed to render view")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		if err = layout.Page(w, r, route.Name, template.HTML(buf.String())); err != nil {
			log.Error().Err(err).Str("route", route.Name).Msg("failed to write page")
		}
	}
}

func (rt *Router) submit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	route, c, err := rt.Resolve(r.Context(), routePath(r))
	if err != nil {
		writeResolveError(w, err)
		return
	}

	s, ok := c.(Submitter)
	if !ok {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, ErrNotSubmittable.Error(), http.StatusMethodNotAllowed)
		return
	}

	if err = s.Submit(w, r); err != nil {
		log.Error().Err(err).Str("route", route.Name).Msg("failed to handle submission")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}

func writeResolveError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNoMatch) {
		http.Error(w, app.MsgPageNotFound, http.StatusNotFound)
		return
	}
	http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
}
