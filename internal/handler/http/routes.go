package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// proxied traffic is passed through as is, without compression
	if h.proxy != nil {
		router.Use(h.proxy.Middleware)
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/version", h.getVersion)
		r.Mount(h.basePath, h.app)
	})

	return router
}
