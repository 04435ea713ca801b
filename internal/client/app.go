package client

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/MKhiriev/go-agent-console/internal/adapter"
	"github.com/MKhiriev/go-agent-console/internal/app"
	"github.com/MKhiriev/go-agent-console/internal/config"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/internal/router"
	"github.com/MKhiriev/go-agent-console/internal/state"
	"github.com/MKhiriev/go-agent-console/internal/views"
)

// AppName is shown in page titles.
const AppName = "Agent Console"

type Console struct {
	app     *app.App
	router  *router.Router
	handler http.Handler
}

// NewConsole runs the bootstrap sequence: create the app, register the
// state plugin, register the router, expose the API client as "$api" (with
// its typed backend calls as "$backend") and mount to cfg.Web.MountAnchor. A nil templates means the embedded ones.
func NewConsole(cfg *config.StructuredConfig, templates fs.FS, logger *logger.Logger) (*Console, error) {
	a := app.New(AppName, logger)

	if err := a.Use(state.NewRegistry()); err != nil {
		return nil, fmt.Errorf("install state: %w", err)
	}

	routes, err := views.Routes(views.Options{
		BasePath:  cfg.Web.BasePath,
		Templates: templates,
	})
	if err != nil {
		return nil, fmt.Errorf("create views: %w", err)
	}

	rt, err := router.New(logger, routes...)
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}
	if err = a.Use(rt); err != nil {
		return nil, fmt.Errorf("install router: %w", err)
	}

	apiClient, err := adapter.NewAPIClient(cfg.Client, logger)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	a.Globals().Set(app.APIKey, apiClient)
	a.Globals().Set(app.BackendKey, adapter.NewHTTPBackendAdapter(apiClient))

	handler, err := a.Mount(cfg.Web.MountAnchor)
	if err != nil {
		return nil, fmt.Errorf("mount to %q: %w", cfg.Web.MountAnchor, err)
	}

	return &Console{
		app:     a,
		router:  rt,
		handler: handler,
	}, nil
}

// Handler implements [Client].
func (c *Console) Handler() http.Handler {
	return c.handler
}

// Invalidate implements [Client].
func (c *Console) Invalidate(name string) error {
	return c.router.Invalidate(name)
}

// App returns the mounted app instance.
func (c *Console) App() *app.App {
	return c.app
}
