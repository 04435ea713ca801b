package app

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"
	"reflect"
	"regexp"
	"sync"

	"github.com/MKhiriev/go-agent-console/internal/logger"
)

var anchorPattern = regexp.MustCompile(`^#([A-Za-z][A-Za-z0-9_-]*)$`)

// App is the web client instance. It is created once at startup, extended
// with plugins and finally mounted.
type App struct {
	name    string
	globals *GlobalProperties
	logger  *logger.Logger

	mu      sync.Mutex
	plugins []Plugin
	router  Router
	mounted bool
}

// New creates an app instance named name. The name is shown in page titles.
func New(name string, logger *logger.Logger) *App {
	return &App{
		name:    name,
		globals: newGlobalProperties(),
		logger:  logger,
	}
}

// Name returns the app name.
func (a *App) Name() string {
	return a.name
}

// Logger returns the app logger.
func (a *App) Logger() *logger.Logger {
	return a.logger
}

// Globals returns the global properties shared by all views.
func (a *App) Globals() *GlobalProperties {
	return a.globals
}

// Use installs p. Installing the same plugin twice is a no-op.
func (a *App) Use(p Plugin) error {
	if p == nil {
		return ErrNilPlugin
	}

	a.mu.Lock()
	if a.mounted {
		a.mu.Unlock()
		return ErrAlreadyMounted
	}
	if a.installed(p) {
		a.mu.Unlock()
		a.logger.Warn().Str("plugin", fmt.Sprintf("%T", p)).Msg("plugin is already installed")
		return nil
	}
	a.plugins = append(a.plugins, p)
	a.mu.Unlock()

	if err := p.Install(a); err != nil {
		return fmt.Errorf("install plugin %T: %w", p, err)
	}

	a.logger.Debug().Str("plugin", fmt.Sprintf("%T", p)).Msg("plugin installed")
	return nil
}

// installed reports whether p was already passed to Use. Plugins of
// non-comparable types (e.g. PluginFunc) are never considered duplicates.
func (a *App) installed(p Plugin) bool {
	if !reflect.TypeOf(p).Comparable() {
		return false
	}
	for _, q := range a.plugins {
		if reflect.TypeOf(q).Comparable() && q == p {
			return true
		}
	}
	return false
}

// SetRouter registers the router rendering the views. Router plugins call
// it from their Install method; only one router may be installed.
func (a *App) SetRouter(r Router) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.router != nil {
		return ErrRouterInstalled
	}
	a.router = r
	a.globals.Set(RouterKey, r)
	return nil
}

// Mount renders the routed views into the element identified by anchor
// (e.g. "#app") and returns the handler serving them. An app can be mounted
// once.
func (a *App) Mount(anchor string) (http.Handler, error) {
	m := anchorPattern.FindStringSubmatch(anchor)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAnchor, anchor)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mounted {
		return nil, ErrAlreadyMounted
	}
	if a.router == nil {
		return nil, ErrNoRouter
	}

	layout := &shell{appName: a.name, anchorID: m[1]}
	h := a.router.Handler(layout)
	a.mounted = true

	a.logger.Info().Str("anchor", anchor).Strs("globals", a.globals.Keys()).Msg("app mounted")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(WithApp(r.Context(), a)))
	}), nil
}

// Mounted reports whether Mount succeeded.
func (a *App) Mounted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mounted
}

type ctxKey struct{}

// WithApp returns a copy of ctx carrying a.
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext returns the app stored in ctx by the mounted handler.
func FromContext(ctx context.Context) (*App, bool) {
	a, ok := ctx.Value(ctxKey{}).(*App)
	return a, ok
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · {{.AppName}}</title>
</head>
<body>
<div id="{{.AnchorID}}">{{.Body}}</div>
</body>
</html>
`))

// shell is the page every view is mounted into.
type shell struct {
	appName  string
	anchorID string
}

func (s *shell) Page(w http.ResponseWriter, _ *http.Request, title string, body template.HTML) error {
	var buf bytes.Buffer
	err := shellTemplate.Execute(&buf, struct {
		AppName  string
		AnchorID string
		Title    string
		Body     template.HTML
	}{s.appName, s.anchorID, title, body})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = buf.WriteTo(w)
	return err
}
