package app

import (
	"html/template"
	"net/http"
)

// Plugin extends an [App]. Install is called once by [App.Use].
type Plugin interface {
	Install(a *App) error
}

// PluginFunc adapts an ordinary function to [Plugin].
type PluginFunc func(a *App) error

// Install calls f(a).
func (f PluginFunc) Install(a *App) error {
	return f(a)
}

// Router renders routed views. A router plugin registers itself with
// [App.SetRouter]; [App.Mount] asks it for the handler serving the views.
type Router interface {
	Handler(layout Layout) http.Handler
}

// Layout wraps the markup of a rendered view into a full page.
type Layout interface {
	Page(w http.ResponseWriter, r *http.Request, title string, body template.HTML) error
}
