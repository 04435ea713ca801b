package views

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/MKhiriev/go-agent-console/internal/router"
	"github.com/MKhiriev/go-agent-console/internal/validators"
)

// Route names and paths.
const (
	HomeRoute = "home"
	ChatRoute = "chat"

	HomePath = "/"
	ChatPath = "/chat"
)

// Options configure the views.
type Options struct {
	// BasePath is the URL prefix the router is mounted under.
	BasePath string

	// Templates holds the page templates. Nil means the embedded copy.
	Templates fs.FS

	// Validator checks chat input. Nil means validators.NewChatInputValidator.
	Validator validators.Validator
}

// Routes returns the route table of the web client: HomeView at "/",
// created now, and ChatView at "/chat", created on the first visit.
func Routes(opts Options) ([]router.Route, error) {
	if opts.Templates == nil {
		templatesFS, err := EmbeddedTemplates()
		if err != nil {
			return nil, fmt.Errorf("open embedded templates: %w", err)
		}
		opts.Templates = templatesFS
	}
	if opts.Validator == nil {
		opts.Validator = validators.NewChatInputValidator()
	}

	r := newRenderer(opts.Templates, opts.BasePath)

	home, err := newHomeView(r)
	if err != nil {
		return nil, err
	}

	return []router.Route{
		router.Eager(HomePath, HomeRoute, home),
		router.Lazy(ChatPath, ChatRoute, loadChatView(r, opts.Validator)),
	}, nil
}

func loadChatView(r *renderer, v validators.Validator) router.Loader {
	return func(context.Context) (router.Component, error) {
		tmpl, err := r.parse("chat.html")
		if err != nil {
			return nil, err
		}
		return &ChatView{tmpl: tmpl, validator: v, chatPath: r.link(ChatPath)}, nil
	}
}
