package views

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-agent-console/internal/adapter"
	"github.com/MKhiriev/go-agent-console/internal/app"
	"github.com/MKhiriev/go-agent-console/internal/state"
)

func appFromRequest(r *http.Request) (*app.App, error) {
	a, ok := app.FromContext(r.Context())
	if !ok {
		return nil, ErrNoApp
	}
	return a, nil
}

// backend returns the "$backend" global of the app serving r.
func backend(r *http.Request) (adapter.BackendAdapter, error) {
	a, err := appFromRequest(r)
	if err != nil {
		return nil, err
	}
	return app.Global[adapter.BackendAdapter](a, app.BackendKey)
}

// chatStore returns the chat store of the app serving r.
func chatStore(r *http.Request) (*state.ChatStore, error) {
	a, err := appFromRequest(r)
	if err != nil {
		return nil, err
	}

	reg, err := state.FromApp(a)
	if err != nil {
		return nil, err
	}

	chat, err := state.UseChat(reg)
	if err != nil {
		return nil, fmt.Errorf("use chat store: %w", err)
	}
	return chat, nil
}
