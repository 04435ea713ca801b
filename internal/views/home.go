package views

import (
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/MKhiriev/go-agent-console/internal/app"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/models"
)

// HomeView is the landing page. It shows the backend health.
type HomeView struct {
	tmpl *template.Template
}

type homeData struct {
	Health      models.HealthStatus
	HealthError string
}

func newHomeView(r *renderer) (*HomeView, error) {
	tmpl, err := r.parse("home.html")
	if err != nil {
		return nil, err
	}
	return &HomeView{tmpl: tmpl}, nil
}

// Render implements router.Component.
func (v *HomeView) Render(w io.Writer, r *http.Request) error {
	api, err := backend(r)
	if err != nil {
		return fmt.Errorf("home view: %w", err)
	}

	var data homeData
	data.Health, err = api.Health(r.Context())
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("backend health check failed")
		data.HealthError = app.MsgBackendUnavailable
	}

	return v.tmpl.Execute(w, data)
}
