package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-agent-console/internal/devproxy"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/models"
)

type Handler struct {
	app       http.Handler
	proxy     *devproxy.Proxy
	basePath  string
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// Option customises a [Handler] built by [NewHandler].
type Option func(*Handler)

// WithProxy puts the dev proxy rule table in front of the application.
// Matched requests never reach the application handler.
func WithProxy(p *devproxy.Proxy) Option {
	return func(h *Handler) {
		h.proxy = p
	}
}

// WithBuildInfo sets the build metadata served by GET /version.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(h *Handler) {
		h.buildInfo = info
	}
}

func NewHandler(app http.Handler, basePath string, logger *logger.Logger, opts ...Option) *Handler {
	logger.Info().Str("base_path", basePath).Msg("http handler created")
	h := &Handler{
		app:       app,
		basePath:  mountPattern(basePath),
		buildInfo: models.NewAppBuildInfo("", "", ""),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

func mountPattern(basePath string) string {
	trimmed := strings.TrimRight(basePath, "/")
	if trimmed == "" {
		return "/"
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return trimmed
}
