package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-agent-console/internal/devproxy"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathEcho writes the path the mounted application sees.
func pathEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath != "" {
			p = rctx.RoutePath
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "app:"+p)
	})
}

func doGet(t *testing.T, h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestInit_MountsApp(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		target   string
		wantCode int
		wantBody string
	}{
		{name: "root base path, home", basePath: "/", target: "/", wantCode: http.StatusOK, wantBody: "app:/"},
		{name: "root base path, chat", basePath: "/", target: "/chat", wantCode: http.StatusOK, wantBody: "app:/chat"},
		{name: "empty base path", basePath: "", target: "/chat", wantCode: http.StatusOK, wantBody: "app:/chat"},
		{name: "prefixed base path", basePath: "/ui/", target: "/ui/chat", wantCode: http.StatusOK, wantBody: "app:/chat"},
		{name: "prefixed base path root", basePath: "/ui", target: "/ui", wantCode: http.StatusOK, wantBody: "app:/"},
		{name: "outside prefixed base path", basePath: "/ui", target: "/chat", wantCode: http.StatusNotFound},
		{name: "version is served next to the app", basePath: "/", target: "/version", wantCode: http.StatusOK, wantBody: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewHandler(pathEcho(), tt.basePath, logger.Nop()).Init()

			rec := doGet(t, router, tt.target, nil)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			assert.NotEmpty(t, rec.Header().Get(utils.TraceIDHeader))
		})
	}
}

func TestInit_CompressesAppPages(t *testing.T) {
	router := NewHandler(pathEcho(), "/", logger.Nop()).Init()

	rec := doGet(t, router, "/chat", http.Header{"Accept-Encoding": {"gzip"}})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "app:/chat", string(body))
}

func TestInit_RecoversPanics(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("view exploded")
	})
	router := NewHandler(panicking, "/", logger.Nop()).Init()

	rec := doGet(t, router, "/", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_WithProxy(t *testing.T) {
	var gotPath, gotTraceID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTraceID = r.Header.Get(utils.TraceIDHeader)
		_, _ = io.WriteString(w, "backend")
	}))
	defer backend.Close()

	wsTarget := "ws" + strings.TrimPrefix(backend.URL, "http")
	table, err := devproxy.NewTable(devproxy.DefaultRules(backend.URL, wsTarget))
	require.NoError(t, err)

	router := NewHandler(pathEcho(), "/", logger.Nop(), WithProxy(devproxy.New(table, logger.Nop()))).Init()

	t.Run("matched path goes to the backend uncompressed", func(t *testing.T) {
		rec := doGet(t, router, "/api/foo", http.Header{
			"Accept-Encoding":   {"gzip"},
			utils.TraceIDHeader: {"proxied-trace"},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "backend", rec.Body.String())
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "/api/v1/foo", gotPath)
		assert.Equal(t, "proxied-trace", gotTraceID)
	})

	t.Run("unmatched path reaches the app", func(t *testing.T) {
		rec := doGet(t, router, "/chat", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "app:/chat", rec.Body.String())
	})
}

func TestMountPattern(t *testing.T) {
	tests := map[string]string{
		"":     "/",
		"/":    "/",
		"//":   "/",
		"/ui":  "/ui",
		"/ui/": "/ui",
		"ui":   "/ui",
	}
	for in, want := range tests {
		assert.Equal(t, want, mountPattern(in), "input %q", in)
	}
}
