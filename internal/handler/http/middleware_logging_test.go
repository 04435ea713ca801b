package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest creates a test request whose context logger writes to buf,
// the way withTraceID attaches one.
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

// accessLine decodes the single access log line written to buf.
func accessLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line), "log: %s", buf.String())
	return line
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		body     string
		wantSize int
	}{
		{name: "page render", method: http.MethodGet, target: "/chat", status: http.StatusOK, body: "<p>chat</p>", wantSize: 11},
		{name: "form submit redirect", method: http.MethodPost, target: "/chat", status: http.StatusSeeOther},
		{name: "unknown page", method: http.MethodGet, target: "/missing", status: http.StatusNotFound, body: "not found", wantSize: 9},
		{name: "query parameters preserved in uri", method: http.MethodGet, target: "/?tab=health", status: http.StatusOK, body: "ok", wantSize: 2},
		{name: "backend unreachable through proxy", method: http.MethodGet, target: "/api/health", status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.target, &buf))

			assert.Equal(t, tt.status, rr.Code)

			line := accessLine(t, &buf)
			assert.Equal(t, tt.target, line["uri"])
			assert.Equal(t, tt.method, line["method"])
			assert.EqualValues(t, tt.status, line["status"])
			assert.EqualValues(t, tt.wantSize, line["size"])
			assert.Contains(t, line, "duration")
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantSize int
	}{
		{
			name: "write without WriteHeader",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
			},
			wantSize: 1024,
		},
		{
			name:    "nothing written",
			handler: func(w http.ResponseWriter, r *http.Request) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rr := httptest.NewRecorder()
			withLogging(tt.handler).ServeHTTP(rr, makeRequest(http.MethodGet, "/", &buf))

			line := accessLine(t, &buf)
			assert.EqualValues(t, http.StatusOK, line["status"])
			assert.EqualValues(t, tt.wantSize, line["size"])
		})
	}
}

type hijackRecorder struct {
	*httptest.ResponseRecorder
}

func (h hijackRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	server, client := net.Pipe()
	_ = client.Close()
	return server, bufio.NewReadWriter(bufio.NewReader(server), bufio.NewWriter(server)), nil
}

func TestWithLogging_WebSocketUpgrade(t *testing.T) {
	var buf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok, "the logging writer must stay hijackable")
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	})

	withLogging(next).ServeHTTP(hijackRecorder{httptest.NewRecorder()}, makeRequest(http.MethodGet, "/ws/client-1", &buf))

	line := accessLine(t, &buf)
	assert.EqualValues(t, http.StatusSwitchingProtocols, line["status"])
	assert.Equal(t, "/ws/client-1", line["uri"])
}

func TestWithLogging_CarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-access-log")
	h.withTraceID(withLogging(next)).ServeHTTP(httptest.NewRecorder(), req)

	line := accessLine(t, &buf)
	assert.Equal(t, "trace-access-log", line["trace_id"])
}

func TestWithLogging_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := withLogging(next)

	const n = 50
	done := make(chan string, n)

	for i := 0; i < n; i++ {
		go func() {
			var buf bytes.Buffer
			middleware.ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/concurrent", &buf))
			done <- buf.String()
		}()
	}

	for i := 0; i < n; i++ {
		assert.Contains(t, <-done, `"status":200`)
	}
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var buf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &buf))
	}, "withLogging should not recover panics")
}

func TestWithLogging_NoContextLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nop", nil))
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}
