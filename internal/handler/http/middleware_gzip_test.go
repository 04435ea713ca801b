// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	page := "<html><body>" + strings.Repeat("<p>agent reply</p>", 200) + "</body></html>"

	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		requestBody     string
		gzipRequest     bool
		wantStatus      int
		wantGzipped     bool
		wantBody        string
	}{
		{
			name:           "page compressed when client accepts gzip",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
			wantBody:       page,
		},
		{
			name:       "page served plain without accept-encoding",
			wantStatus: http.StatusOK,
			wantBody:   page,
		},
		{
			name:           "gzip among several encodings",
			acceptEncoding: "deflate, gzip;q=1.0, br",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
			wantBody:       page,
		},
		{
			name:            "gzipped form body is decoded",
			contentEncoding: "gzip",
			requestBody:     "request=hello",
			gzipRequest:     true,
			wantStatus:      http.StatusOK,
			wantBody:        "echo:request=hello",
		},
		{
			name:            "gzipped body and gzipped response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			requestBody:     "request=hello",
			gzipRequest:     true,
			wantStatus:      http.StatusOK,
			wantGzipped:     true,
			wantBody:        "echo:request=hello",
		},
		{
			name:            "invalid gzip body",
			contentEncoding: "gzip",
			requestBody:     "not gzipped data",
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				if tt.requestBody == "" {
					w.WriteHeader(http.StatusOK)
					_, _ = io.WriteString(w, page)
					return
				}

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.Empty(t, r.Header.Get("Content-Encoding"), "Content-Encoding should be removed")
				_, _ = io.WriteString(w, "echo:"+string(body))
			})

			var body io.Reader
			if tt.requestBody != "" {
				if tt.gzipRequest {
					body = gzipBytes(t, []byte(tt.requestBody))
				} else {
					body = strings.NewReader(tt.requestBody)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/chat", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}

			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat("This is repetitive data. ", 1000)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, data)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10, "compressed size should be much smaller than original")
}

func TestGZip_PooledWritersAreIndependent(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "response "+r.URL.Query().Get("n"))
	})
	middleware := withGZip(next)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			target := "/?n=" + strings.Repeat("x", n)
			req := httptest.NewRequest(http.MethodGet, target, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			assert.Equal(t, "response "+strings.Repeat("x", n), gunzip(t, rr.Body))
		}(i)
	}
	wg.Wait()
}

func TestGZip_StatusCodesKeepEncoding(t *testing.T) {
	tests := []int{http.StatusCreated, http.StatusSeeOther, http.StatusNoContent}

	for _, status := range tests {
		t.Run(http.StatusText(status), func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			})

			req := httptest.NewRequest(http.MethodPost, "/chat", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, status, rr.Code)
			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		})
	}
}

func TestGZip_ImplicitWriteHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "11")
		_, _ = w.Write([]byte("<p>page</p>"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Empty(t, rr.Header().Get("Content-Length"), "length of the plain body must not leak")
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
	assert.Equal(t, "<p>page</p>", gunzip(t, rr.Body))
}

func TestGZip_NothingWritten(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_Flush(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "partial")
		w.(http.Flusher).Flush()
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, req)

	assert.True(t, rr.Flushed)
	assert.Equal(t, "partial", gunzip(t, rr.Body))
}

func TestWrappedReadCloser_Close(t *testing.T) {
	closeCalled := false
	wrapped := &wrappedReadCloser{
		Reader:  strings.NewReader("test"),
		OnClose: func() { closeCalled = true },
	}
	assert.NoError(t, wrapped.Close())
	assert.True(t, closeCalled, "OnClose should be called")

	assert.NoError(t, (&wrappedReadCloser{Reader: strings.NewReader("test")}).Close(),
		"Close should not fail when OnClose is nil")
}
