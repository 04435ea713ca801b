package devproxy

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/gorilla/websocket"
)

// RelayOptions tune the WebSocket relay.
type RelayOptions struct {
	Upgrader       websocket.Upgrader
	Dialer         *websocket.Dialer
	WriteWait      time.Duration
	MaxMessageSize int64
}

// DefaultRelayOptions accept any origin, which is what a local development
// server needs.
func DefaultRelayOptions() RelayOptions {
	return RelayOptions{
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		Dialer:         websocket.DefaultDialer,
		WriteWait:      10 * time.Second,
		MaxMessageSize: 32 << 20,
	}
}

// forwardedHeaders are copied from the browser handshake to the backend one.
var forwardedHeaders = []string{"Cookie", "Authorization", "User-Agent", "X-Trace-ID"}

// relay opens a backend connection to target, upgrades the browser
// connection and copies messages both ways until either side closes.
func relay(w http.ResponseWriter, r *http.Request, target *url.URL, changeOrigin bool, opts RelayOptions, log *logger.Logger) {
	header := http.Header{}
	for _, h := range forwardedHeaders {
		if v := r.Header.Get(h); v != "" {
			header.Set(h, v)
		}
	}
	if origin := r.Header.Get("Origin"); origin != "" {
		if changeOrigin {
			origin = (&url.URL{Scheme: httpScheme(target.Scheme), Host: target.Host}).String()
		}
		header.Set("Origin", origin)
	}

	dialer := *opts.Dialer
	dialer.Subprotocols = websocket.Subprotocols(r)

	backend, resp, err := dialer.DialContext(r.Context(), target.String(), header)
	if err != nil {
		log.Error().Err(err).Str("target", target.String()).Msg("ws backend dial failed")
		if resp != nil {
			copyHandshakeFailure(w, resp)
			return
		}
		http.Error(w, "could not connect to websocket backend", http.StatusBadGateway)
		return
	}

	var upgradeHeader http.Header
	if p := backend.Subprotocol(); p != "" {
		upgradeHeader = http.Header{"Sec-Websocket-Protocol": {p}}
	}

	client, err := opts.Upgrader.Upgrade(w, r, upgradeHeader)
	if err != nil {
		// the upgrader has already written an error response
		log.Warn().Err(err).Msg("ws upgrade failed")
		_ = backend.Close()
		return
	}

	log.Debug().Str("target", target.String()).Msg("ws relay opened")

	client.SetReadLimit(opts.MaxMessageSize)
	backend.SetReadLimit(opts.MaxMessageSize)

	errc := make(chan error, 2)
	go pump(backend, client, opts.WriteWait, errc)
	go pump(client, backend, opts.WriteWait, errc)

	err = <-errc
	_ = client.Close()
	_ = backend.Close()
	<-errc

	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		log.Debug().Err(err).Msg("ws relay closed")
		return
	}
	log.Debug().Int("code", closeErr.Code).Msg("ws relay closed")
}

// pump copies messages from src to dst. When src fails the close frame (or
// a going-away one) is passed on to dst.
func pump(dst, src *websocket.Conn, writeWait time.Duration, errc chan<- error) {
	for {
		messageType, body, err := src.ReadMessage()
		if err != nil {
			code, text := websocket.CloseGoingAway, ""
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				code, text = closeErr.Code, closeErr.Text
			}
			if code == websocket.CloseNoStatusReceived {
				code = websocket.CloseNormalClosure
			}
			_ = dst.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
			errc <- err
			return
		}

		_ = dst.SetWriteDeadline(time.Now().Add(writeWait))
		if err = dst.WriteMessage(messageType, body); err != nil {
			errc <- err
			return
		}
	}
}

// copyHandshakeFailure passes a rejected backend handshake on to the browser.
func copyHandshakeFailure(w http.ResponseWriter, resp *http.Response) {
	for k, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != nil {
		_, _ = io.Copy(w, resp.Body)
	}
}

func httpScheme(scheme string) string {
	switch scheme {
	case "ws":
		return "http"
	case "wss":
		return "https"
	}
	return scheme
}
