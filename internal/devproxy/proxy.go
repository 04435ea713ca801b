package devproxy

import (
	"crypto/tls"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/MKhiriev/go-agent-console/internal/logger"
)

// Proxy forwards requests matched by a [Table] to the backend.
type Proxy struct {
	table  *Table
	relay  RelayOptions
	logger *logger.Logger

	httpProxies map[*route]*httputil.ReverseProxy
}

// New builds a proxy over table.
func New(table *Table, logger *logger.Logger) *Proxy {
	p := &Proxy{
		table:       table,
		relay:       DefaultRelayOptions(),
		logger:      logger.WithComponent("proxy"),
		httpProxies: make(map[*route]*httputil.ReverseProxy, len(table.routes)),
	}

	for _, r := range table.routes {
		p.httpProxies[r] = p.newReverseProxy(r)
	}

	return p
}

// WithRelayOptions replaces the WebSocket relay options.
func (p *Proxy) WithRelayOptions(opts RelayOptions) *Proxy {
	p.relay = opts
	return p
}

// Middleware sends matched requests to the backend and everything else to
// next.
func (p *Proxy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := p.table.match(r.URL.Path); ok {
			p.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ServeHTTP forwards r, or answers 404 when no rule matches.
func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt, ok := p.table.match(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	log := logger.FromRequest(r)

	if rt.WS && isWebSocketUpgrade(r) {
		target := rt.wsTarget()
		target.Path = rt.forwardPath(r.URL.Path)
		target.RawQuery = r.URL.RawQuery

		log.Debug().Str("rule", rt.Context).Str("target", target.String()).Msg("proxy ws")
		relay(w, r, target, rt.ChangeOrigin, p.relayOptions(rt), p.logger)
		return
	}

	log.Debug().Str("rule", rt.Context).Str("path", r.URL.Path).Msg("proxy http")
	p.httpProxies[rt].ServeHTTP(w, r)
}

func (p *Proxy) relayOptions(rt *route) RelayOptions {
	opts := p.relay
	if rt.target.Scheme == "wss" || rt.target.Scheme == "https" {
		dialer := *opts.Dialer
		dialer.TLSClientConfig = &tls.Config{InsecureSkipVerify: !rt.Secure}
		opts.Dialer = &dialer
	}
	return opts
}

func (p *Proxy) newReverseProxy(rt *route) *httputil.ReverseProxy {
	target := rt.httpTarget()

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: !rt.Secure}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.Out.URL.Path = rt.forwardPath(pr.In.URL.Path)
			pr.Out.URL.RawPath = ""
			if !rt.ChangeOrigin {
				pr.Out.Host = pr.In.Host
			}
			pr.SetXForwarded()
		},
		Transport: transport,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			p.logger.Error().Err(err).Str("rule", rt.Context).Str("path", r.URL.Path).Msg("proxy request failed")
			w.WriteHeader(http.StatusBadGateway)
		},
	}
}

func isWebSocketUpgrade(r *http.Request) bool {
	return headerContainsToken(r.Header, "Connection", "upgrade") &&
		headerContainsToken(r.Header, "Upgrade", "websocket")
}

func headerContainsToken(h http.Header, name, token string) bool {
	for _, v := range h.Values(name) {
		for _, t := range strings.Split(v, ",") {
			if strings.EqualFold(strings.TrimSpace(t), token) {
				return true
			}
		}
	}
	return false
}
