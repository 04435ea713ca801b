package devproxy

import (
	"fmt"
	"net/url"
	"strings"
)

// Rule describes where requests under a path prefix are forwarded.
type Rule struct {
	// Context is the path prefix the rule claims, e.g. "/api".
	Context string

	// Target is the backend origin, e.g. "http://127.0.0.1:6000" or
	// "ws://127.0.0.1:6000".
	Target string

	// ChangeOrigin sends the target host as the Host header (and Origin for
	// WebSocket handshakes) instead of the one the browser used.
	ChangeOrigin bool

	// Secure verifies the TLS certificate of https and wss targets.
	Secure bool

	// WS relays WebSocket upgrades.
	WS bool

	// Rewrite changes the request path before forwarding. Nil forwards the
	// path verbatim.
	Rewrite *Rewrite
}

// DefaultRules returns the rule table of the development server:
//
//	/api     -> apiTarget, ^/api -> /api/v1, changeOrigin, not secure
//	/ws-test -> wsTarget, verbatim, ws, secure
//	/ws      -> wsTarget, ^/ws -> /api/v1/ws, ws, secure
func DefaultRules(apiTarget, wsTarget string) []Rule {
	return []Rule{
		{
			Context:      "/api",
			Target:       apiTarget,
			ChangeOrigin: true,
			Secure:       false,
			Rewrite:      MustRewrite(`^/api`, "/api/v1"),
		},
		{
			Context: "/ws-test",
			Target:  wsTarget,
			Secure:  true,
			WS:      true,
		},
		{
			Context: "/ws",
			Target:  wsTarget,
			Secure:  true,
			WS:      true,
			Rewrite: MustRewrite(`^/ws`, "/api/v1/ws"),
		},
	}
}

// route is a rule with its target parsed.
type route struct {
	Rule
	target *url.URL
}

// httpTarget returns the target with ws schemes mapped to http ones.
func (r *route) httpTarget() *url.URL {
	u := *r.target
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	}
	return &u
}

// wsTarget returns the target with http schemes mapped to ws ones.
func (r *route) wsTarget() *url.URL {
	u := *r.target
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	return &u
}

// forwardPath returns the rewritten path joined to the target path.
func (r *route) forwardPath(path string) string {
	rewritten := r.Rewrite.Apply(path)
	base := strings.TrimRight(r.target.Path, "/")
	if rewritten == "" || !strings.HasPrefix(rewritten, "/") {
		rewritten = "/" + rewritten
	}
	return base + rewritten
}

// Table is an ordered, validated rule list.
type Table struct {
	routes []*route
}

// NewTable validates rules and keeps their order.
func NewTable(rules []Rule) (*Table, error) {
	t := &Table{routes: make([]*route, 0, len(rules))}

	for i, rule := range rules {
		if !strings.HasPrefix(rule.Context, "/") {
			return nil, fmt.Errorf("%w: rule %d: context %q must start with /", ErrInvalidRule, i, rule.Context)
		}

		target, err := url.Parse(rule.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %s: %w", ErrInvalidTarget, rule.Context, err)
		}
		switch target.Scheme {
		case "http", "https", "ws", "wss":
		default:
			return nil, fmt.Errorf("%w: rule %s: unsupported scheme %q", ErrInvalidTarget, rule.Context, target.Scheme)
		}
		if target.Host == "" {
			return nil, fmt.Errorf("%w: rule %s: missing host", ErrInvalidTarget, rule.Context)
		}

		t.routes = append(t.routes, &route{Rule: rule, target: target})
	}

	return t, nil
}

// Rules returns the rules in match order.
func (t *Table) Rules() []Rule {
	out := make([]Rule, len(t.routes))
	for i, r := range t.routes {
		out[i] = r.Rule
	}
	return out
}

// match returns the first route whose context prefixes path.
func (t *Table) match(path string) (*route, bool) {
	for _, r := range t.routes {
		if strings.HasPrefix(path, r.Context) {
			return r, true
		}
	}
	return nil, false
}

// Match returns the first rule whose context prefixes path.
func (t *Table) Match(path string) (Rule, bool) {
	r, ok := t.match(path)
	if !ok {
		return Rule{}, false
	}
	return r.Rule, true
}

// Forward returns the URL a request for path is sent to. WebSocket rules
// yield ws/wss URLs, the rest http/https ones.
func (t *Table) Forward(path string) (string, error) {
	r, ok := t.match(path)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoRule, path)
	}

	u := r.httpTarget()
	if r.WS {
		u = r.wsTarget()
	}
	u.Path = r.forwardPath(path)
	u.RawPath = ""
	return u.String(), nil
}
