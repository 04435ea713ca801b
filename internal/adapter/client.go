package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-agent-console/internal/config"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/go-resty/resty/v2"
)

// APIClient is the backend HTTP client. It embeds *resty.Client so all of
// its methods are available, and carries the defaults every request
// inherits unless a call overrides them.
type APIClient struct {
	*resty.Client
}

// NewAPIClient creates an [APIClient] with:
//   - base URL cfg.BaseURL (normalised, without trailing slash);
//   - timeout cfg.Timeout;
//   - header "Content-Type: <cfg.ContentType>";
//   - no retries;
//   - request and response logging interceptors writing to logger.
//
// Each call returns an independent client with its own connection pool.
func NewAPIClient(cfg config.Client, logger *logger.Logger) (*APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", cfg.ContentType).
		SetRetryCount(0)

	installInterceptors(client, logger.WithComponent("api"))

	return &APIClient{Client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
