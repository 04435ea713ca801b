package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a [*ResponseError] for
// everything else.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(resp.String())
	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Body:       body,
	}

	var detail struct {
		Detail any `json:"detail"`
	}
	if json.Unmarshal([]byte(body), &detail) == nil {
		switch d := detail.Detail.(type) {
		case string:
			respErr.Detail = d
		case nil:
		default:
			if b, err := json.Marshal(d); err == nil {
				respErr.Detail = string(b)
			}
		}
	}

	if respErr.Body == "" {
		respErr.Body = http.StatusText(resp.StatusCode())
	}

	return respErr
}
