package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBaseURL is returned by [NewAPIClient] when no base URL is configured.
	ErrEmptyBaseURL = errors.New("empty base url")
	// ErrEmptyUpload is returned by Upload for a file without name or content.
	ErrEmptyUpload = errors.New("empty upload")
)

// ResponseError is returned for every response with a non-2xx status.
type ResponseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the raw response payload.
	Body string
	// Detail is the "detail" member of a JSON error body, when present.
	Detail string
}

func (e *ResponseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Detail)
	}
	if e.Body != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}
