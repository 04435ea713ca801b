package adapter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/MKhiriev/go-agent-console/models"
	"github.com/gabriel-vasile/mimetype"
)

const (
	apiPrefix   = "/api/v1"
	processPath = apiPrefix + "/process"
	uploadPath  = apiPrefix + "/upload"
	healthPath  = apiPrefix + "/health"
)

type httpBackendAdapter struct {
	client *APIClient
}

// NewHTTPBackendAdapter builds the typed backend calls on top of client.
// Requests inherit the client defaults and go through its interceptors.
func NewHTTPBackendAdapter(client *APIClient) BackendAdapter {
	return &httpBackendAdapter{client: client}
}

// Process implements [BackendAdapter].
func (h *httpBackendAdapter) Process(ctx context.Context, req models.ProcessRequest) (models.AgentResponse, error) {
	var result models.AgentResponse

	_, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post(processPath)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("process request: %w", err)
	}

	return result, nil
}

// Upload implements [BackendAdapter]. The part content type is sniffed from
// the file body; the request Content-Type is replaced by the multipart one.
func (h *httpBackendAdapter) Upload(ctx context.Context, file models.UploadFile) (models.AgentResponse, error) {
	if file.Name == "" || len(file.Content) == 0 {
		return models.AgentResponse{}, ErrEmptyUpload
	}

	var result models.AgentResponse

	_, err := h.client.R().
		SetContext(ctx).
		SetMultipartField("file", file.Name, mimetype.Detect(file.Content).String(), bytes.NewReader(file.Content)).
		SetResult(&result).
		Post(uploadPath)
	if err != nil {
		return models.AgentResponse{}, fmt.Errorf("upload request: %w", err)
	}

	return result, nil
}

// Health implements [BackendAdapter].
func (h *httpBackendAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	result := models.HealthStatus{}

	_, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(healthPath)
	if err != nil {
		return nil, fmt.Errorf("health request: %w", err)
	}

	return result, nil
}
