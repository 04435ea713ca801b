// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the backend HTTP client of the web client.
//
// [NewAPIClient] configures the process-wide request defaults (base URL,
// timeout, JSON content type) and installs the logging interceptors.
// [NewHTTPBackendAdapter] builds the typed calls of the agent backend on top
// of that client.
//
// The interceptors never swallow errors: a failed request is logged and the
// same error is returned to the caller. Non-2xx responses surface as
// [*ResponseError] so callers can read the status with [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-agent-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines the calls the views make against the agent backend.
type BackendAdapter interface {
	// Process sends a user instruction to POST /api/v1/process and returns
	// the agent graph result.
	Process(ctx context.Context, req models.ProcessRequest) (models.AgentResponse, error)

	// Upload sends a file to POST /api/v1/upload. The backend analyses it in
	// the background and answers with status "accepted".
	Upload(ctx context.Context, file models.UploadFile) (models.AgentResponse, error)

	// Health calls GET /api/v1/health.
	Health(ctx context.Context) (models.HealthStatus, error)
}
