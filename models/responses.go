package models

// AgentResponse is returned by the process and upload endpoints.
type AgentResponse struct {
	// Status is the agent graph outcome, e.g. "success", "error" or
	// "accepted" for background uploads.
	Status string `json:"status"`

	// Message is a human readable summary. Agents usually answer in
	// Markdown.
	Message string `json:"message"`

	// Details carries the raw agent state or upload metadata.
	Details map[string]any `json:"details,omitempty"`
}

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus map[string]string

// Status returns the "status" entry or an empty string.
func (h HealthStatus) Status() string {
	return h["status"]
}
