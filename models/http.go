package models

// ProcessRequest is the body of POST /api/v1/process. The backend hands
// Request to its agent graph and answers with an [AgentResponse].
type ProcessRequest struct {
	// Request is the free-form user instruction.
	Request string `json:"request"`

	// SavePath optionally tells the backend where generated code should be
	// written. Omitted when empty.
	SavePath string `json:"save_path,omitempty"`
}

// UploadFile is a single file sent to POST /api/v1/upload as the multipart
// field "file".
type UploadFile struct {
	// Name is the original file name reported to the backend.
	Name string

	// Content is the raw file body.
	Content []byte
}
