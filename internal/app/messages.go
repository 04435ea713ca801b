// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Human-readable messages shown to visitors or written into log entries.
// Keeping them in one place keeps the wording consistent across views.
const (
	// MsgInvalidDataProvided is shown when a submitted form cannot be
	// parsed or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is shown when rendering fails for reasons the
	// visitor cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEmptyRequest is shown when the chat form is submitted without text.
	MsgEmptyRequest = "request must not be empty"

	// MsgEmptyUpload is shown when the upload form is submitted without a file.
	MsgEmptyUpload = "no file provided"

	// MsgBackendUnavailable is shown when the backend cannot be reached.
	MsgBackendUnavailable = "backend is unavailable"

	// MsgPageNotFound is the body of unknown routes.
	MsgPageNotFound = "page not found"
)
