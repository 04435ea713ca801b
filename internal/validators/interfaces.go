// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks chat input before it is sent to the agent
// backend: the request text of a process call and the file of an upload.
//
// Views depend on the Validator interface only; the chat input rules live
// in ChatInputValidator.
package validators

import "context"

// Validator validates a value. Field names restrict validation to the named
// fields; none means all of them.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
