// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChatRole identifies who authored a [ChatMessage].
type ChatRole string

const (
	// RoleUser marks messages typed (or uploaded) by the visitor.
	RoleUser ChatRole = "user"
	// RoleAgent marks replies produced by the backend agents.
	RoleAgent ChatRole = "agent"
	// RoleError marks failed calls. The message holds the error text.
	RoleError ChatRole = "error"
)

// ChatMessage is one entry of a chat transcript.
type ChatMessage struct {
	Role    ChatRole
	Content string
	Status  string
	At      time.Time
}

// ChatTranscript is the ordered list of messages of one visitor session.
type ChatTranscript []ChatMessage
