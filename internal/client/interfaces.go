// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "net/http"

// Client is the contract the servers depend on: a mounted web client.
type Client interface {
	// Handler returns the mounted application handler.
	Handler() http.Handler

	// Invalidate drops the cached component of the named lazy route.
	Invalidate(name string) error
}
