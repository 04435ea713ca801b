// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the web client: the app instance with its state
// and router plugins, the backend API client exposed as "$api", and the
// mounted HTTP handler. cmd/web serves it directly; cmd/devserver serves it
// behind the development proxy.
package client
