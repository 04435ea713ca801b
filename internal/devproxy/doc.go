// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devproxy forwards requests of the development server to the
// backend.
//
// A [Table] is an ordered list of [Rule]s. A request is handled by the first
// rule whose context is a prefix of the request path, so more specific
// contexts ("/ws-test") must come before shorter ones ("/ws"). Plain HTTP
// requests go through a reverse proxy; WebSocket upgrades on rules with WS
// set are relayed message by message.
//
// The package also resolves the "@" path alias to the client source
// directory.
package devproxy
