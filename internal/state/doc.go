// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state is the state plugin of the web client.
//
// A [Registry] holds named stores. Stores are declared once with [Define]
// and created lazily the first time a view asks for them:
//
//	var counter = state.Define("counter", func() int { return 0 })
//
//	s := counter.Use(reg)
//	s.Patch(func(n *int) { *n++ })
//
// The registry is installed into an app with app.Use and is reachable from
// views as the "$state" global property.
package state
