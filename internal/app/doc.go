// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app is the application instance of the web client.
//
// Bootstrap is a linear sequence:
//
//	a := app.New("agent-console", log)
//	_ = a.Use(state.NewRegistry())   // state plugin
//	_ = a.Use(routes)                // router plugin
//	a.Globals().Set(app.APIKey, api) // "$api"
//	h, err := a.Mount("#app")
//
// Plugins receive the instance through [Plugin.Install] and register
// themselves on it. Views reach the instance at render time through the
// request context, see [FromContext].
package app
