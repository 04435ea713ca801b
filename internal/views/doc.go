// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package views holds the routed views of the web client.
//
// HomeView is created up front; ChatView is created by a loader the first
// time "/chat" is visited. Both read their templates from an fs.FS: the
// copy embedded in the binary, or the source directory when the
// development server runs.
//
// Views reach the typed backend calls ("$backend") and the state registry
// ("$state") through the app stored in the request context.
package views
