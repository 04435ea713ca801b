// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router maps URL paths to view components.
//
// The route table is static and ordered. A route either carries its
// component (eager) or a loader that is called on the first navigation and
// whose result is cached (lazy). A failed lazy load is not cached: the next
// navigation calls the loader again.
//
// There are no guards, redirects, nested routes or dynamic segments.
package router
