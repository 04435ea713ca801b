// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging built-in defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Client holds the defaults inherited by every outgoing backend request.
	Client Client `envPrefix:"CLIENT_"`

	// Web holds the listen address and mount settings of the web client.
	Web Web `envPrefix:"WEB_"`

	// DevServer holds the development server and proxy settings. Ignored
	// by the web client binary.
	DevServer DevServer `envPrefix:"DEV_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Client holds the process-wide defaults of the backend HTTP client.
type Client struct {
	// BaseURL is prepended to every relative request path
	// (e.g. "http://127.0.0.1:6000").
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds a single request including reading the body.
	// Env: CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// ContentType is the default Content-Type header of every request.
	// Env: CLIENT_CONTENT_TYPE
	ContentType string `env:"CONTENT_TYPE"`
}

// Web holds settings of the web client HTTP server.
type Web struct {
	// HTTPAddress is the TCP address the web client listens on,
	// in "host:port" format.
	// Env: WEB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// MountAnchor is the CSS id selector of the element the routed views are
	// rendered into (e.g. "#app").
	// Env: WEB_MOUNT_ANCHOR
	MountAnchor string `env:"MOUNT_ANCHOR"`

	// BasePath is the URL prefix the router is served under.
	// Env: WEB_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout caps how long a single inbound request may take.
	// Env: WEB_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DevServer holds settings that only the development server reads.
type DevServer struct {
	// HTTPAddress is the TCP address the dev server listens on.
	// Env: DEV_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SourceDir is the directory the "@" import alias resolves to. View
	// templates are read from it instead of the embedded copy.
	// Env: DEV_SOURCE_DIR
	SourceDir string `env:"SOURCE_DIR"`

	// APITarget is the backend HTTP origin "/api" is forwarded to.
	// Env: DEV_API_TARGET
	APITarget string `env:"API_TARGET"`

	// WSTarget is the backend WebSocket origin "/ws" and "/ws-test" are
	// forwarded to.
	// Env: DEV_WS_TARGET
	WSTarget string `env:"WS_TARGET"`

	// NoWatch disables reloading views when files under SourceDir change.
	// Env: DEV_NO_WATCH
	NoWatch bool `env:"NO_WATCH"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the web client
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args (without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
