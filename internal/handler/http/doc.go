// Package http implements the inbound HTTP layer of the web client.
//
// It wires the mounted application handler behind panic recovery, request
// tracing, access logging and response compression. The development server
// additionally puts the proxy rule table in front of the application.
package http
