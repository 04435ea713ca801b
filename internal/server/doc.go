// Package server runs the HTTP server of the web client and of the
// development server, including signal handling and graceful shutdown.
package server
