package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and the server has shut down.
	RunServer()

	// Run serves until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
