package server

import "context"

// Server defines the lifecycle contract of the transport server. It
// satisfies workers.Worker.
type Server interface {
	// Run serves until ctx is cancelled or serving fails, then shuts
	// down gracefully within the configured timeout.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
