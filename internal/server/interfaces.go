package server

import "context"

// Server defines the lifecycle of the application's transport.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is cancelled or the listener fails. It returns
	// after shutdown completed.
	Run(ctx context.Context) error
}
