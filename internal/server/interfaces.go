package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
type Server interface {
	// RunServer binds the listener and serves requests until ctx is
	// cancelled, a stop signal arrives, or serving fails. It returns nil
	// after a graceful shutdown.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error

	// Addr returns the bound address, or an empty string before the
	// listener is open.
	Addr() string
}
