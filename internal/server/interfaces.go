package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// [RunServer] blocks until ctx is cancelled, a termination signal arrives
// or the listener fails. [Shutdown] drains in-flight requests and releases
// the resources attached to the server.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

// Closer releases a resource that outlives individual requests, such as the
// storage connections.
type Closer interface {
	Close(ctx context.Context) error
}
