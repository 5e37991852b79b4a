package api

import "context"

// Server is API layer that accepts withdrawal and wallet management requests
type Server interface {
	// Serve starts the API server. Serve blocks until the server is stopped or
	// an error is encoutered.
	Serve() error

	// Shutdown stops accepting connections and waits for in flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
