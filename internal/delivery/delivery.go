// Package delivery defines the servers that expose the application.
package delivery

import "context"

// Delivery is a long-running server started by the application.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown is not an error.
	Serve(ctx context.Context) error
}
