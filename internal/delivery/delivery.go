// Package delivery holds the inbound surfaces of the service.
package delivery

import "context"

// Delivery is a long-running inbound server started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the server stops. A graceful shutdown returns nil.
	Serve(ctx context.Context) error
}
