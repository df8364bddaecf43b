// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a transport server started by the application entrypoint.
// Implementations register themselves in the "deliveries" fx group.
type Delivery interface {
	// Serve blocks running the server until it is shut down.
	Serve(ctx context.Context) error
}
