// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP, WebSocket, ...).
// Serve blocks until the surface stops; shutdown happens through fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
