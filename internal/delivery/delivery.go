// Package delivery defines the transport-agnostic entry points of the
// application. Each delivery (HTTP, worker) is started by the composition
// root and shut down through the fx lifecycle.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
