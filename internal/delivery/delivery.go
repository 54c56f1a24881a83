// Package delivery holds the entrypoints that expose the storefront to its callers.
package delivery

import "context"

// Delivery is a long-running surface started by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
