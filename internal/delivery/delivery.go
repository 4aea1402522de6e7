// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). The composition root collects
// all deliveries and runs them until the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
