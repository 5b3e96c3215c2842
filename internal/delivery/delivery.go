// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a serving endpoint (HTTP today). Servers are collected into an
// fx value group and started together.
type Delivery interface {
	// Serve blocks and serves until the context is cancelled or the listener fails.
	Serve(ctx context.Context) error
}
