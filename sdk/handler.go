// Package sdk defines the interface between the voting engine and the local
// actions it dispatches, along with reference handler implementations for
// consumers in its subpackages.
package sdk

import (
	"context"
)

// Handler is a local action executed when a proposal for its resource ID
// resolves.
//
// The engine guarantees Execute is called at most once per resolved proposal,
// so implementations need not self-deduplicate. Execute must be fallible but
// non-blocking: no network I/O, no waiting. A returned error fails the
// triggering vote call atomically and leaves the proposal Active.
type Handler interface {
	Execute(ctx context.Context, payload []byte) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, payload []byte) error

// Execute implements Handler.
func (f HandlerFunc) Execute(ctx context.Context, payload []byte) error {
	return f(ctx, payload)
}
