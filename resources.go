package bridgevote

import (
	"github.com/openbridge/bridgevote/sdk"
	"github.com/openbridge/bridgevote/types"
)

// ResourceRegistry maps resource identifiers to the local handler invoked
// when a proposal for that resource resolves.
//
// Not safe for concurrent use on its own; the engine serializes access.
type ResourceRegistry struct {
	handlers map[types.ResourceID]sdk.Handler
}

// NewResourceRegistry returns an empty registry.
func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{
		handlers: make(map[types.ResourceID]sdk.Handler),
	}
}

// Register maps a resource ID to a handler, overwriting any prior mapping.
// Guarding against hijacking an existing mapping is the administrator's
// responsibility.
func (r *ResourceRegistry) Register(id types.ResourceID, handler sdk.Handler) {
	r.handlers[id] = handler
}

// Unregister removes a resource mapping. Proposals for the resource will fail
// with UnknownResourceError from then on.
func (r *ResourceRegistry) Unregister(id types.ResourceID) error {
	if _, ok := r.handlers[id]; !ok {
		return NewUnknownResourceError(id)
	}
	delete(r.handlers, id)

	return nil
}

// Resolve looks up the handler for a resource ID.
func (r *ResourceRegistry) Resolve(id types.ResourceID) (sdk.Handler, bool) {
	h, ok := r.handlers[id]

	return h, ok
}
