package bridgevote

import (
	"github.com/openbridge/bridgevote/types"
)

// ChainRegistry tracks the set of recognized counterpart chains, the
// resolved-nonce watermark guarding against inbound replays, and the outbound
// deposit nonce counter per destination.
//
// Not safe for concurrent use on its own; the engine serializes access.
type ChainRegistry struct {
	localID types.ChainID

	// resolved holds, per registered chain, the highest inbound nonce whose
	// proposal reached Executed. Presence in the map doubles as the
	// registration check.
	resolved map[types.ChainID]types.DepositNonce

	// deposits holds the outbound deposit nonce counter per destination.
	deposits map[types.ChainID]types.DepositNonce
}

// NewChainRegistry builds a registry for a bridge whose own chain carries the
// given ID. The local ID can never be registered as a counterpart.
func NewChainRegistry(localID types.ChainID) *ChainRegistry {
	return &ChainRegistry{
		localID:  localID,
		resolved: make(map[types.ChainID]types.DepositNonce),
		deposits: make(map[types.ChainID]types.DepositNonce),
	}
}

// LocalID returns the bridge's own chain ID.
func (r *ChainRegistry) LocalID() types.ChainID {
	return r.localID
}

// Register recognizes a chain as a source and destination for transfers. It
// fails on the local chain ID and on chains already registered.
func (r *ChainRegistry) Register(id types.ChainID) error {
	if id == r.localID {
		return NewInvalidChainIDError(id)
	}
	if r.IsRegistered(id) {
		return NewChainAlreadyRegisteredError(id)
	}
	r.resolved[id] = 0

	return nil
}

// IsRegistered reports whether the chain is recognized.
func (r *ChainRegistry) IsRegistered(id types.ChainID) bool {
	_, ok := r.resolved[id]

	return ok
}

// ResolvedNonce returns the chain's replay watermark: the highest inbound
// nonce whose proposal has been executed. Zero for chains with no executions.
func (r *ChainRegistry) ResolvedNonce(id types.ChainID) types.DepositNonce {
	return r.resolved[id]
}

// raiseResolvedNonce lifts the watermark to the given nonce. The watermark is
// monotonically non-decreasing.
func (r *ChainRegistry) raiseResolvedNonce(id types.ChainID, nonce types.DepositNonce) {
	if nonce > r.resolved[id] {
		r.resolved[id] = nonce
	}
}

// bumpDepositNonce increments and returns the outbound deposit nonce for a
// destination chain. The first deposit to a chain carries nonce 1.
func (r *ChainRegistry) bumpDepositNonce(id types.ChainID) types.DepositNonce {
	nonce := r.deposits[id] + 1
	r.deposits[id] = nonce

	return nonce
}
