package types //nolint:revive

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ChainID is a bridge-local identifier for a counterpart chain.
//
// These values are assigned by the bridge administrator and must be unique
// within the set of bridged chains. They carry no meaning outside the bridge.
type ChainID uint8

// DepositNonce is a per-source-chain sequence number assigned to each deposit.
// Nonces start at 1 and increase monotonically; they are the replay guard for
// inbound proposals.
type DepositNonce uint64

// ParseChainID converts an arbitrary integer-like value to a ChainID, failing
// if the value does not fit in the uint8 range.
func ParseChainID(v any) (ChainID, error) {
	id, err := cast.ToUint64E(v)
	if err != nil {
		return 0, err
	}
	if id > math.MaxUint8 {
		return 0, fmt.Errorf("chain ID %d exceeds the uint8 range", id)
	}

	return ChainID(id), nil
}
