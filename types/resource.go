package types //nolint:revive

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ResourceIDLength is the fixed width of a resource identifier in bytes.
const ResourceIDLength = 32

// ResourceID is an opaque fixed-width identifier that routes an approved
// proposal to the local handler registered for it.
//
// The common format is a 31 byte tag followed by a 1 byte chain ID, with the
// tag left-padded for EVM compatibility. See DeriveResourceID.
type ResourceID [ResourceIDLength]byte

// DeriveResourceID concatenates a chain ID and a tag to produce a resource ID.
// At most 31 bytes of the tag are used; the last byte holds the chain ID.
func DeriveResourceID(chain ChainID, tag []byte) ResourceID {
	var rID ResourceID
	rID[31] = byte(chain)

	n := len(tag)
	if n > 31 {
		n = 31
	}
	for i := range n {
		rID[30-i] = tag[n-1-i]
	}

	return rID
}

// SourceChain returns the chain ID encoded in the final byte of the resource ID.
func (r ResourceID) SourceChain() ChainID {
	return ChainID(r[31])
}

// Hex returns the resource ID as a 0x-prefixed hex string.
func (r ResourceID) Hex() string {
	return "0x" + hex.EncodeToString(r[:])
}

func (r ResourceID) String() string {
	return r.Hex()
}

// MarshalText implements encoding.TextMarshaler so resource IDs render as hex
// in JSON documents.
func (r ResourceID) MarshalText() ([]byte, error) {
	return []byte(r.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting a 0x-prefixed
// or bare 64 character hex string.
func (r *ResourceID) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "0x")

	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid resource ID %q: %w", string(text), err)
	}
	if len(b) != ResourceIDLength {
		return fmt.Errorf("invalid resource ID %q: expected %d bytes, got %d", string(text), ResourceIDLength, len(b))
	}

	copy(r[:], b)

	return nil
}
