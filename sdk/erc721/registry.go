// Package erc721 is a reference consumer of the voting engine: a minimal
// ERC-721 style token registry with a mint handler for bridged NFTs.
package erc721

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrTokenExists is returned when minting an ID that is already taken.
	ErrTokenExists = errors.New("token already exists")

	// ErrTokenNotFound is returned for operations on unknown token IDs.
	ErrTokenNotFound = errors.New("token does not exist")

	// ErrNotOwner is returned when a transfer or burn is attempted by an
	// account that does not own the token.
	ErrNotOwner = errors.New("account does not own token")
)

// Token is a single non-fungible token.
type Token struct {
	ID       *big.Int
	Owner    common.Address
	Metadata []byte
}

// Registry is an in-memory ERC-721 style token store. It stands in for the
// host chain's NFT module in demos and tests.
type Registry struct {
	mu     sync.Mutex
	tokens map[string]Token
}

// NewRegistry returns an empty token registry.
func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]Token)}
}

// Mint creates a token with the given ID, owner and metadata.
func (r *Registry) Mint(owner common.Address, id *big.Int, metadata []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if _, ok := r.tokens[key]; ok {
		return fmt.Errorf("%w: %s", ErrTokenExists, key)
	}

	r.tokens[key] = Token{
		ID:       new(big.Int).Set(id),
		Owner:    owner,
		Metadata: append([]byte(nil), metadata...),
	}

	return nil
}

// Burn removes a token owned by the given account.
func (r *Registry) Burn(owner common.Address, id *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	t, ok := r.tokens[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTokenNotFound, key)
	}
	if t.Owner != owner {
		return fmt.Errorf("%w: %s", ErrNotOwner, owner)
	}
	delete(r.tokens, key)

	return nil
}

// TransferOwner moves a token between accounts.
func (r *Registry) TransferOwner(from, to common.Address, id *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	t, ok := r.tokens[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTokenNotFound, key)
	}
	if t.Owner != from {
		return fmt.Errorf("%w: %s", ErrNotOwner, from)
	}
	t.Owner = to
	r.tokens[key] = t

	return nil
}

// OwnerOf returns the owner of a token.
func (r *Registry) OwnerOf(id *big.Int) (common.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[id.String()]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %s", ErrTokenNotFound, id)
	}

	return t.Owner, nil
}

// Count returns the number of live tokens.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tokens)
}
