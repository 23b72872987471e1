package bridgevote

import (
	"errors"
	"math/big"

	"github.com/openbridge/bridgevote/types"
)

// ErrInvalidDeposit is returned for outbound deposits with missing or
// malformed parameters.
var ErrInvalidDeposit = errors.New("invalid deposit")

// TransferFungible initiates an outbound transfer of a fungible asset to a
// registered destination chain. It assigns the next deposit nonce for the
// destination and emits a FungibleTransfer event for relayers to pick up.
//
// Called by local consumers (for example a transfer pallet) after they have
// locked or burned the asset on this side.
func (e *Engine) TransferFungible(
	destination types.ChainID,
	resourceID types.ResourceID,
	recipient []byte,
	amount *big.Int,
) (types.DepositNonce, error) {
	if amount == nil || amount.Sign() <= 0 {
		return 0, errors.Join(ErrInvalidDeposit, errors.New("amount must be positive"))
	}
	if len(recipient) == 0 {
		return 0, errors.Join(ErrInvalidDeposit, errors.New("recipient must not be empty"))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.chains.IsRegistered(destination) {
		return 0, NewUnknownChainError(destination)
	}

	nonce := e.chains.bumpDepositNonce(destination)
	e.events.Emit(FungibleTransfer{
		Destination: destination,
		Nonce:       nonce,
		ResourceID:  resourceID,
		Amount:      new(big.Int).Set(amount),
		Recipient:   append([]byte(nil), recipient...),
	})

	return nonce, nil
}

// TransferNonFungible initiates an outbound transfer of a non-fungible token
// to a registered destination chain.
func (e *Engine) TransferNonFungible(
	destination types.ChainID,
	resourceID types.ResourceID,
	tokenID []byte,
	recipient []byte,
	metadata []byte,
) (types.DepositNonce, error) {
	if len(tokenID) == 0 {
		return 0, errors.Join(ErrInvalidDeposit, errors.New("token ID must not be empty"))
	}
	if len(recipient) == 0 {
		return 0, errors.Join(ErrInvalidDeposit, errors.New("recipient must not be empty"))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.chains.IsRegistered(destination) {
		return 0, NewUnknownChainError(destination)
	}

	nonce := e.chains.bumpDepositNonce(destination)
	e.events.Emit(NonFungibleTransfer{
		Destination: destination,
		Nonce:       nonce,
		ResourceID:  resourceID,
		TokenID:     append([]byte(nil), tokenID...),
		Recipient:   append([]byte(nil), recipient...),
		Metadata:    append([]byte(nil), metadata...),
	})

	return nonce, nil
}

// TransferGeneric initiates an outbound transfer of an arbitrary data payload
// to a registered destination chain.
func (e *Engine) TransferGeneric(
	destination types.ChainID,
	resourceID types.ResourceID,
	metadata []byte,
) (types.DepositNonce, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.chains.IsRegistered(destination) {
		return 0, NewUnknownChainError(destination)
	}

	nonce := e.chains.bumpDepositNonce(destination)
	e.events.Emit(GenericTransfer{
		Destination: destination,
		Nonce:       nonce,
		ResourceID:  resourceID,
		Metadata:    append([]byte(nil), metadata...),
	})

	return nonce, nil
}
