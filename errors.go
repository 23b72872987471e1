package bridgevote

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/openbridge/bridgevote/types"
)

var (
	// ErrInvalidRelayerSet is returned when a relayer set would be constructed
	// or mutated into an invalid state.
	ErrInvalidRelayerSet = errors.New("invalid relayer set")

	// ErrProposalNotFound is returned by proposal queries for unknown keys.
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrInvalidProposalLifetime is returned when the voting window is set to
	// zero blocks.
	ErrInvalidProposalLifetime = errors.New("proposal lifetime must be greater than 0")
)

// NotRelayerError is returned when a vote is submitted by an account that is
// not a member of the relayer set.
type NotRelayerError struct {
	Account common.Address
}

func NewNotRelayerError(account common.Address) *NotRelayerError {
	return &NotRelayerError{Account: account}
}

func (e *NotRelayerError) Error() string {
	return fmt.Sprintf("account %s is not a relayer", e.Account)
}

// NotAdminError is returned when an administrative operation is attempted by
// an account other than the designated bridge administrator.
type NotAdminError struct {
	Account common.Address
}

func NewNotAdminError(account common.Address) *NotAdminError {
	return &NotAdminError{Account: account}
}

func (e *NotAdminError) Error() string {
	return fmt.Sprintf("account %s is not the bridge administrator", e.Account)
}

// UnknownChainError is returned when a chain ID has not been registered.
type UnknownChainError struct {
	ChainID types.ChainID
}

func NewUnknownChainError(chainID types.ChainID) *UnknownChainError {
	return &UnknownChainError{ChainID: chainID}
}

func (e *UnknownChainError) Error() string {
	return fmt.Sprintf("chain %d is not registered", e.ChainID)
}

// ChainAlreadyRegisteredError is returned when registering a chain twice.
type ChainAlreadyRegisteredError struct {
	ChainID types.ChainID
}

func NewChainAlreadyRegisteredError(chainID types.ChainID) *ChainAlreadyRegisteredError {
	return &ChainAlreadyRegisteredError{ChainID: chainID}
}

func (e *ChainAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("chain %d is already registered", e.ChainID)
}

// InvalidChainIDError is returned when registering the bridge's own chain ID
// as a counterpart chain.
type InvalidChainIDError struct {
	ChainID types.ChainID
}

func NewInvalidChainIDError(chainID types.ChainID) *InvalidChainIDError {
	return &InvalidChainIDError{ChainID: chainID}
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("chain %d is the local chain and cannot be registered", e.ChainID)
}

// UnknownResourceError is returned when no handler is registered for a
// resource ID. Absence of a mapping is an error, never a silent no-op.
type UnknownResourceError struct {
	ResourceID types.ResourceID
}

func NewUnknownResourceError(resourceID types.ResourceID) *UnknownResourceError {
	return &UnknownResourceError{ResourceID: resourceID}
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("no handler registered for resource %s", e.ResourceID)
}

// ReplayedNonceError is returned when a vote references a deposit nonce at or
// below the chain's resolved-nonce watermark.
type ReplayedNonceError struct {
	ChainID types.ChainID
	Nonce   types.DepositNonce
}

func NewReplayedNonceError(chainID types.ChainID, nonce types.DepositNonce) *ReplayedNonceError {
	return &ReplayedNonceError{ChainID: chainID, Nonce: nonce}
}

func (e *ReplayedNonceError) Error() string {
	return fmt.Sprintf("nonce %d has already been resolved for chain %d", e.Nonce, e.ChainID)
}

// DuplicateVoteError is returned when a relayer votes more than once on the
// same proposal, in either direction.
type DuplicateVoteError struct {
	Account common.Address
	Key     types.ProposalKey
}

func NewDuplicateVoteError(account common.Address, key types.ProposalKey) *DuplicateVoteError {
	return &DuplicateVoteError{Account: account, Key: key}
}

func (e *DuplicateVoteError) Error() string {
	return fmt.Sprintf("relayer %s has already voted on proposal (%s)", e.Account, e.Key)
}

// AlreadyResolvedError is returned when a vote targets a proposal in a
// terminal status.
type AlreadyResolvedError struct {
	Key    types.ProposalKey
	Status types.ProposalStatus
}

func NewAlreadyResolvedError(key types.ProposalKey, status types.ProposalStatus) *AlreadyResolvedError {
	return &AlreadyResolvedError{Key: key, Status: status}
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("proposal (%s) is already resolved with status %s", e.Key, e.Status)
}

// ProposalExpiredError is returned when a vote touches a proposal past its
// expiry. The touch itself transitions the proposal to Expired.
type ProposalExpiredError struct {
	Key    types.ProposalKey
	Expiry uint64
}

func NewProposalExpiredError(key types.ProposalKey, expiry uint64) *ProposalExpiredError {
	return &ProposalExpiredError{Key: key, Expiry: expiry}
}

func (e *ProposalExpiredError) Error() string {
	return fmt.Sprintf("proposal (%s) expired at block %d", e.Key, e.Expiry)
}

// HandlerFailedError is returned when the resolved handler fails. The
// triggering vote is rolled back in full, leaving the proposal Active.
type HandlerFailedError struct {
	Key types.ProposalKey
	Err error
}

func NewHandlerFailedError(key types.ProposalKey, err error) *HandlerFailedError {
	return &HandlerFailedError{Key: key, Err: err}
}

func (e *HandlerFailedError) Error() string {
	return fmt.Sprintf("handler failed for proposal (%s): %s", e.Key, e.Err)
}

func (e *HandlerFailedError) Unwrap() error {
	return e.Err
}
