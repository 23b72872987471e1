package types //nolint:revive

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ProposalStatus is the lifecycle status of a cross-chain proposal.
type ProposalStatus string

const (
	// StatusActive indicates a proposal that is still collecting votes.
	StatusActive ProposalStatus = "Active"
	// StatusApproved indicates the affirmative tally reached the relayer
	// threshold. Proposals only hold this status transiently, inside the vote
	// call that crosses the threshold; they are persisted as Executed.
	StatusApproved ProposalStatus = "Approved"
	// StatusRejected indicates enough votes against were cast that approval
	// became mathematically impossible.
	StatusRejected ProposalStatus = "Rejected"
	// StatusExecuted indicates the registered handler ran for this proposal.
	StatusExecuted ProposalStatus = "Executed"
	// StatusExpired indicates the proposal outlived its voting window.
	StatusExpired ProposalStatus = "Expired"
)

// Terminal reports whether the status is final. Proposals in a terminal
// status are immutable and reject all further votes.
func (s ProposalStatus) Terminal() bool {
	return s == StatusExecuted || s == StatusRejected || s == StatusExpired
}

// ProposalKey uniquely identifies a proposal. Including the payload hash
// prevents two different payloads from colliding on the same (chain, nonce).
type ProposalKey struct {
	ChainID     ChainID      `json:"chainId"`
	Nonce       DepositNonce `json:"nonce"`
	PayloadHash common.Hash  `json:"payloadHash"`
}

// NewProposalKey builds the key for a source chain, deposit nonce and raw
// call payload, hashing the payload with Keccak256.
func NewProposalKey(chain ChainID, nonce DepositNonce, payload []byte) ProposalKey {
	return ProposalKey{
		ChainID:     chain,
		Nonce:       nonce,
		PayloadHash: crypto.Keccak256Hash(payload),
	}
}

func (k ProposalKey) String() string {
	return fmt.Sprintf("chain %d nonce %d payload %s", k.ChainID, k.Nonce, k.PayloadHash)
}

// Proposal is a claim that an event occurred on a source chain, subject to
// threshold voting before the registered handler is invoked.
type Proposal struct {
	Key          ProposalKey      `json:"key"`
	ResourceID   ResourceID       `json:"resourceId"`
	Payload      []byte           `json:"payload"`
	Status       ProposalStatus   `json:"status"`
	VotesFor     []common.Address `json:"votesFor"`
	VotesAgainst []common.Address `json:"votesAgainst"`
	CreatedAt    uint64           `json:"createdAt"`
	Expiry       uint64           `json:"expiry"`
}

// HasVoted reports whether the relayer has already voted for or against this
// proposal. Re-voting the opposite way is not permitted.
func (p *Proposal) HasVoted(relayer common.Address) bool {
	return slices.Contains(p.VotesFor, relayer) || slices.Contains(p.VotesAgainst, relayer)
}

// Expired reports whether the voting window has closed at the given block
// height. The boundary is strict: a proposal is still votable at its expiry
// height.
func (p *Proposal) Expired(now uint64) bool {
	return now > p.Expiry
}

// Clone returns a deep copy of the proposal. Vote slices and the payload are
// copied so mutations on the clone never leak into stored state.
func (p *Proposal) Clone() Proposal {
	out := *p
	out.Payload = slices.Clone(p.Payload)
	out.VotesFor = slices.Clone(p.VotesFor)
	out.VotesAgainst = slices.Clone(p.VotesAgainst)

	return out
}
