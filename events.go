package bridgevote

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/openbridge/bridgevote/types"
)

// Event is an observable record of a state change inside the bridge core.
// Events are emitted synchronously, after the change they describe has been
// persisted.
type Event interface {
	Name() string
}

// EventSink receives events from the engine. Emit must not block.
type EventSink interface {
	Emit(event Event)
}

// ProposalCreated is emitted when the first valid vote creates a proposal.
type ProposalCreated struct {
	Key        types.ProposalKey
	ResourceID types.ResourceID
	Expiry     uint64
}

func (ProposalCreated) Name() string { return "ProposalCreated" }

// VoteRecorded is emitted for every tallied vote.
type VoteRecorded struct {
	Key      types.ProposalKey
	Relayer  common.Address
	InFavour bool
}

func (VoteRecorded) Name() string { return "VoteRecorded" }

// ProposalExecuted is emitted when the affirmative tally reaches the
// threshold and the registered handler runs successfully.
type ProposalExecuted struct {
	Key types.ProposalKey
}

func (ProposalExecuted) Name() string { return "ProposalExecuted" }

// ProposalRejected is emitted when approval becomes mathematically
// impossible.
type ProposalRejected struct {
	Key types.ProposalKey
}

func (ProposalRejected) Name() string { return "ProposalRejected" }

// ProposalExpired is emitted when a touch discovers the proposal outlived its
// voting window.
type ProposalExpired struct {
	Key    types.ProposalKey
	Expiry uint64
}

func (ProposalExpired) Name() string { return "ProposalExpired" }

// RelayerAdded is emitted when a relayer joins the set.
type RelayerAdded struct {
	Relayer common.Address
}

func (RelayerAdded) Name() string { return "RelayerAdded" }

// RelayerRemoved is emitted when a relayer leaves the set.
type RelayerRemoved struct {
	Relayer common.Address
}

func (RelayerRemoved) Name() string { return "RelayerRemoved" }

// ThresholdChanged is emitted when the resolution threshold changes.
type ThresholdChanged struct {
	Threshold uint32
}

func (ThresholdChanged) Name() string { return "ThresholdChanged" }

// ChainRegistered is emitted when a counterpart chain is recognized.
type ChainRegistered struct {
	ChainID types.ChainID
}

func (ChainRegistered) Name() string { return "ChainRegistered" }

// ResourceRegistered is emitted when a resource is mapped to a handler.
type ResourceRegistered struct {
	ResourceID types.ResourceID
}

func (ResourceRegistered) Name() string { return "ResourceRegistered" }

// ResourceRemoved is emitted when a resource mapping is removed.
type ResourceRemoved struct {
	ResourceID types.ResourceID
}

func (ResourceRemoved) Name() string { return "ResourceRemoved" }

// ProposalLifetimeChanged is emitted when the voting window length changes.
type ProposalLifetimeChanged struct {
	Lifetime uint64
}

func (ProposalLifetimeChanged) Name() string { return "ProposalLifetimeChanged" }

// FungibleTransfer is emitted for an outbound fungible deposit. Relayers
// observe it and replay the deposit on the destination chain.
type FungibleTransfer struct {
	Destination types.ChainID
	Nonce       types.DepositNonce
	ResourceID  types.ResourceID
	Amount      *big.Int
	Recipient   []byte
}

func (FungibleTransfer) Name() string { return "FungibleTransfer" }

// NonFungibleTransfer is emitted for an outbound non-fungible deposit.
type NonFungibleTransfer struct {
	Destination types.ChainID
	Nonce       types.DepositNonce
	ResourceID  types.ResourceID
	TokenID     []byte
	Recipient   []byte
	Metadata    []byte
}

func (NonFungibleTransfer) Name() string { return "NonFungibleTransfer" }

// GenericTransfer is emitted for an outbound generic data payload.
type GenericTransfer struct {
	Destination types.ChainID
	Nonce       types.DepositNonce
	ResourceID  types.ResourceID
	Metadata    []byte
}

func (GenericTransfer) Name() string { return "GenericTransfer" }

// LoggingSink is an EventSink that writes every event to a zap logger.
type LoggingSink struct {
	log *zap.Logger
}

// NewLoggingSink returns a sink logging events at info level.
func NewLoggingSink(log *zap.Logger) *LoggingSink {
	return &LoggingSink{log: log}
}

// Emit implements EventSink.
func (s *LoggingSink) Emit(event Event) {
	s.log.Info(event.Name(), zap.Any("event", event))
}

// RecordingSink is an EventSink that retains every event in order. Used by
// tests and the replay tool to assert on emission sequences.
type RecordingSink struct {
	mu     sync.Mutex
	events []Event
}

// NewRecordingSink returns an empty recording sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// Emit implements EventSink.
func (s *RecordingSink) Emit(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
}

// Events returns a copy of the recorded events in emission order.
func (s *RecordingSink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)

	return out
}

type nopSink struct{}

func (nopSink) Emit(Event) {}
