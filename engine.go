// Package bridgevote implements the proposal engine of a permissioned
// cross-chain bridge: relayer-set administration, threshold voting over
// cross-chain events, exactly-once dispatch of registered handlers, and
// replay protection per source chain.
package bridgevote

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/openbridge/bridgevote/internal/utils/safecast"
	"github.com/openbridge/bridgevote/types"
)

// DefaultProposalLifetime is the number of blocks a proposal remains votable
// when no lifetime is configured.
const DefaultProposalLifetime = 100

// BlockSource supplies the engine's logical clock. Proposal lifetimes are
// measured in blocks of the host chain, not wall time.
type BlockSource interface {
	CurrentBlock() uint64
}

// BlockCounter is a manually advanced BlockSource, useful for embedding the
// engine outside a chain runtime and for tests.
type BlockCounter struct {
	mu     sync.Mutex
	height uint64
}

// NewBlockCounter returns a counter starting at the given height.
func NewBlockCounter(height uint64) *BlockCounter {
	return &BlockCounter{height: height}
}

// CurrentBlock implements BlockSource.
func (c *BlockCounter) CurrentBlock() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.height
}

// Advance moves the counter forward by n blocks.
func (c *BlockCounter) Advance(n uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.height += n
}

// Engine is the bridge voting state machine. It owns the relayer set, the
// chain and resource registries and the proposal store exclusively; external
// collaborators reach them only through Vote, the query methods and Admin.
//
// A single mutex serializes every state-mutating call, so "check tally then
// transition" is atomic with vote recording. This mirrors the transaction
// serialization a chain runtime would provide.
type Engine struct {
	mu sync.Mutex

	relayers  *RelayerSet
	chains    *ChainRegistry
	resources *ResourceRegistry
	store     ProposalStore
	blocks    BlockSource

	lifetime uint64
	events   EventSink
	log      *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithProposalStore overrides the default in-memory proposal store.
func WithProposalStore(store ProposalStore) EngineOption {
	return func(e *Engine) { e.store = store }
}

// WithProposalLifetime sets the voting window, in blocks, granted to new
// proposals.
func WithProposalLifetime(blocks uint64) EngineOption {
	return func(e *Engine) { e.lifetime = blocks }
}

// WithEventSink routes engine events to the given sink.
func WithEventSink(sink EventSink) EngineOption {
	return func(e *Engine) { e.events = sink }
}

// WithEngineLogger sets the engine logger. The default discards everything.
func WithEngineLogger(log *zap.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// NewEngine builds an engine around the given relayer set, registries and
// block source.
func NewEngine(
	relayers *RelayerSet,
	chains *ChainRegistry,
	resources *ResourceRegistry,
	blocks BlockSource,
	opts ...EngineOption,
) *Engine {
	e := &Engine{
		relayers:  relayers,
		chains:    chains,
		resources: resources,
		store:     NewInMemoryStore(),
		blocks:    blocks,
		lifetime:  DefaultProposalLifetime,
		events:    nopSink{},
		log:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Vote submits a relayer's vote on a cross-chain event observed on the source
// chain. The first valid vote for an unseen (chain, nonce, payload) key
// creates the proposal.
//
// When the affirmative tally reaches the relayer threshold, the handler
// registered for the resource is invoked synchronously within this call and
// the proposal is marked Executed; there is no separate execution step. When
// votes against make approval impossible the proposal is marked Rejected.
//
// A failed handler, or a missing resource mapping at resolution time, fails
// the whole call atomically: the triggering vote is not recorded and the
// proposal stays Active so resolution can be re-pushed once the fault is
// fixed.
func (e *Engine) Vote(
	ctx context.Context,
	caller common.Address,
	chainID types.ChainID,
	nonce types.DepositNonce,
	resourceID types.ResourceID,
	payload []byte,
	inFavour bool,
) (types.VoteOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.relayers.IsRelayer(caller) {
		return "", NewNotRelayerError(caller)
	}
	if !e.chains.IsRegistered(chainID) {
		return "", NewUnknownChainError(chainID)
	}

	now := e.blocks.CurrentBlock()
	key := types.NewProposalKey(chainID, nonce, payload)

	prop, found := e.store.Get(key)
	if !found {
		// The replay watermark guards proposal creation only. Votes on a key
		// that already exists are judged against that proposal's own status,
		// so a late vote on an executed proposal reports AlreadyResolved
		// rather than ReplayedNonce.
		if nonce <= e.chains.ResolvedNonce(chainID) {
			return "", NewReplayedNonceError(chainID, nonce)
		}

		prop = types.Proposal{
			Key:        key,
			ResourceID: resourceID,
			Payload:    append([]byte(nil), payload...),
			Status:     types.StatusActive,
			CreatedAt:  now,
			Expiry:     now + e.lifetime,
		}
	}

	if prop.Status.Terminal() {
		return "", NewAlreadyResolvedError(key, prop.Status)
	}
	if found && prop.Expired(now) {
		prop.Status = types.StatusExpired
		e.store.Upsert(prop)
		e.events.Emit(ProposalExpired{Key: key, Expiry: prop.Expiry})
		e.log.Debug("proposal expired on touch", zap.Stringer("key", key))

		return "", NewProposalExpiredError(key, prop.Expiry)
	}
	if prop.HasVoted(caller) {
		return "", NewDuplicateVoteError(caller, key)
	}

	if inFavour {
		prop.VotesFor = append(prop.VotesFor, caller)
	} else {
		prop.VotesAgainst = append(prop.VotesAgainst, caller)
	}

	outcome, err := e.resolve(ctx, &prop)
	if err != nil {
		// Nothing has been persisted; the vote call fails as a whole.
		return "", err
	}

	e.store.Upsert(prop)

	if !found {
		e.events.Emit(ProposalCreated{Key: key, ResourceID: resourceID, Expiry: prop.Expiry})
	}
	e.events.Emit(VoteRecorded{Key: key, Relayer: caller, InFavour: inFavour})

	switch outcome {
	case types.VoteApproved:
		e.chains.raiseResolvedNonce(chainID, nonce)
		e.events.Emit(ProposalExecuted{Key: key})
		e.log.Info("proposal executed",
			zap.Stringer("key", key),
			zap.Stringer("resource", prop.ResourceID),
		)
	case types.VoteRejected:
		e.events.Emit(ProposalRejected{Key: key})
		e.log.Info("proposal rejected", zap.Stringer("key", key))
	case types.VoteRecorded:
		e.log.Debug("vote recorded",
			zap.Stringer("key", key),
			zap.Stringer("relayer", caller),
			zap.Bool("inFavour", inFavour),
		)
	}

	return outcome, nil
}

// resolve evaluates the tallies on an unpersisted proposal copy and, when the
// threshold is crossed, runs the registered handler. It mutates only the
// copy; persisting is the caller's job.
func (e *Engine) resolve(ctx context.Context, prop *types.Proposal) (types.VoteOutcome, error) {
	threshold := e.relayers.Threshold()

	tallyFor, err := safecast.IntToUint32(len(prop.VotesFor))
	if err != nil {
		return "", err
	}

	if tallyFor >= threshold {
		handler, ok := e.resources.Resolve(prop.ResourceID)
		if !ok {
			return "", NewUnknownResourceError(prop.ResourceID)
		}
		if herr := handler.Execute(ctx, prop.Payload); herr != nil {
			return "", NewHandlerFailedError(prop.Key, herr)
		}
		prop.Status = types.StatusExecuted

		return types.VoteApproved, nil
	}

	// Approval is impossible once the remaining non-opposed membership cannot
	// reach the threshold. Votes from since-removed relayers still count, so
	// the subtraction runs over ints to tolerate tallies above the current
	// membership size.
	if e.relayers.Count()-len(prop.VotesAgainst) < int(threshold) {
		prop.Status = types.StatusRejected

		return types.VoteRejected, nil
	}

	return types.VoteRecorded, nil
}

// QueryProposal returns the proposal stored under (chain, nonce, payload
// hash), or ErrProposalNotFound.
//
// Expiry is lazy: a query that finds an Active proposal past its window
// transitions it to Expired first and returns the updated record.
func (e *Engine) QueryProposal(chainID types.ChainID, nonce types.DepositNonce, payloadHash common.Hash) (types.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	key := types.ProposalKey{ChainID: chainID, Nonce: nonce, PayloadHash: payloadHash}

	prop, ok := e.store.Get(key)
	if !ok {
		return types.Proposal{}, ErrProposalNotFound
	}

	if prop.Status == types.StatusActive && prop.Expired(e.blocks.CurrentBlock()) {
		prop.Status = types.StatusExpired
		e.store.Upsert(prop)
		e.events.Emit(ProposalExpired{Key: key, Expiry: prop.Expiry})
	}

	return prop, nil
}

// IsRelayer reports whether the account may vote.
func (e *Engine) IsRelayer(account common.Address) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.relayers.IsRelayer(account)
}

// Threshold returns the current resolution threshold.
func (e *Engine) Threshold() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.relayers.Threshold()
}

// RelayerCount returns the current relayer membership size.
func (e *Engine) RelayerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.relayers.Count()
}

// ResolvedNonce returns the replay watermark for a source chain.
func (e *Engine) ResolvedNonce(chainID types.ChainID) types.DepositNonce {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.chains.ResolvedNonce(chainID)
}
