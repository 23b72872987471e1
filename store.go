package bridgevote

import (
	"sync"

	"github.com/openbridge/bridgevote/types"
)

// ProposalStore is keyed storage for in-flight and resolved proposals.
//
// It is a plain table: all lifecycle invariants are enforced by the engine,
// never here. Terminal proposals are retained for audit and replay detection;
// no pruning is performed.
type ProposalStore interface {
	// Get returns the proposal stored under the key, or false when absent.
	Get(key types.ProposalKey) (types.Proposal, bool)

	// Upsert inserts or replaces the proposal stored under its key.
	Upsert(proposal types.Proposal)
}

// InMemoryStore is the default ProposalStore, backed by a map.
//
// It carries its own lock so reads through QueryProposal stay safe even while
// the engine serializes writes elsewhere.
type InMemoryStore struct {
	mu        sync.RWMutex
	proposals map[types.ProposalKey]types.Proposal
}

// NewInMemoryStore returns an empty in-memory proposal store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		proposals: make(map[types.ProposalKey]types.Proposal),
	}
}

// Get implements ProposalStore. The returned proposal is a deep copy.
func (s *InMemoryStore) Get(key types.ProposalKey) (types.Proposal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.proposals[key]
	if !ok {
		return types.Proposal{}, false
	}

	return p.Clone(), true
}

// Upsert implements ProposalStore. The proposal is deep-copied on the way in
// so later caller mutations never reach stored state.
func (s *InMemoryStore) Upsert(proposal types.Proposal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.proposals[proposal.Key] = proposal.Clone()
}

// Len returns the number of stored proposals, terminal entries included.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.proposals)
}
