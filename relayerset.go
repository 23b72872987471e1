package bridgevote

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/openbridge/bridgevote/internal/utils/safecast"
)

// RelayerSet is the authoritative mapping of accounts authorized to vote,
// together with the resolution threshold.
//
// The set enforces its own invariants (1 <= threshold <= member count)
// regardless of caller; the capability check for mutation lives in Admin, not
// here. The set is not safe for concurrent use on its own; the engine
// serializes access.
type RelayerSet struct {
	members   map[common.Address]struct{}
	threshold uint32
}

// NewRelayerSet builds a relayer set from the initial membership and
// threshold, rejecting duplicates and unreachable thresholds.
func NewRelayerSet(members []common.Address, threshold uint32) (*RelayerSet, error) {
	s := &RelayerSet{
		members:   make(map[common.Address]struct{}, len(members)),
		threshold: threshold,
	}

	for _, m := range members {
		if _, ok := s.members[m]; ok {
			return nil, fmt.Errorf("%w: duplicate relayer %s", ErrInvalidRelayerSet, m)
		}
		s.members[m] = struct{}{}
	}

	if err := s.checkThreshold(threshold, len(s.members)); err != nil {
		return nil, err
	}

	return s, nil
}

// IsRelayer reports whether the account is a member of the set.
func (s *RelayerSet) IsRelayer(account common.Address) bool {
	_, ok := s.members[account]

	return ok
}

// Count returns the current number of relayers.
func (s *RelayerSet) Count() int {
	return len(s.members)
}

// Threshold returns the number of affirmative votes required to approve a
// proposal.
func (s *RelayerSet) Threshold() uint32 {
	return s.threshold
}

// Members returns the membership sorted by address for deterministic output.
func (s *RelayerSet) Members() []common.Address {
	out := slices.Collect(maps.Keys(s.members))
	slices.SortFunc(out, func(a, b common.Address) int {
		return bytes.Compare(a[:], b[:])
	})

	return out
}

// Add inserts a new relayer, failing if it is already present.
func (s *RelayerSet) Add(account common.Address) error {
	if s.IsRelayer(account) {
		return fmt.Errorf("%w: relayer %s already exists", ErrInvalidRelayerSet, account)
	}
	s.members[account] = struct{}{}

	return nil
}

// Remove deletes a relayer, failing if it is absent or if the removal would
// leave fewer members than the threshold requires. The administrator must
// lower the threshold first; membership is never clamped silently.
func (s *RelayerSet) Remove(account common.Address) error {
	if !s.IsRelayer(account) {
		return fmt.Errorf("%w: relayer %s does not exist", ErrInvalidRelayerSet, account)
	}
	if err := s.checkThreshold(s.threshold, len(s.members)-1); err != nil {
		return err
	}
	delete(s.members, account)

	return nil
}

// SetThreshold updates the resolution threshold, failing outside
// [1, member count].
func (s *RelayerSet) SetThreshold(threshold uint32) error {
	if err := s.checkThreshold(threshold, len(s.members)); err != nil {
		return err
	}
	s.threshold = threshold

	return nil
}

func (s *RelayerSet) checkThreshold(threshold uint32, count int) error {
	if threshold == 0 {
		return fmt.Errorf("%w: threshold must be greater than 0", ErrInvalidRelayerSet)
	}

	c, err := safecast.IntToUint32(count)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRelayerSet, err)
	}
	if threshold > c {
		return fmt.Errorf("%w: threshold %d exceeds relayer count %d", ErrInvalidRelayerSet, threshold, count)
	}

	return nil
}
