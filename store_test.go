package bridgevote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbridge/bridgevote/types"
)

func Test_InMemoryStore(t *testing.T) {
	t.Parallel()

	s := NewInMemoryStore()
	key := types.NewProposalKey(1, 7, []byte("payload"))

	_, ok := s.Get(key)
	assert.False(t, ok)

	prop := types.Proposal{
		Key:      key,
		Payload:  []byte("payload"),
		Status:   types.StatusActive,
		VotesFor: nil,
		Expiry:   10,
	}
	s.Upsert(prop)

	assert.Equal(t, 1, s.Len())

	got, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, types.StatusActive, got.Status)

	// Mutating a retrieved copy never reaches stored state.
	got.VotesFor = append(got.VotesFor, relayerA)
	got.Payload[0] = 'x'

	again, ok := s.Get(key)
	require.True(t, ok)
	assert.Empty(t, again.VotesFor)
	assert.Equal(t, []byte("payload"), again.Payload)

	// Upsert replaces.
	prop.Status = types.StatusExecuted
	s.Upsert(prop)

	again, ok = s.Get(key)
	require.True(t, ok)
	assert.Equal(t, types.StatusExecuted, again.Status)
	assert.Equal(t, 1, s.Len())
}
