package bridgevote

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewRelayerSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		members   []common.Address
		threshold uint32
		wantErr   string
	}{
		{
			name:      "valid",
			members:   []common.Address{relayerA, relayerB, relayerC},
			threshold: 2,
		},
		{
			name:      "threshold equals count",
			members:   []common.Address{relayerA},
			threshold: 1,
		},
		{
			name:      "zero threshold",
			members:   []common.Address{relayerA},
			threshold: 0,
			wantErr:   "threshold must be greater than 0",
		},
		{
			name:      "threshold exceeds count",
			members:   []common.Address{relayerA, relayerB},
			threshold: 3,
			wantErr:   "threshold 3 exceeds relayer count 2",
		},
		{
			name:      "duplicate member",
			members:   []common.Address{relayerA, relayerA},
			threshold: 1,
			wantErr:   "duplicate relayer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := NewRelayerSet(tt.members, tt.threshold)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidRelayerSet)
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.members), s.Count())
			assert.Equal(t, tt.threshold, s.Threshold())
		})
	}
}

func Test_RelayerSet_AddRemove(t *testing.T) {
	t.Parallel()

	s, err := NewRelayerSet([]common.Address{relayerA, relayerB}, 2)
	require.NoError(t, err)

	require.Error(t, s.Add(relayerA), "adding an existing relayer must fail")

	require.NoError(t, s.Add(relayerC))
	assert.True(t, s.IsRelayer(relayerC))
	assert.Equal(t, 3, s.Count())

	require.NoError(t, s.Remove(relayerC))
	assert.False(t, s.IsRelayer(relayerC))

	require.Error(t, s.Remove(relayerC), "removing an absent relayer must fail")

	// Count is at the threshold; another removal would make it unreachable.
	err = s.Remove(relayerB)
	require.ErrorIs(t, err, ErrInvalidRelayerSet)
	assert.True(t, s.IsRelayer(relayerB))
}

func Test_RelayerSet_SetThreshold(t *testing.T) {
	t.Parallel()

	s, err := NewRelayerSet([]common.Address{relayerA, relayerB, relayerC}, 2)
	require.NoError(t, err)

	require.NoError(t, s.SetThreshold(3))
	assert.Equal(t, uint32(3), s.Threshold())

	require.ErrorIs(t, s.SetThreshold(0), ErrInvalidRelayerSet)
	require.ErrorIs(t, s.SetThreshold(4), ErrInvalidRelayerSet)
	assert.Equal(t, uint32(3), s.Threshold())

	// Lowering the threshold unblocks removal again.
	require.NoError(t, s.SetThreshold(1))
	require.NoError(t, s.Remove(relayerC))
	require.NoError(t, s.Remove(relayerB))
	assert.Equal(t, 1, s.Count())
}

func Test_RelayerSet_Members_Sorted(t *testing.T) {
	t.Parallel()

	// Byte order, not checksummed-hex order: EIP-55 mixed casing must not
	// influence the result.
	s, err := NewRelayerSet([]common.Address{relayerC, relayerA, relayerB}, 1)
	require.NoError(t, err)

	assert.Equal(t, []common.Address{relayerA, relayerB, relayerC}, s.Members())
}
