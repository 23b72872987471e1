package types

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ProposalStatus_Terminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status ProposalStatus
		want   bool
	}{
		{StatusActive, false},
		{StatusApproved, false},
		{StatusRejected, true},
		{StatusExecuted, true},
		{StatusExpired, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.status.Terminal())
		})
	}
}

func Test_NewProposalKey(t *testing.T) {
	t.Parallel()

	payload := []byte("payload")
	key := NewProposalKey(1, 7, payload)

	assert.Equal(t, ChainID(1), key.ChainID)
	assert.Equal(t, DepositNonce(7), key.Nonce)
	assert.Equal(t, crypto.Keccak256Hash(payload), key.PayloadHash)

	// Differing payloads on the same (chain, nonce) produce distinct keys.
	other := NewProposalKey(1, 7, []byte("other"))
	assert.NotEqual(t, key, other)

	assert.Contains(t, key.String(), "chain 1 nonce 7")
}

func Test_Proposal_HasVoted(t *testing.T) {
	t.Parallel()

	a := common.HexToAddress("0xA0")
	b := common.HexToAddress("0xB0")
	c := common.HexToAddress("0xC0")

	p := Proposal{
		VotesFor:     []common.Address{a},
		VotesAgainst: []common.Address{b},
	}

	assert.True(t, p.HasVoted(a))
	assert.True(t, p.HasVoted(b))
	assert.False(t, p.HasVoted(c))
}

func Test_Proposal_Expired(t *testing.T) {
	t.Parallel()

	p := Proposal{Expiry: 10}

	assert.False(t, p.Expired(9))
	assert.False(t, p.Expired(10), "still votable at the expiry height")
	assert.True(t, p.Expired(11))
}

func Test_Proposal_Clone(t *testing.T) {
	t.Parallel()

	a := common.HexToAddress("0xA0")

	p := Proposal{
		Key:      NewProposalKey(1, 1, []byte("payload")),
		Payload:  []byte("payload"),
		Status:   StatusActive,
		VotesFor: []common.Address{a},
	}

	clone := p.Clone()
	require.Equal(t, p, clone)

	clone.Payload[0] = 'x'
	clone.VotesFor[0] = common.HexToAddress("0xB0")
	clone.Status = StatusExecuted

	assert.Equal(t, []byte("payload"), p.Payload)
	assert.Equal(t, a, p.VotesFor[0])
	assert.Equal(t, StatusActive, p.Status)
}
