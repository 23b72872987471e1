package transfer

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ReleaseHandler_Execute(t *testing.T) {
	t.Parallel()

	l := NewLedger(map[common.Address]*big.Int{
		reserve: big.NewInt(1000),
	})
	h := NewReleaseHandler(l, reserve)

	payload := []byte(`{"recipient":"0x00000000000000000000000000000000000000A1","amount":250}`)
	require.NoError(t, h.Execute(t.Context(), payload))

	assert.Equal(t, int64(250), l.Balance(alice).Int64())
	assert.Equal(t, int64(750), l.Balance(reserve).Int64())
}

func Test_ReleaseHandler_Execute_Invalid(t *testing.T) {
	t.Parallel()

	l := NewLedger(map[common.Address]*big.Int{
		reserve: big.NewInt(10),
	})
	h := NewReleaseHandler(l, reserve)

	tests := []struct {
		name    string
		payload string
	}{
		{"malformed json", `{"recipient":`},
		{"missing recipient", `{"amount":5}`},
		{"missing amount", `{"recipient":"0x00000000000000000000000000000000000000A1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Error(t, h.Execute(t.Context(), []byte(tt.payload)))
		})
	}

	// A release exceeding the reserve fails and moves nothing.
	over := []byte(`{"recipient":"0x00000000000000000000000000000000000000A1","amount":11}`)
	require.ErrorIs(t, h.Execute(t.Context(), over), ErrInsufficientBalance)
	assert.Equal(t, int64(10), l.Balance(reserve).Int64())
}

func Test_RemarkHandler_Execute(t *testing.T) {
	t.Parallel()

	h := NewRemarkHandler()
	assert.Empty(t, h.Remarks())

	require.NoError(t, h.Execute(t.Context(), []byte("hello")))
	require.NoError(t, h.Execute(t.Context(), []byte("world")))

	remarks := h.Remarks()
	require.Len(t, remarks, 2)
	assert.Equal(t, crypto.Keccak256Hash([]byte("hello")), remarks[0])
	assert.Equal(t, crypto.Keccak256Hash([]byte("world")), remarks[1])
}
