package erc721

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = common.HexToAddress("0xA1")
	bob   = common.HexToAddress("0xB1")
)

func Test_Registry_Mint(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	require.NoError(t, r.Mint(alice, big.NewInt(1), []byte("meta")))
	assert.Equal(t, 1, r.Count())

	owner, err := r.OwnerOf(big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	require.ErrorIs(t, r.Mint(bob, big.NewInt(1), nil), ErrTokenExists)
	assert.Equal(t, 1, r.Count())
}

func Test_Registry_Burn(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Mint(alice, big.NewInt(1), nil))

	require.ErrorIs(t, r.Burn(bob, big.NewInt(1)), ErrNotOwner)
	require.ErrorIs(t, r.Burn(alice, big.NewInt(2)), ErrTokenNotFound)

	require.NoError(t, r.Burn(alice, big.NewInt(1)))
	assert.Equal(t, 0, r.Count())

	_, err := r.OwnerOf(big.NewInt(1))
	require.ErrorIs(t, err, ErrTokenNotFound)
}

func Test_Registry_TransferOwner(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, r.Mint(alice, big.NewInt(7), nil))

	require.ErrorIs(t, r.TransferOwner(bob, alice, big.NewInt(7)), ErrNotOwner)
	require.ErrorIs(t, r.TransferOwner(alice, bob, big.NewInt(8)), ErrTokenNotFound)

	require.NoError(t, r.TransferOwner(alice, bob, big.NewInt(7)))

	owner, err := r.OwnerOf(big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, bob, owner)
}
