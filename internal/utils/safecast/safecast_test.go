package safecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IntToUint32(t *testing.T) {
	t.Parallel()

	got, err := IntToUint32(42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got)

	_, err = IntToUint32(-1)
	require.Error(t, err)
}
