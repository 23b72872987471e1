package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseChainID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    any
		want    ChainID
		wantErr bool
	}{
		{name: "int", give: 5, want: 5},
		{name: "uint64", give: uint64(255), want: 255},
		{name: "string", give: "42", want: 42},
		{name: "overflow", give: 256, wantErr: true},
		{name: "negative", give: -1, wantErr: true},
		{name: "garbage", give: "not-a-number", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseChainID(tt.give)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
