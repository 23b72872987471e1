package bridgevote

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbridge/bridgevote/types"
)

const validConfigJSON = `{
	"admin": "0x0000000000000000000000000000000000000001",
	"relayers": [
		"0x000000000000000000000000000000000000000A",
		"0x000000000000000000000000000000000000000B",
		"0x000000000000000000000000000000000000000C"
	],
	"threshold": 2,
	"localChainId": 0,
	"chains": [1, 2],
	"proposalLifetime": 50
}`

func Test_NewConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    *Config
		wantErr string
	}{
		{
			name: "valid",
			give: validConfigJSON,
			want: &Config{
				Admin:            adminAcc,
				Relayers:         []common.Address{relayerA, relayerB, relayerC},
				Threshold:        2,
				LocalChainID:     0,
				Chains:           []types.ChainID{1, 2},
				ProposalLifetime: 50,
			},
		},
		{
			name:    "malformed json",
			give:    `{"admin": `,
			wantErr: "unexpected EOF",
		},
		{
			name:    "missing relayers",
			give:    `{"admin": "0x0000000000000000000000000000000000000001", "threshold": 1, "proposalLifetime": 10}`,
			wantErr: "'Relayers' failed on the 'required' tag",
		},
		{
			name:    "zero threshold",
			give:    `{"admin": "0x0000000000000000000000000000000000000001", "relayers": ["0x000000000000000000000000000000000000000A"], "threshold": 0, "proposalLifetime": 10}`,
			wantErr: "'Threshold' failed on the 'required' tag",
		},
		{
			name:    "threshold exceeds relayer count",
			give:    `{"admin": "0x0000000000000000000000000000000000000001", "relayers": ["0x000000000000000000000000000000000000000A"], "threshold": 2, "proposalLifetime": 10}`,
			wantErr: "threshold 2 exceeds relayer count 1",
		},
		{
			name:    "local chain listed as counterpart",
			give:    `{"admin": "0x0000000000000000000000000000000000000001", "relayers": ["0x000000000000000000000000000000000000000A"], "threshold": 1, "localChainId": 1, "chains": [1], "proposalLifetime": 10}`,
			wantErr: "is the local chain and cannot be registered",
		},
		{
			name:    "zero lifetime",
			give:    `{"admin": "0x0000000000000000000000000000000000000001", "relayers": ["0x000000000000000000000000000000000000000A"], "threshold": 1, "proposalLifetime": 0}`,
			wantErr: "'ProposalLifetime' failed on the 'required' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(strings.NewReader(tt.give))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func Test_LoadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bridge.json")
	require.NoError(t, os.WriteFile(path, []byte(validConfigJSON), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, adminAcc, cfg.Admin)
	assert.Len(t, cfg.Relayers, 3)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func Test_NewEngineFromConfig(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(strings.NewReader(validConfigJSON))
	require.NoError(t, err)

	engine, admin, err := NewEngineFromConfig(cfg, NewBlockCounter(1))
	require.NoError(t, err)
	require.NotNil(t, admin)

	assert.True(t, engine.IsRelayer(relayerA))
	assert.Equal(t, uint32(2), engine.Threshold())
	assert.Equal(t, 3, engine.RelayerCount())

	// The admin surface is bound to the configured account.
	require.NoError(t, admin.RegisterChain(cfg.Admin, 3))
	require.Error(t, admin.RegisterChain(outsider, 4))
}
