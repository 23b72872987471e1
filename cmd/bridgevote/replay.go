package bridgevote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openbridge/bridgevote"
	"github.com/openbridge/bridgevote/sdk"
	"github.com/openbridge/bridgevote/types"
)

// voteLog is the JSON document consumed by the replay command: a relayer-set
// config plus an ordered list of observed votes.
type voteLog struct {
	Resources []types.ResourceID `json:"resources"`
	Votes     []loggedVote       `json:"votes"`
}

type loggedVote struct {
	Relayer    common.Address     `json:"relayer"`
	ChainID    types.ChainID      `json:"chainId"`
	Nonce      types.DepositNonce `json:"nonce"`
	ResourceID types.ResourceID   `json:"resourceId"`
	Payload    hexBytes           `json:"payload"`
	InFavour   bool               `json:"inFavour"`
	Block      uint64             `json:"block"`
}

func buildReplayCmd() *cobra.Command {
	var (
		configPath string
		logPath    string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run a recorded vote log through a fresh engine and report proposal outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigWithEnv(configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			f, err := os.Open(logPath)
			if err != nil {
				return err
			}
			defer f.Close()

			var votes voteLog
			if err = json.NewDecoder(f).Decode(&votes); err != nil {
				return fmt.Errorf("error decoding vote log: %w", err)
			}

			return replay(cmd.Context(), cfg, &votes, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "bridge.json", "Path to the bridge config file")
	cmd.Flags().StringVar(&logPath, "log", "votes.json", "Path to the vote log file")

	return cmd
}

func replay(ctx context.Context, cfg *bridgevote.Config, votes *voteLog, out io.Writer) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	blocks := bridgevote.NewBlockCounter(0)
	sink := bridgevote.NewRecordingSink()

	engine, admin, err := bridgevote.NewEngineFromConfig(cfg, blocks,
		bridgevote.WithEventSink(sink),
		bridgevote.WithEngineLogger(logger),
	)
	if err != nil {
		return err
	}

	// Replayed handlers only audit; they never touch real state.
	audit := sdk.HandlerFunc(func(ctx context.Context, payload []byte) error {
		sdk.LoggerFrom(ctx).Infof("handler executed with %d payload bytes", len(payload))

		return nil
	})
	for _, id := range votes.Resources {
		if err = admin.RegisterHandler(cfg.Admin, id, audit); err != nil {
			return err
		}
	}

	ctx = sdk.WithLogger(ctx, logger.Sugar())

	height := uint64(0)
	for i, v := range votes.Votes {
		if v.Block > height {
			blocks.Advance(v.Block - height)
			height = v.Block
		}

		outcome, verr := engine.Vote(ctx, v.Relayer, v.ChainID, v.Nonce, v.ResourceID, v.Payload, v.InFavour)
		switch {
		case verr != nil:
			fmt.Fprintf(out, "vote %d: rejected: %s\n", i, verr)
		default:
			fmt.Fprintf(out, "vote %d: %s\n", i, outcome)
		}
	}

	for _, ev := range sink.Events() {
		fmt.Fprintf(out, "event: %s %+v\n", ev.Name(), ev)
	}

	return nil
}

// hexBytes decodes JSON strings as hex and falls back to base64 via the
// default []byte rules.
type hexBytes []byte

func (b *hexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.New("payload must be a string")
	}
	if strings.HasPrefix(s, "0x") {
		*b = common.FromHex(s)

		return nil
	}

	var raw []byte
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = raw

	return nil
}
