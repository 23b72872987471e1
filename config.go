package bridgevote

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/openbridge/bridgevote/internal/utils/safecast"
	"github.com/openbridge/bridgevote/types"
)

// Config is the administrator-supplied initial state of a bridge: who may
// vote, how many votes resolve a proposal, which chains are recognized, and
// how long proposals stay votable.
type Config struct {
	Admin            common.Address   `json:"admin" validate:"required"`
	Relayers         []common.Address `json:"relayers" validate:"required,min=1"`
	Threshold        uint32           `json:"threshold" validate:"required,min=1"`
	LocalChainID     types.ChainID    `json:"localChainId"`
	Chains           []types.ChainID  `json:"chains"`
	ProposalLifetime uint64           `json:"proposalLifetime" validate:"required,min=1"`
}

// NewConfig decodes and validates a bridge config from JSON.
func NewConfig(reader io.Reader) (*Config, error) {
	var out Config
	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return nil, err
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoadConfig reads a bridge config from a JSON file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewConfig(f)
}

// Validate runs tag-based validation plus the cross-field invariants the tags
// cannot express.
func (c *Config) Validate() error {
	var validate = validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	count, err := safecast.IntToUint32(len(c.Relayers))
	if err != nil {
		return err
	}
	if c.Threshold > count {
		return fmt.Errorf("%w: threshold %d exceeds relayer count %d", ErrInvalidRelayerSet, c.Threshold, count)
	}

	for _, id := range c.Chains {
		if id == c.LocalChainID {
			return NewInvalidChainIDError(id)
		}
	}

	return nil
}

// NewEngineFromConfig assembles a relayer set, chain registry and resource
// registry from the config and returns the engine together with its Admin
// surface. Resource handlers are registered afterwards through Admin.
func NewEngineFromConfig(cfg *Config, blocks BlockSource, opts ...EngineOption) (*Engine, *Admin, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	relayers, err := NewRelayerSet(cfg.Relayers, cfg.Threshold)
	if err != nil {
		return nil, nil, err
	}

	chains := NewChainRegistry(cfg.LocalChainID)
	for _, id := range cfg.Chains {
		if cerr := chains.Register(id); cerr != nil {
			return nil, nil, cerr
		}
	}

	opts = append([]EngineOption{WithProposalLifetime(cfg.ProposalLifetime)}, opts...)
	engine := NewEngine(relayers, chains, NewResourceRegistry(), blocks, opts...)

	return engine, NewAdmin(cfg.Admin, engine), nil
}
