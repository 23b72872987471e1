package erc721

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/openbridge/bridgevote/sdk"
)

// MintPayload is the call payload of a bridged NFT mint proposal.
type MintPayload struct {
	Recipient common.Address `json:"recipient" validate:"required"`
	TokenID   *big.Int       `json:"tokenId" validate:"required"`
	Metadata  []byte         `json:"metadata"`
}

// Validate runs tag-based validation on the payload.
func (p *MintPayload) Validate() error {
	var validate = validator.New()

	return validate.Struct(p)
}

// MintHandler mints a token into the registry when an NFT transfer proposal
// resolves.
type MintHandler struct {
	registry *Registry
}

var _ sdk.Handler = (*MintHandler)(nil)

// NewMintHandler builds a handler minting into the given registry.
func NewMintHandler(registry *Registry) *MintHandler {
	return &MintHandler{registry: registry}
}

// Execute implements sdk.Handler. The payload is a JSON MintPayload.
func (h *MintHandler) Execute(ctx context.Context, payload []byte) error {
	var p MintPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := h.registry.Mint(p.Recipient, p.TokenID, p.Metadata); err != nil {
		return err
	}

	sdk.LoggerFrom(ctx).Infof("minted token %s to %s", p.TokenID, p.Recipient)

	return nil
}
