package transfer

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-playground/validator/v10"

	"github.com/openbridge/bridgevote/sdk"
)

// ReleasePayload is the call payload of a fungible release proposal: move
// bridged funds out of the reserve to the recipient.
type ReleasePayload struct {
	Recipient common.Address `json:"recipient" validate:"required"`
	Amount    *big.Int       `json:"amount" validate:"required"`
}

// Validate runs tag-based validation on the payload.
func (p *ReleasePayload) Validate() error {
	var validate = validator.New()

	return validate.Struct(p)
}

// ReleaseHandler releases native funds from the bridge reserve account when a
// fungible transfer proposal resolves.
type ReleaseHandler struct {
	ledger  *Ledger
	reserve common.Address
}

var _ sdk.Handler = (*ReleaseHandler)(nil)

// NewReleaseHandler builds a handler releasing from the given reserve account.
func NewReleaseHandler(ledger *Ledger, reserve common.Address) *ReleaseHandler {
	return &ReleaseHandler{ledger: ledger, reserve: reserve}
}

// Execute implements sdk.Handler. The payload is a JSON ReleasePayload.
func (h *ReleaseHandler) Execute(ctx context.Context, payload []byte) error {
	var p ReleasePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if err := h.ledger.Transfer(h.reserve, p.Recipient, p.Amount); err != nil {
		return err
	}

	sdk.LoggerFrom(ctx).Infof("released %s to %s", p.Amount, p.Recipient)

	return nil
}

// RemarkHandler records the hash of each generic payload it executes. It is
// the smallest useful consumer: proof that an arbitrary cross-chain message
// was agreed on.
type RemarkHandler struct {
	mu      sync.Mutex
	remarks []common.Hash
}

var _ sdk.Handler = (*RemarkHandler)(nil)

// NewRemarkHandler returns an empty remark handler.
func NewRemarkHandler() *RemarkHandler {
	return &RemarkHandler{}
}

// Execute implements sdk.Handler.
func (h *RemarkHandler) Execute(_ context.Context, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.remarks = append(h.remarks, crypto.Keccak256Hash(payload))

	return nil
}

// Remarks returns the hashes recorded so far, in execution order.
func (h *RemarkHandler) Remarks() []common.Hash {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]common.Hash, len(h.remarks))
	copy(out, h.remarks)

	return out
}
