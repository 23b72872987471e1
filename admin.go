package bridgevote

import (
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/openbridge/bridgevote/sdk"
	"github.com/openbridge/bridgevote/types"
)

// Admin wraps the engine's registries behind a single authorization
// predicate: the caller must be the designated bridge administrator. Each
// call is a direct, atomic mutation; validation lives in the components
// themselves.
type Admin struct {
	admin  common.Address
	engine *Engine
}

// NewAdmin binds the administrative surface of an engine to the given
// administrator account.
func NewAdmin(admin common.Address, engine *Engine) *Admin {
	return &Admin{admin: admin, engine: engine}
}

func (a *Admin) authorize(caller common.Address) error {
	if caller != a.admin {
		return NewNotAdminError(caller)
	}

	return nil
}

// AddRelayer adds an account to the relayer set.
func (a *Admin) AddRelayer(caller, relayer common.Address) error {
	if err := a.authorize(caller); err != nil {
		return err
	}

	e := a.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.relayers.Add(relayer); err != nil {
		return err
	}
	e.events.Emit(RelayerAdded{Relayer: relayer})
	e.log.Info("relayer added", zap.Stringer("relayer", relayer))

	return nil
}

// RemoveRelayer removes an account from the relayer set. The call fails if
// the removal would leave fewer members than the threshold requires; lower
// the threshold first. Votes the relayer already cast remain counted.
func (a *Admin) RemoveRelayer(caller, relayer common.Address) error {
	if err := a.authorize(caller); err != nil {
		return err
	}

	e := a.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.relayers.Remove(relayer); err != nil {
		return err
	}
	e.events.Emit(RelayerRemoved{Relayer: relayer})
	e.log.Info("relayer removed", zap.Stringer("relayer", relayer))

	return nil
}

// SetThreshold updates the number of affirmative votes required to approve a
// proposal.
func (a *Admin) SetThreshold(caller common.Address, threshold uint32) error {
	if err := a.authorize(caller); err != nil {
		return err
	}

	e := a.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.relayers.SetThreshold(threshold); err != nil {
		return err
	}
	e.events.Emit(ThresholdChanged{Threshold: threshold})
	e.log.Info("relayer threshold changed", zap.Uint32("threshold", threshold))

	return nil
}

// RegisterChain recognizes a counterpart chain for transfers in both
// directions.
func (a *Admin) RegisterChain(caller common.Address, chainID types.ChainID) error {
	if err := a.authorize(caller); err != nil {
		return err
	}

	e := a.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.chains.Register(chainID); err != nil {
		return err
	}
	e.events.Emit(ChainRegistered{ChainID: chainID})
	e.log.Info("chain registered", zap.Uint8("chainId", uint8(chainID)))

	return nil
}

// RegisterHandler maps a resource ID to a handler, overwriting any prior
// mapping.
func (a *Admin) RegisterHandler(caller common.Address, resourceID types.ResourceID, handler sdk.Handler) error {
	if err := a.authorize(caller); err != nil {
		return err
	}

	e := a.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resources.Register(resourceID, handler)
	e.events.Emit(ResourceRegistered{ResourceID: resourceID})
	e.log.Info("resource registered", zap.Stringer("resource", resourceID))

	return nil
}

// UnregisterHandler removes a resource mapping.
func (a *Admin) UnregisterHandler(caller common.Address, resourceID types.ResourceID) error {
	if err := a.authorize(caller); err != nil {
		return err
	}

	e := a.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.resources.Unregister(resourceID); err != nil {
		return err
	}
	e.events.Emit(ResourceRemoved{ResourceID: resourceID})
	e.log.Info("resource removed", zap.Stringer("resource", resourceID))

	return nil
}

// SetProposalLifetime changes the voting window, in blocks, granted to
// proposals created from now on. Existing proposals keep their expiry.
func (a *Admin) SetProposalLifetime(caller common.Address, blocks uint64) error {
	if err := a.authorize(caller); err != nil {
		return err
	}
	if blocks == 0 {
		return ErrInvalidProposalLifetime
	}

	e := a.engine
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lifetime = blocks
	e.events.Emit(ProposalLifetimeChanged{Lifetime: blocks})
	e.log.Info("proposal lifetime changed", zap.Uint64("blocks", blocks))

	return nil
}
