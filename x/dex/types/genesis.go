package types

import (
	"fmt"
)

// GenesisState is the dex module's exported state.
type GenesisState struct {
	Params     Params     `json:"params"`
	NextPoolId uint64     `json:"next_pool_id"`
	Pools      []Pool     `json:"pools"`
	Positions  []Position `json:"positions"`
}

// DefaultGenesis returns the default genesis state for the dex module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		NextPoolId: 1,
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextPoolId == 0 {
		return ErrInvalidInput.Wrap("next pool id must be positive")
	}

	seen := make(map[uint64]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("pool %d: %w", pool.Id, err)
		}
		if _, ok := seen[pool.Id]; ok {
			return ErrPoolAlreadyExists.Wrapf("duplicate pool id %d in genesis", pool.Id)
		}
		if pool.Id >= gs.NextPoolId {
			return ErrInvalidInput.Wrapf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		seen[pool.Id] = struct{}{}
	}

	for _, pos := range gs.Positions {
		if _, ok := seen[pos.PoolId]; !ok {
			return ErrPoolNotFound.Wrapf("position references unknown pool %d", pos.PoolId)
		}
		if pos.Shares.IsNil() || !pos.Shares.IsPositive() {
			return ErrInsufficientShares.Wrapf("position in pool %d has non-positive shares", pos.PoolId)
		}
		if pos.Provider == "" {
			return ErrInvalidAddress.Wrap("position provider cannot be empty")
		}
	}

	return nil
}
