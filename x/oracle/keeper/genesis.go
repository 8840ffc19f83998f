package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// InitGenesis initializes the oracle module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid oracle genesis: %w", err)
	}

	for _, acc := range genState.Accumulators {
		if err := k.SetAccumulator(ctx, acc.PoolId, acc.Accumulator); err != nil {
			return err
		}
	}
	for _, obs := range genState.Observations {
		if err := k.SetObservation(ctx, obs.PoolId, obs.Observation); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the oracle module's exported state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := &types.GenesisState{}
	store := k.getStore(ctx)

	accIter := storetypes.KVStorePrefixIterator(store, types.LatestKeyPrefix)
	defer accIter.Close()
	for ; accIter.Valid(); accIter.Next() {
		var acc types.Accumulator
		if err := acc.Unmarshal(accIter.Value()); err != nil {
			return nil, err
		}
		poolID := sdk.BigEndianToUint64(accIter.Key()[len(types.LatestKeyPrefix):])
		genState.Accumulators = append(genState.Accumulators, types.PoolAccumulator{
			PoolId:      poolID,
			Accumulator: acc,
		})
	}

	obsIter := storetypes.KVStorePrefixIterator(store, types.ObservationKeyPrefix)
	defer obsIter.Close()
	for ; obsIter.Valid(); obsIter.Next() {
		var obs types.Observation
		if err := obs.Unmarshal(obsIter.Value()); err != nil {
			return nil, err
		}
		poolID := sdk.BigEndianToUint64(obsIter.Key()[len(types.ObservationKeyPrefix) : len(types.ObservationKeyPrefix)+8])
		genState.Observations = append(genState.Observations, types.PoolObservation{
			PoolId:      poolID,
			Observation: obs,
		})
	}

	return genState, nil
}
