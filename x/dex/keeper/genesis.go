package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/dex/types"
)

// InitGenesis initializes the dex module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid dex genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetNextPoolID(ctx, genState.NextPoolId)

	for i := range genState.Pools {
		pool := genState.Pools[i]
		if err := k.SetPool(ctx, &pool); err != nil {
			return err
		}
		if err := k.SetPoolByTokens(ctx, pool.TokenA, pool.TokenB, pool.Id); err != nil {
			return err
		}
	}

	for _, pos := range genState.Positions {
		provider, err := sdk.AccAddressFromBech32(pos.Provider)
		if err != nil {
			return types.ErrInvalidAddress.Wrapf("position provider %q: %v", pos.Provider, err)
		}
		if err := k.SetLiquidity(ctx, pos.PoolId, provider, pos.Shares); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the dex module's exported state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{
		Params:     params,
		NextPoolId: k.PeekNextPoolID(ctx),
	}

	err = k.IteratePools(ctx, func(pool types.Pool) bool {
		genState.Pools = append(genState.Pools, pool)
		return false
	})
	if err != nil {
		return nil, err
	}

	for _, pool := range genState.Pools {
		err = k.IterateLiquidityByPool(ctx, pool.Id, func(provider sdk.AccAddress, shares math.Int) bool {
			genState.Positions = append(genState.Positions, types.Position{
				PoolId:   pool.Id,
				Provider: provider.String(),
				Shares:   shares,
			})
			return false
		})
		if err != nil {
			return nil, err
		}
	}

	return genState, nil
}
