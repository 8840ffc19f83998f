package keeper

import (
	"context"

	"github.com/meridian-chain/meridian/x/router/types"
)

// InitGenesis initializes the router module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	k.SetPort(ctx, genState.PortId)
	k.SetNextRouteID(ctx, genState.NextRouteId)

	for i := range genState.Routes {
		if err := k.SetRoute(ctx, &genState.Routes[i]); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis exports the router module state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genState := &types.GenesisState{
		PortId:      k.GetPort(ctx),
		NextRouteId: k.PeekNextRouteID(ctx),
	}

	err := k.IterateRoutes(ctx, func(route types.Route) bool {
		genState.Routes = append(genState.Routes, route)
		return false
	})
	if err != nil {
		return nil, err
	}
	return genState, nil
}

// SetPort stores the bound IBC port identifier
func (k Keeper) SetPort(ctx context.Context, portID string) {
	k.getStore(ctx).Set(types.PortKey, []byte(portID))
}

// GetPort returns the bound IBC port identifier
func (k Keeper) GetPort(ctx context.Context) string {
	bz := k.getStore(ctx).Get(types.PortKey)
	if bz == nil {
		return types.PortID
	}
	return string(bz)
}
