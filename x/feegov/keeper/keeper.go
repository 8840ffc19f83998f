package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/meridian-chain/meridian/x/feegov/types"
)

// Keeper of the feegov store
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	authority  string
}

// NewKeeper creates a new feegov Keeper instance
func NewKeeper(key storetypes.StoreKey, bankKeeper types.BankKeeper, authority string) Keeper {
	return Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		authority:  authority,
	}
}

// GetAuthority returns the address allowed to perform privileged operations.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the feegov module account address. Distributed
// revenue flows through it; any remainder from bps rounding stays there as
// treasury.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// getStore returns the KVStore for the feegov module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetParams returns the current feegov module parameters
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := params.Unmarshal(bz); err != nil {
		return types.Params{}, err
	}
	return params, nil
}

// SetParams stores the feegov module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := params.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// checkAuthority verifies the signer is the module authority
func (k Keeper) checkAuthority(signer string) error {
	if signer != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, signer)
	}
	return nil
}
