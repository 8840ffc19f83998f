package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/meridian-chain/meridian/x/dex/types"
)

type registeredHook struct {
	hook  types.PoolHook
	perms types.HookPermissions
}

// Keeper of the dex store
type Keeper struct {
	storeKey     storetypes.StoreKey
	bankKeeper   types.BankKeeper
	feeKeeper    types.FeeKeeper
	oracleKeeper types.OracleKeeper
	hooks        map[string]registeredHook
	metrics      *Metrics
	authority    string
}

// NewKeeper creates a new dex Keeper instance. The fee and oracle keepers are
// optional; a nil fee keeper skips tier validation and a nil oracle keeper
// disables price observations.
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	feeKeeper types.FeeKeeper,
	oracleKeeper types.OracleKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:     key,
		bankKeeper:   bankKeeper,
		feeKeeper:    feeKeeper,
		oracleKeeper: oracleKeeper,
		hooks:        make(map[string]registeredHook),
		authority:    authority,
	}
}

// WithMetrics attaches a prometheus metrics set to the keeper.
func (k Keeper) WithMetrics(m *Metrics) Keeper {
	k.metrics = m
	return k
}

// GetAuthority returns the address allowed to perform privileged operations.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the dex module account address. The module account
// escrows pool reserves and owns the permanently locked minimum liquidity.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// getStore returns the KVStore for the dex module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetParams returns the current dex module parameters
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

// SetParams stores the dex module parameters
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
