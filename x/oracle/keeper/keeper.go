package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Keeper of the oracle store. The oracle is write-only for the trading
// engine and read-only for everyone else; it holds no tokens and has no
// messages of its own.
type Keeper struct {
	storeKey storetypes.StoreKey
}

// NewKeeper creates a new oracle Keeper instance
func NewKeeper(key storetypes.StoreKey) Keeper {
	return Keeper{storeKey: key}
}

// getStore returns the KVStore for the oracle module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
