package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

// Keeper of the router store. Relay adapters are registered at application
// setup, one per reachable destination chain.
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	dexKeeper  types.DexKeeper
	feeKeeper  types.FeeKeeper
	adapters   map[string]types.RelayAdapter
	localChain string
	authority  string
}

// NewKeeper creates a new router Keeper instance. localChain names this
// chain in route source/destination fields.
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	dexKeeper types.DexKeeper,
	feeKeeper types.FeeKeeper,
	localChain string,
	authority string,
) Keeper {
	return Keeper{
		storeKey:   key,
		bankKeeper: bankKeeper,
		dexKeeper:  dexKeeper,
		feeKeeper:  feeKeeper,
		adapters:   make(map[string]types.RelayAdapter),
		localChain: localChain,
		authority:  authority,
	}
}

// RegisterAdapter wires a relay adapter for a destination chain
func (k Keeper) RegisterAdapter(chainID string, adapter types.RelayAdapter) error {
	if chainID == "" {
		return types.ErrInvalidInput.Wrap("chain id cannot be empty")
	}
	if adapter == nil {
		return types.ErrInvalidInput.Wrap("adapter cannot be nil")
	}
	if _, ok := k.adapters[chainID]; ok {
		return types.ErrAdapterExists.Wrap(chainID)
	}
	k.adapters[chainID] = adapter
	return nil
}

// GetAdapter returns the relay adapter serving a destination chain
func (k Keeper) GetAdapter(chainID string) (types.RelayAdapter, bool) {
	adapter, ok := k.adapters[chainID]
	return adapter, ok
}

// LocalChain returns this chain's identifier
func (k Keeper) LocalChain() string {
	return k.localChain
}

// GetAuthority returns the address allowed to perform privileged operations.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the router module account address, which escrows
// in-flight route funds.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// getStore returns the KVStore for the router module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetNextRouteID returns the next route ID and increments the counter
func (k Keeper) GetNextRouteID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.RouteCountKey)

	var routeID uint64
	if bz == nil {
		routeID = 1
	} else {
		routeID = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, routeID+1)
	store.Set(types.RouteCountKey, next)

	return routeID
}

// PeekNextRouteID returns the next route ID without consuming it.
func (k Keeper) PeekNextRouteID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.RouteCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextRouteID sets the route ID counter, used on genesis import
func (k Keeper) SetNextRouteID(ctx context.Context, routeID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, routeID)
	store.Set(types.RouteCountKey, bz)
}

// GetRoute retrieves a route by ID
func (k Keeper) GetRoute(ctx context.Context, routeID uint64) (*types.Route, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.RouteKey(routeID))
	if bz == nil {
		return nil, types.ErrRouteNotFound.Wrapf("route %d", routeID)
	}

	var route types.Route
	if err := route.Unmarshal(bz); err != nil {
		return nil, fmt.Errorf("GetRoute: unmarshal route %d: %w", routeID, err)
	}
	return &route, nil
}

// SetRoute stores a route and maintains the handle index
func (k Keeper) SetRoute(ctx context.Context, route *types.Route) error {
	bz, err := route.Marshal()
	if err != nil {
		return fmt.Errorf("SetRoute: marshal route %d: %w", route.Id, err)
	}

	store := k.getStore(ctx)
	store.Set(types.RouteKey(route.Id), bz)

	for _, hop := range route.Hops {
		if hop.Handle != "" {
			idBz := make([]byte, 8)
			binary.BigEndian.PutUint64(idBz, route.Id)
			store.Set(types.RouteByHandleKey(hop.Handle), idBz)
		}
	}
	return nil
}

// GetRouteByHandle resolves a relay message handle to its route
func (k Keeper) GetRouteByHandle(ctx context.Context, handle string) (*types.Route, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.RouteByHandleKey(handle))
	if bz == nil {
		return nil, types.ErrRouteNotFound.Wrapf("handle %q", handle)
	}
	return k.GetRoute(ctx, binary.BigEndian.Uint64(bz))
}

// IterateRoutes iterates over all routes
func (k Keeper) IterateRoutes(ctx context.Context, cb func(route types.Route) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.RouteKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var route types.Route
		if err := route.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(route) {
			break
		}
	}
	return nil
}

// checkDeadline fails with ErrDeadlineExpired once block time passes the
// caller's deadline. A zero deadline means no deadline.
func (k Keeper) checkDeadline(ctx context.Context, deadline int64) error {
	if deadline == 0 {
		return nil
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if now := sdkCtx.BlockTime().Unix(); now > deadline {
		return types.ErrDeadlineExpired.Wrapf("deadline %d, now %d", deadline, now)
	}
	return nil
}
