package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/dex/types"
)

// MaxIterationLimit bounds unbounded pool queries to keep iteration cheap.
const MaxIterationLimit = 100

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, poolID+1)
	store.Set(types.PoolCountKey, next)

	return poolID
}

// PeekNextPoolID returns the next pool ID without consuming it.
func (k Keeper) PeekNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextPoolID sets the pool ID counter, used on genesis import
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(types.PoolCountKey, bz)
}

// CreatePool registers a new, empty constant-product pool for the token pair.
// Tokens are normalized to canonical order. The pool holds no reserves until
// the first AddLiquidity call funds it. A non-empty hookID attaches a
// registered hook to the pool's lifecycle points.
//
// Errors: ErrIdenticalTokens, ErrInvalidInput, ErrInvalidFee,
// ErrPoolAlreadyExists, ErrHookNotRegistered, ErrHookFailed.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, feePpm uint64, hookID string) (*types.Pool, error) {
	if tokenA == tokenB {
		return nil, types.ErrIdenticalTokens
	}
	if tokenA == "" || tokenB == "" {
		return nil, types.ErrInvalidInput.Wrap("token denoms cannot be empty")
	}
	if creator.Empty() {
		return nil, types.ErrZeroAddress.Wrap("creator")
	}

	tokenA, tokenB = types.OrderTokens(tokenA, tokenB)

	if _, err := k.GetPoolByTokens(ctx, tokenA, tokenB); err == nil {
		return nil, types.ErrPoolAlreadyExists.Wrapf("pair %s/%s", tokenA, tokenB)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	if feePpm == 0 {
		feePpm = params.DefaultFeePpm
	}
	if k.feeKeeper != nil {
		if err := k.feeKeeper.ValidateFee(ctx, feePpm); err != nil {
			return nil, types.ErrInvalidFee.Wrapf("fee %d ppm: %v", feePpm, err)
		}
	}

	pool := types.Pool{
		Id:          k.GetNextPoolID(ctx),
		TokenA:      tokenA,
		TokenB:      tokenB,
		FeePpm:      feePpm,
		ReserveA:    math.ZeroInt(),
		ReserveB:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
		HookId:      hookID,
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.dispatchHook(sdkCtx, types.HookBeforeInitialize, pool, nil); err != nil {
		return nil, err
	}

	if err := k.SetPool(ctx, &pool); err != nil {
		return nil, err
	}
	if err := k.SetPoolByTokens(ctx, tokenA, tokenB, pool.Id); err != nil {
		return nil, err
	}

	if err := k.dispatchHook(sdkCtx, types.HookAfterInitialize, pool, &types.StateDelta{PoolId: pool.Id}); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyFeePpm, fmt.Sprintf("%d", feePpm)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.PoolsTotal.Inc()
	}

	return &pool, nil
}

// GetPool retrieves a pool by its unique numeric ID.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey(poolID))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %d", poolID)
	}

	var pool types.Pool
	if err := pool.Unmarshal(bz); err != nil {
		return nil, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return &pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool *types.Pool) error {
	bz, err := pool.Marshal()
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	k.getStore(ctx).Set(types.PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByTokens retrieves a pool by its token pair (order-independent).
func (k Keeper) GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (*types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolByTokensKey(tokenA, tokenB))
	if bz == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pair %s/%s", tokenA, tokenB)
	}
	return k.GetPool(ctx, binary.BigEndian.Uint64(bz))
}

// SetPoolByTokens indexes a pool by its token pair
func (k Keeper) SetPoolByTokens(ctx context.Context, tokenA, tokenB string, poolID uint64) error {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(types.PoolByTokensKey(tokenA, tokenB), bz)
	return nil
}

// IteratePools iterates over all pools until the callback returns true.
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := pool.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetPools returns up to MaxIterationLimit pools.
func (k Keeper) GetPools(ctx context.Context) ([]types.Pool, error) {
	pools := make([]types.Pool, 0)
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return len(pools) >= MaxIterationLimit
	})
	return pools, err
}

// Donate transfers tokens into a pool's reserves without minting shares.
// The donation accrues pro rata to existing share holders and strictly grows
// the constant product.
//
// Errors: ErrPoolNotFound, ErrPoolNotInitialized, ErrPoolLocked,
// ErrInvalidInput, ErrOverflow, hook errors.
func (k Keeper) Donate(ctx context.Context, donor sdk.AccAddress, poolID uint64, amountA, amountB math.Int) error {
	if amountA.IsNil() || amountB.IsNil() || amountA.IsNegative() || amountB.IsNegative() {
		return types.ErrInvalidInput.Wrap("donation amounts cannot be negative")
	}
	if amountA.IsZero() && amountB.IsZero() {
		return types.ErrInvalidInput.Wrap("donation must include at least one token")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return err
	}
	if !pool.Initialized() {
		return types.ErrPoolNotInitialized.Wrapf("pool %d", poolID)
	}

	release, err := k.acquirePoolLock(ctx, poolID)
	if err != nil {
		return err
	}
	defer release()

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.dispatchHook(sdkCtx, types.HookBeforeDonate, *pool, nil); err != nil {
		return err
	}

	newReserveA, err := checkedAdd(pool.ReserveA, amountA)
	if err != nil {
		return err
	}
	newReserveB, err := checkedAdd(pool.ReserveB, amountB)
	if err != nil {
		return err
	}

	coins := sdk.NewCoins()
	if amountA.IsPositive() {
		coins = coins.Add(sdk.NewCoin(pool.TokenA, amountA))
	}
	if amountB.IsPositive() {
		coins = coins.Add(sdk.NewCoin(pool.TokenB, amountB))
	}
	if err := k.bankKeeper.SendCoins(ctx, donor, k.GetModuleAddress(), coins); err != nil {
		return types.ErrInsufficientLiquidity.Wrapf("donation transfer failed: %v", err)
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	delta := &types.StateDelta{PoolId: poolID, DeltaA: amountA, DeltaB: amountB}
	if err := k.dispatchHook(sdkCtx, types.HookAfterDonate, *pool, delta); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDonate,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, donor.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		),
	)

	return nil
}
