package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/dex/types"
)

// GetLiquidity retrieves a provider's share position in a pool
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.LiquidityKey(poolID, provider))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return shares, nil
}

// SetLiquidity sets a provider's share position in a pool, deleting the
// record when shares reach zero.
func (k Keeper) SetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress, shares math.Int) error {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(types.LiquidityKey(poolID, provider))
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(types.LiquidityKey(poolID, provider), bz)
	return nil
}

// AddLiquidity deposits tokens into a pool and mints shares.
//
// The first deposit sets the pool price and mints geometric-mean shares,
// permanently locking MinimumLiquidityShares to the module account. Later
// deposits are pro rata: the deposit is trimmed to the pool ratio and shares
// are min(amountA*S/reserveA, amountB*S/reserveB), floored.
//
// Errors: ErrPoolNotFound, ErrPoolLocked, ErrInvalidInput,
// ErrInsufficientLiquidityMinted, ErrInvalidPoolState, ErrOverflow,
// hook errors.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error) {
	if amountA.IsNil() || amountB.IsNil() || !amountA.IsPositive() || !amountB.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidInput.Wrap("liquidity amounts must be positive")
	}
	if provider.Empty() {
		return math.ZeroInt(), types.ErrZeroAddress.Wrap("provider")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}

	release, err := k.acquirePoolLock(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	defer release()

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.dispatchHook(sdkCtx, types.HookBeforeModifyPosition, *pool, nil); err != nil {
		return math.ZeroInt(), err
	}

	if !pool.Initialized() {
		return k.addInitialLiquidity(ctx, provider, pool, amountA, amountB)
	}

	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
	}

	// Trim the deposit to the pool ratio so no side is overpaid.
	numeratorB, err := checkedMul(amountA, pool.ReserveB)
	if err != nil {
		return math.ZeroInt(), err
	}
	optimalB, err := checkedQuo(numeratorB, pool.ReserveA)
	if err != nil {
		return math.ZeroInt(), err
	}

	finalA, finalB := amountA, amountB
	if optimalB.LTE(amountB) {
		finalB = optimalB
	} else {
		numeratorA, err := checkedMul(amountB, pool.ReserveA)
		if err != nil {
			return math.ZeroInt(), err
		}
		finalA, err = checkedQuo(numeratorA, pool.ReserveB)
		if err != nil {
			return math.ZeroInt(), err
		}
	}

	shares, err := k.calculateAddLiquidityShares(finalA, finalB, pool.ReserveA, pool.ReserveB, pool.TotalShares)
	if err != nil {
		return math.ZeroInt(), err
	}
	if shares.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidityMinted.Wrap("contribution too small")
	}

	newReserveA, err := checkedAdd(pool.ReserveA, finalA)
	if err != nil {
		return math.ZeroInt(), err
	}
	newReserveB, err := checkedAdd(pool.ReserveB, finalB)
	if err != nil {
		return math.ZeroInt(), err
	}
	newTotalShares, err := checkedAdd(pool.TotalShares, shares)
	if err != nil {
		return math.ZeroInt(), err
	}

	coins := sdk.NewCoins(sdk.NewCoin(pool.TokenA, finalA), sdk.NewCoin(pool.TokenB, finalB))
	if err := k.bankKeeper.SendCoins(ctx, provider, k.GetModuleAddress(), coins); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("deposit transfer failed: %v", err)
	}

	pool.ReserveA = newReserveA
	pool.ReserveB = newReserveB
	pool.TotalShares = newTotalShares
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	current, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return math.ZeroInt(), err
	}
	if err := k.SetLiquidity(ctx, poolID, provider, current.Add(shares)); err != nil {
		return math.ZeroInt(), err
	}

	delta := &types.StateDelta{PoolId: poolID, DeltaA: finalA, DeltaB: finalB, SharesDelta: shares}
	if err := k.dispatchHook(sdkCtx, types.HookAfterModifyPosition, *pool, delta); err != nil {
		return math.ZeroInt(), err
	}

	k.emitLiquidityEvent(sdkCtx, types.EventTypeAddLiquidity, poolID, provider, finalA, finalB, shares)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", poolID)
		k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, pool.TokenA).Add(float64(finalA.Int64()))
		k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, pool.TokenB).Add(float64(finalB.Int64()))
	}

	return shares, nil
}

// addInitialLiquidity funds an empty pool. Total shares are the exact integer
// square root of the deposit product; MinimumLiquidityShares of those are
// minted to the module account and can never be burned.
func (k Keeper) addInitialLiquidity(ctx context.Context, provider sdk.AccAddress, pool *types.Pool, amountA, amountB math.Int) (math.Int, error) {
	if !pool.TotalShares.IsZero() {
		return math.ZeroInt(), types.ErrInvalidPoolState.Wrap("pool already initialized")
	}

	product, err := checkedMul(amountA, amountB)
	if err != nil {
		return math.ZeroInt(), err
	}

	totalShares := intSqrt(product)
	locked := types.MinimumLiquidityShares()
	minted := totalShares.Sub(locked)
	if !minted.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientLiquidityMinted.Wrapf(
			"geometric mean %s does not exceed locked minimum %s", totalShares, locked)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if totalShares.LT(params.MinInitialDeposit) {
		return math.ZeroInt(), types.ErrInsufficientLiquidityMinted.Wrapf(
			"initial deposit %s below minimum %s", totalShares, params.MinInitialDeposit)
	}

	coins := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if err := k.bankKeeper.SendCoins(ctx, provider, k.GetModuleAddress(), coins); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("deposit transfer failed: %v", err)
	}

	pool.ReserveA = amountA
	pool.ReserveB = amountB
	pool.TotalShares = totalShares
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	if err := k.SetLiquidity(ctx, pool.Id, provider, minted); err != nil {
		return math.ZeroInt(), err
	}
	if err := k.SetLiquidity(ctx, pool.Id, k.GetModuleAddress(), locked); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	delta := &types.StateDelta{PoolId: pool.Id, DeltaA: amountA, DeltaB: amountB, SharesDelta: minted}
	if err := k.dispatchHook(sdkCtx, types.HookAfterModifyPosition, *pool, delta); err != nil {
		return math.ZeroInt(), err
	}

	k.emitLiquidityEvent(sdkCtx, types.EventTypeAddLiquidity, pool.Id, provider, amountA, amountB, minted)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", pool.Id)
		k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, pool.TokenA).Add(float64(amountA.Int64()))
		k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, pool.TokenB).Add(float64(amountB.Int64()))
	}

	return minted, nil
}

// RemoveLiquidity burns shares for a pro-rata slice of both reserves.
// All division floors, so burning can only round against the withdrawer.
//
// Errors: ErrInsufficientLiquidityBurned, ErrPoolNotFound, ErrPoolLocked,
// ErrInsufficientShares, ErrInvalidPoolState, ErrOverflow, hook errors.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error) {
	zero := math.ZeroInt()

	if shares.IsNil() || !shares.IsPositive() {
		return zero, zero, types.ErrInsufficientLiquidityBurned.Wrap("shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return zero, zero, err
	}
	if pool.TotalShares.IsZero() {
		return zero, zero, types.ErrPoolNotInitialized.Wrapf("pool %d", poolID)
	}
	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return zero, zero, types.ErrInvalidPoolState.Wrap("pool has shares but zero reserves")
	}

	release, err := k.acquirePoolLock(ctx, poolID)
	if err != nil {
		return zero, zero, err
	}
	defer release()

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.dispatchHook(sdkCtx, types.HookBeforeModifyPosition, *pool, nil); err != nil {
		return zero, zero, err
	}

	userShares, err := k.GetLiquidity(ctx, poolID, provider)
	if err != nil {
		return zero, zero, err
	}
	if shares.GT(userShares) {
		return zero, zero, types.ErrInsufficientShares.Wrapf("have %s, need %s", userShares, shares)
	}

	amountA, amountB, err := k.calculateRemoveLiquidityAmounts(shares, pool.ReserveA, pool.ReserveB, pool.TotalShares)
	if err != nil {
		return zero, zero, err
	}
	if amountA.IsZero() || amountB.IsZero() {
		return zero, zero, types.ErrInsufficientLiquidityBurned.Wrap("withdrawal amounts round to zero")
	}

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return zero, zero, err
	}

	if err := k.SetLiquidity(ctx, poolID, provider, userShares.Sub(shares)); err != nil {
		return zero, zero, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(pool.TokenA, amountA), sdk.NewCoin(pool.TokenB, amountB))
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), provider, coins); err != nil {
		return zero, zero, types.ErrInsufficientLiquidity.Wrapf("withdrawal transfer failed: %v", err)
	}

	delta := &types.StateDelta{PoolId: poolID, DeltaA: amountA.Neg(), DeltaB: amountB.Neg(), SharesDelta: shares.Neg()}
	if err := k.dispatchHook(sdkCtx, types.HookAfterModifyPosition, *pool, delta); err != nil {
		return zero, zero, err
	}

	k.emitLiquidityEvent(sdkCtx, types.EventTypeRemoveLiquidity, poolID, provider, amountA, amountB, shares)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", poolID)
		k.metrics.LiquidityRemoved.WithLabelValues(poolIDStr, pool.TokenA).Add(float64(amountA.Int64()))
		k.metrics.LiquidityRemoved.WithLabelValues(poolIDStr, pool.TokenB).Add(float64(amountB.Int64()))
	}

	return amountA, amountB, nil
}

// calculateAddLiquidityShares returns min(amountA*S/reserveA, amountB*S/reserveB).
func (k Keeper) calculateAddLiquidityShares(amountA, amountB, reserveA, reserveB, totalShares math.Int) (math.Int, error) {
	numeratorA, err := checkedMul(amountA, totalShares)
	if err != nil {
		return math.ZeroInt(), err
	}
	sharesA, err := checkedQuo(numeratorA, reserveA)
	if err != nil {
		return math.ZeroInt(), err
	}

	numeratorB, err := checkedMul(amountB, totalShares)
	if err != nil {
		return math.ZeroInt(), err
	}
	sharesB, err := checkedQuo(numeratorB, reserveB)
	if err != nil {
		return math.ZeroInt(), err
	}

	return math.MinInt(sharesA, sharesB), nil
}

// calculateRemoveLiquidityAmounts returns the floored pro-rata reserve slices.
func (k Keeper) calculateRemoveLiquidityAmounts(shares, reserveA, reserveB, totalShares math.Int) (math.Int, math.Int, error) {
	numeratorA, err := checkedMul(shares, reserveA)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	amountA, err := checkedQuo(numeratorA, totalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	numeratorB, err := checkedMul(shares, reserveB)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	amountB, err := checkedQuo(numeratorB, totalShares)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	return amountA, amountB, nil
}

func (k Keeper) emitLiquidityEvent(sdkCtx sdk.Context, eventType string, poolID uint64, provider sdk.AccAddress, amountA, amountB, shares math.Int) {
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)
}

// IterateLiquidityByPool iterates over all positions in a pool.
func (k Keeper) IterateLiquidityByPool(ctx context.Context, poolID uint64, cb func(provider sdk.AccAddress, shares math.Int) (stop bool)) error {
	store := k.getStore(ctx)
	prefix := types.LiquidityKeyByPoolPrefix(poolID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return err
		}

		provider := sdk.AccAddress(iterator.Key()[len(prefix):])
		if cb(provider, shares) {
			break
		}
	}
	return nil
}
