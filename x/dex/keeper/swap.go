package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/dex/types"
)

// Swap trades an exact amount of tokenIn for as much of the other token as
// the pool's curve yields after the ppm fee. The output is floored; the
// resulting constant product never decreases. Fails with ErrMinAmountOut when
// the output is below the caller's floor, leaving state untouched.
//
// Errors: ErrPoolNotFound, ErrPoolNotInitialized, ErrPoolLocked,
// ErrInvalidToken, ErrInvalidAmountIn, ErrZeroAddress, ErrMinAmountOut,
// ErrInsufficientLiquidity, ErrKInvariant, ErrOverflow, hook errors.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int, recipient sdk.AccAddress) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidAmountIn
	}
	if trader.Empty() {
		return math.ZeroInt(), types.ErrZeroAddress.Wrap("trader")
	}
	if recipient.Empty() {
		return math.ZeroInt(), types.ErrZeroAddress.Wrap("recipient")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	if !pool.HasToken(tokenIn) {
		return math.ZeroInt(), types.ErrInvalidToken.Wrapf("%s not in pool %d", tokenIn, poolID)
	}
	if !pool.Initialized() {
		return math.ZeroInt(), types.ErrPoolNotInitialized.Wrapf("pool %d", poolID)
	}

	release, err := k.acquirePoolLock(ctx, poolID)
	if err != nil {
		return math.ZeroInt(), err
	}
	defer release()

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := k.dispatchHook(sdkCtx, types.HookBeforeSwap, *pool, nil); err != nil {
		return math.ZeroInt(), err
	}

	tokenOut := pool.OtherToken(tokenIn)
	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if tokenIn == pool.TokenB {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}

	amountOut, err := k.calculateSwapOutput(amountIn, reserveIn, reserveOut, pool.FeePpm)
	if err != nil {
		return math.ZeroInt(), err
	}
	if amountOut.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("swap output rounds to zero")
	}
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}
	if amountOut.LT(minAmountOut) {
		return math.ZeroInt(), types.ErrMinAmountOut.Wrapf("got %s, want at least %s", amountOut, minAmountOut)
	}

	newReserveIn, err := checkedAdd(reserveIn, amountIn)
	if err != nil {
		return math.ZeroInt(), err
	}
	newReserveOut := reserveOut.Sub(amountOut)

	if err := k.verifyKInvariant(reserveIn, reserveOut, newReserveIn, newReserveOut); err != nil {
		return math.ZeroInt(), err
	}

	if err := k.bankKeeper.SendCoins(ctx, trader, k.GetModuleAddress(),
		sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("input transfer failed: %v", err)
	}
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), recipient,
		sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))); err != nil {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("output transfer failed: %v", err)
	}

	if tokenIn == pool.TokenA {
		pool.ReserveA, pool.ReserveB = newReserveIn, newReserveOut
	} else {
		pool.ReserveA, pool.ReserveB = newReserveOut, newReserveIn
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return math.ZeroInt(), err
	}

	k.observePrice(ctx, pool)

	delta := &types.StateDelta{
		PoolId:    poolID,
		TokenIn:   tokenIn,
		TokenOut:  tokenOut,
		AmountIn:  amountIn,
		AmountOut: amountOut,
	}
	if err := k.dispatchHook(sdkCtx, types.HookAfterSwap, *pool, delta); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		),
	)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", poolID)
		k.metrics.SwapsTotal.WithLabelValues(poolIDStr, tokenIn, tokenOut).Inc()
		k.metrics.SwapVolume.WithLabelValues(poolIDStr, tokenIn).Add(float64(amountIn.Int64()))
	}

	return amountOut, nil
}

// calculateSwapOutput applies the constant-product formula with a
// parts-per-million fee on the input:
//
//	out = in*(1e6-fee)*reserveOut / (reserveIn*1e6 + in*(1e6-fee))
//
// Division floors, so rounding always favors the pool.
func (k Keeper) calculateSwapOutput(amountIn, reserveIn, reserveOut math.Int, feePpm uint64) (math.Int, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("empty reserves")
	}
	if feePpm >= types.FeeDenominator {
		return math.ZeroInt(), types.ErrInvalidFee.Wrapf("fee %d ppm consumes the entire input", feePpm)
	}

	feeFactor := math.NewInt(int64(types.FeeDenominator - feePpm))
	denomFactor := math.NewInt(int64(types.FeeDenominator))

	inWithFee, err := checkedMul(amountIn, feeFactor)
	if err != nil {
		return math.ZeroInt(), err
	}
	numerator, err := checkedMul(inWithFee, reserveOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	scaledReserve, err := checkedMul(reserveIn, denomFactor)
	if err != nil {
		return math.ZeroInt(), err
	}
	denominator, err := checkedAdd(scaledReserve, inWithFee)
	if err != nil {
		return math.ZeroInt(), err
	}
	return checkedQuo(numerator, denominator)
}

// verifyKInvariant checks that reserves after a swap keep the constant
// product at least as large as before. Floored output makes this hold for
// every correct swap; a violation means corrupted math and aborts the trade.
func (k Keeper) verifyKInvariant(oldIn, oldOut, newIn, newOut math.Int) error {
	oldK, err := checkedMul(oldIn, oldOut)
	if err != nil {
		return err
	}
	newK, err := checkedMul(newIn, newOut)
	if err != nil {
		return err
	}
	if newK.LT(oldK) {
		return types.ErrKInvariant.Wrapf("k decreased from %s to %s", oldK, newK)
	}
	return nil
}

// GetSpotPrice returns the instantaneous price of tokenIn denominated in the
// pool's other token, ignoring fees.
func (k Keeper) GetSpotPrice(ctx context.Context, poolID uint64, tokenIn string) (math.LegacyDec, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if !pool.HasToken(tokenIn) {
		return math.LegacyZeroDec(), types.ErrInvalidToken.Wrapf("%s not in pool %d", tokenIn, poolID)
	}
	if !pool.Initialized() || pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return math.LegacyZeroDec(), types.ErrPoolNotInitialized.Wrapf("pool %d", poolID)
	}

	if tokenIn == pool.TokenA {
		return math.LegacyNewDecFromInt(pool.ReserveB).QuoInt(pool.ReserveA), nil
	}
	return math.LegacyNewDecFromInt(pool.ReserveA).QuoInt(pool.ReserveB), nil
}

// observePrice feeds the post-swap spot price (tokenB per tokenA) to the
// oracle. Observation failures are logged, never propagated: a broken oracle
// must not block trading.
func (k Keeper) observePrice(ctx context.Context, pool *types.Pool) {
	if k.oracleKeeper == nil || pool.ReserveA.IsZero() {
		return
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	price := math.LegacyNewDecFromInt(pool.ReserveB).QuoInt(pool.ReserveA)
	if err := k.oracleKeeper.Update(ctx, pool.Id, price, sdkCtx.BlockTime().Unix()); err != nil {
		sdkCtx.Logger().Error("price observation failed", "pool_id", pool.Id, "error", err)
	}
}
