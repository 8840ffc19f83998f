package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AddLiquidity deposits into a pool through the dex module, failing once
// block time passes the deadline. A zero deadline means no deadline.
//
// Errors: ErrDeadlineExpired, plus any dex liquidity error.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int, deadline int64) (math.Int, error) {
	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.ZeroInt(), err
	}
	return k.dexKeeper.AddLiquidity(ctx, provider, poolID, amountA, amountB)
}

// RemoveLiquidity burns pool shares through the dex module, failing once
// block time passes the deadline. A zero deadline means no deadline.
//
// Errors: ErrDeadlineExpired, plus any dex liquidity error.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int, deadline int64) (math.Int, math.Int, error) {
	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	return k.dexKeeper.RemoveLiquidity(ctx, provider, poolID, shares)
}
