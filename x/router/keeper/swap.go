package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

// SwapExactTokensForTokens swaps an exact input along a path of local pools,
// hop i's output feeding hop i+1's input. Only the final output is checked
// against amountOutMin; intermediate hops run unconstrained. The whole path
// either executes or the call fails and the host rolls everything back.
//
// Errors: ErrDeadlineExpired, ErrInvalidPath, ErrInsufficientOutput, plus
// any dex swap error.
func (k Keeper) SwapExactTokensForTokens(ctx context.Context, trader sdk.AccAddress, amountIn, amountOutMin math.Int, path []string, to sdk.AccAddress, deadline int64) (math.Int, error) {
	if err := k.checkDeadline(ctx, deadline); err != nil {
		return math.ZeroInt(), err
	}
	if err := types.ValidatePath(path); err != nil {
		return math.ZeroInt(), err
	}
	if to.Empty() {
		to = trader
	}

	current := amountIn
	for i := 0; i < len(path)-1; i++ {
		tokenIn, tokenOut := path[i], path[i+1]

		pool, err := k.dexKeeper.GetPoolByTokens(ctx, tokenIn, tokenOut)
		if err != nil {
			return math.ZeroInt(), types.ErrInvalidPath.Wrapf("no pool for %s/%s: %v", tokenIn, tokenOut, err)
		}

		// Intermediate hops pay out to the trader, the last hop to the
		// recipient.
		recipient := trader
		if i == len(path)-2 {
			recipient = to
		}

		current, err = k.dexKeeper.Swap(ctx, trader, pool.Id, tokenIn, current, math.ZeroInt(), recipient)
		if err != nil {
			return math.ZeroInt(), err
		}
	}

	if current.LT(amountOutMin) {
		return math.ZeroInt(), types.ErrInsufficientOutput.Wrapf("got %s, want at least %s", current, amountOutMin)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePathSwap,
			sdk.NewAttribute(types.AttributeKeySender, trader.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, path[0]),
			sdk.NewAttribute(types.AttributeKeyTokenOut, path[len(path)-1]),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, current.String()),
			sdk.NewAttribute("path", strings.Join(path, ",")),
		),
	)

	return current, nil
}

func (k Keeper) emitRouteEvent(sdkCtx sdk.Context, eventType string, route *types.Route) {
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyRouteID, fmt.Sprintf("%d", route.Id)),
			sdk.NewAttribute(types.AttributeKeySender, route.Sender),
			sdk.NewAttribute(types.AttributeKeyDstChain, route.DstChain),
			sdk.NewAttribute(types.AttributeKeyStatus, route.Status.String()),
		),
	)
}
