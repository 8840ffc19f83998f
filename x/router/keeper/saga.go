package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

// OnDeliveryResult records the terminal outcome of a dispatched route. The
// relay layer calls it when the destination chain acknowledges or rejects
// the message identified by handle. Delivered routes keep their escrow as
// backing for the remote payout; failed routes become refundable.
func (k Keeper) OnDeliveryResult(ctx context.Context, handle string, delivered bool) error {
	route, err := k.GetRouteByHandle(ctx, handle)
	if err != nil {
		return err
	}
	if route.Status != types.RouteDispatched {
		return types.ErrInvalidRouteState.Wrapf("route %d is %s, want %s",
			route.Id, route.Status, types.RouteDispatched)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if delivered {
		route.Status = types.RouteDelivered
		k.emitRouteEvent(sdkCtx, types.EventTypeRouteDelivered, route)
	} else {
		route.Status = types.RouteFailed
		k.emitRouteEvent(sdkCtx, types.EventTypeRouteFailed, route)
	}
	return k.SetRoute(ctx, route)
}

// SyncDeliveryStatus polls the relay adapter for a dispatched route and
// applies a terminal result if one is known. A still-pending delivery
// leaves the route untouched.
func (k Keeper) SyncDeliveryStatus(ctx context.Context, routeID uint64) (*types.Route, error) {
	route, err := k.GetRoute(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route.Status != types.RouteDispatched {
		return route, nil
	}
	if len(route.Hops) == 0 {
		return nil, types.ErrInvalidRouteState.Wrapf("route %d dispatched without hops", route.Id)
	}

	adapter, ok := k.GetAdapter(route.DstChain)
	if !ok {
		return nil, types.ErrInvalidDstChain.Wrap(route.DstChain)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	handle := route.Hops[len(route.Hops)-1].Handle
	status, err := adapter.QueryDelivery(sdkCtx, handle)
	if err != nil {
		return nil, types.ErrBridgeOperationFailed.Wrapf("query delivery %q: %v", handle, err)
	}

	switch status {
	case types.DeliveryConfirmed:
		if err := k.OnDeliveryResult(ctx, handle, true); err != nil {
			return nil, err
		}
	case types.DeliveryFailed:
		if err := k.OnDeliveryResult(ctx, handle, false); err != nil {
			return nil, err
		}
	default:
		return route, nil
	}
	return k.GetRoute(ctx, routeID)
}

// OnRecvSwapPayload handles a counterpart router's inbound swap payload.
// The value settlement rides the token transfer channel; the router's part
// is to validate the instruction and surface it for local execution.
func (k Keeper) OnRecvSwapPayload(ctx context.Context, payload types.SwapPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(payload.Recipient); err != nil {
		return types.ErrZeroAddress.Wrapf("recipient %q: %v", payload.Recipient, err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePacketReceive,
			sdk.NewAttribute(types.AttributeKeyRecipient, payload.Recipient),
			sdk.NewAttribute(types.AttributeKeyTokenOut, payload.TokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountOut, payload.AmountOutMin.String()),
		),
	)
	return nil
}

// RefundRoute returns the escrow of a failed route to its sender. Only the
// original sender may claim, only from the Failed state, and only once:
// the route moves to Refunded as part of the same call.
func (k Keeper) RefundRoute(ctx context.Context, sender sdk.AccAddress, routeID uint64) (math.Int, error) {
	route, err := k.GetRoute(ctx, routeID)
	if err != nil {
		return math.ZeroInt(), err
	}
	if route.Sender != sender.String() {
		return math.ZeroInt(), types.ErrInvalidInput.Wrapf("route %d belongs to %s", route.Id, route.Sender)
	}
	if route.Status != types.RouteFailed {
		return math.ZeroInt(), types.ErrInvalidRouteState.Wrapf("route %d is %s, want %s",
			route.Id, route.Status, types.RouteFailed)
	}

	refund := sdk.NewCoin(route.EscrowToken, route.EscrowAmount)
	if err := k.bankKeeper.SendCoins(ctx, k.GetModuleAddress(), sender, sdk.NewCoins(refund)); err != nil {
		return math.ZeroInt(), err
	}

	route.Status = types.RouteRefunded
	if err := k.SetRoute(ctx, route); err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	k.emitRouteEvent(sdkCtx, types.EventTypeRouteRefunded, route)

	return route.EscrowAmount, nil
}
