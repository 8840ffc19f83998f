package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

// scaleRelayFee grows a relay fee estimate with route volume using the fee
// keeper's multiplier, so large routes pay proportionally more for the
// relay. Without a fee keeper the flat estimate stands.
func (k Keeper) scaleRelayFee(ctx context.Context, estimate sdk.Coin, amountIn math.Int) (sdk.Coin, error) {
	if k.feeKeeper == nil {
		return estimate, nil
	}
	effective, err := k.feeKeeper.CalculateFee(ctx, types.RelayBaseFeePpm, amountIn)
	if err != nil {
		return estimate, err
	}
	scaled := estimate.Amount.MulRaw(int64(effective)).QuoRaw(int64(types.RelayBaseFeePpm))
	return sdk.NewCoin(estimate.Denom, scaled), nil
}

// ExecuteCrossChainRoute runs the local half of a cross-chain swap saga:
// verify the relay fee, pull the input, swap locally when a pool for the
// pair exists, escrow the proceeds, and dispatch the destination message.
//
// The fee check happens before any token moves, so an underfunded call
// fails with ErrInsufficientFee having pulled nothing. A synchronous
// dispatch rejection fails the whole call; the host's atomic rollback
// returns every token to the caller. Once Dispatched, the saga ends here:
// delivery is reported asynchronously and a failed delivery leaves the
// escrow refundable through RefundRoute.
//
// Errors: ErrDeadlineExpired, ErrInvalidSrcChain, ErrInvalidDstChain,
// ErrInsufficientFee, ErrBridgeOperationFailed, plus any dex swap error.
func (k Keeper) ExecuteCrossChainRoute(ctx context.Context, msg *types.MsgExecuteCrossChainRoute) (*types.Route, error) {
	if err := k.checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}
	if msg.SrcChain != k.localChain {
		return nil, types.ErrInvalidSrcChain.Wrapf("routes originate on %s, got %s", k.localChain, msg.SrcChain)
	}
	adapter, ok := k.GetAdapter(msg.DstChain)
	if !ok {
		return nil, types.ErrInvalidDstChain.Wrap(msg.DstChain)
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("sender: %v", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	routeID := k.GetNextRouteID(ctx)

	payload := types.SwapPayload{
		RouteId:      routeID,
		TokenOut:     msg.TokenOut,
		AmountOutMin: msg.AmountOutMin,
		Recipient:    msg.Recipient,
	}
	payloadBz, err := payload.Marshal()
	if err != nil {
		return nil, types.ErrInvalidPayload.Wrapf("marshal: %v", err)
	}

	// Fee gate comes first: nothing may be pulled from the caller until the
	// supplied fee covers the relay's volume-scaled estimate.
	estimate, err := adapter.EstimateFee(sdkCtx, payloadBz)
	if err != nil {
		return nil, types.ErrBridgeOperationFailed.Wrapf("fee estimate: %v", err)
	}
	estimate, err = k.scaleRelayFee(ctx, estimate, msg.AmountIn)
	if err != nil {
		return nil, err
	}
	if msg.Fee.Denom != estimate.Denom || msg.Fee.Amount.LT(estimate.Amount) {
		return nil, types.ErrInsufficientFee.Wrapf("supplied %s, estimate %s", msg.Fee, estimate)
	}

	moduleAddr := k.GetModuleAddress()
	if err := k.bankKeeper.SendCoins(ctx, sender, moduleAddr, sdk.NewCoins(estimate)); err != nil {
		return nil, err
	}
	if err := k.bankKeeper.SendCoins(ctx, sender, moduleAddr,
		sdk.NewCoins(sdk.NewCoin(msg.TokenIn, msg.AmountIn))); err != nil {
		return nil, err
	}

	route := &types.Route{
		Id:           routeID,
		Sender:       msg.Sender,
		TokenIn:      msg.TokenIn,
		TokenOut:     msg.TokenOut,
		AmountIn:     msg.AmountIn,
		AmountOutMin: msg.AmountOutMin,
		Recipient:    msg.Recipient,
		SrcChain:     msg.SrcChain,
		DstChain:     msg.DstChain,
		EscrowToken:  msg.TokenIn,
		EscrowAmount: msg.AmountIn,
		FeePaid:      estimate,
		Status:       types.RoutePending,
		CreatedAt:    sdkCtx.BlockTime().Unix(),
	}
	k.emitRouteEvent(sdkCtx, types.EventTypeRouteCreated, route)

	// Local leg: swap escrowed input into the output token when a local
	// pool serves the pair. No pool means the input itself travels as
	// escrow backing.
	if pool, err := k.dexKeeper.GetPoolByTokens(ctx, msg.TokenIn, msg.TokenOut); err == nil {
		out, err := k.dexKeeper.Swap(ctx, moduleAddr, pool.Id, msg.TokenIn, msg.AmountIn, msg.AmountOutMin, moduleAddr)
		if err != nil {
			return nil, err
		}
		route.EscrowToken = msg.TokenOut
		route.EscrowAmount = out
		route.Status = types.RouteLocalSwapped
		k.emitRouteEvent(sdkCtx, types.EventTypeRouteSwapped, route)
	}

	handle, err := adapter.Dispatch(sdkCtx, msg.Recipient, payloadBz)
	if err != nil {
		return nil, types.ErrBridgeOperationFailed.Wrapf("dispatch to %s: %v", msg.DstChain, err)
	}

	route.Hops = []types.Hop{{ChainId: msg.DstChain, Handle: handle}}
	route.Status = types.RouteDispatched
	if err := k.SetRoute(ctx, route); err != nil {
		return nil, err
	}
	k.emitRouteEvent(sdkCtx, types.EventTypeRouteDispatch, route)

	return route, nil
}

// ExecuteMultiPathRoute generalizes ExecuteCrossChainRoute to an ordered
// chain path. The local leg runs first, then one message per hop is
// dispatched in order, each carrying the next leg's requirements. Hops are
// best-effort and unretried; the router's responsibility ends when each
// relay accepts its message.
//
// Errors: ErrDeadlineExpired, ErrInvalidDstChain, ErrInsufficientFee,
// ErrBridgeOperationFailed, plus any dex swap error.
func (k Keeper) ExecuteMultiPathRoute(ctx context.Context, msg *types.MsgExecuteMultiPathRoute) (*types.Route, error) {
	if err := k.checkDeadline(ctx, msg.Deadline); err != nil {
		return nil, err
	}
	if len(msg.Hops) == 0 {
		return nil, types.ErrInvalidPath.Wrap("multi-path route needs at least one hop")
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("sender: %v", err)
	}

	// Every hop needs a registered adapter before anything moves.
	type leg struct {
		adapter types.RelayAdapter
		payload []byte
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	routeID := k.GetNextRouteID(ctx)
	finalHop := msg.Hops[len(msg.Hops)-1]

	legs := make([]leg, 0, len(msg.Hops))
	totalFee := sdk.Coin{}
	for i, hop := range msg.Hops {
		adapter, ok := k.GetAdapter(hop.ChainId)
		if !ok {
			return nil, types.ErrInvalidDstChain.Wrap(hop.ChainId)
		}

		// Intermediate legs pay out to the next relay's care; only the
		// final leg addresses the caller's recipient.
		recipient := msg.Recipient
		if i < len(msg.Hops)-1 {
			recipient = msg.Hops[i+1].ChainId
		}

		payload := types.SwapPayload{
			RouteId:      routeID,
			TokenOut:     hop.TokenOut,
			AmountOutMin: hop.AmountOutMin,
			Recipient:    recipient,
		}
		payloadBz, err := payload.Marshal()
		if err != nil {
			return nil, types.ErrInvalidPayload.Wrapf("hop %d: %v", i, err)
		}

		estimate, err := adapter.EstimateFee(sdkCtx, payloadBz)
		if err != nil {
			return nil, types.ErrBridgeOperationFailed.Wrapf("hop %d fee estimate: %v", i, err)
		}
		if totalFee.Denom == "" {
			totalFee = estimate
		} else {
			if estimate.Denom != totalFee.Denom {
				return nil, types.ErrInvalidInput.Wrapf("mixed fee denoms %s and %s", totalFee.Denom, estimate.Denom)
			}
			totalFee = totalFee.Add(estimate)
		}

		legs = append(legs, leg{adapter: adapter, payload: payloadBz})
	}

	totalFee, err = k.scaleRelayFee(ctx, totalFee, msg.AmountIn)
	if err != nil {
		return nil, err
	}
	if msg.Fee.Denom != totalFee.Denom || msg.Fee.Amount.LT(totalFee.Amount) {
		return nil, types.ErrInsufficientFee.Wrapf("supplied %s, estimate %s", msg.Fee, totalFee)
	}

	moduleAddr := k.GetModuleAddress()
	if err := k.bankKeeper.SendCoins(ctx, sender, moduleAddr, sdk.NewCoins(totalFee)); err != nil {
		return nil, err
	}
	if err := k.bankKeeper.SendCoins(ctx, sender, moduleAddr,
		sdk.NewCoins(sdk.NewCoin(msg.TokenIn, msg.AmountIn))); err != nil {
		return nil, err
	}

	route := &types.Route{
		Id:           routeID,
		Sender:       msg.Sender,
		TokenIn:      msg.TokenIn,
		TokenOut:     finalHop.TokenOut,
		AmountIn:     msg.AmountIn,
		AmountOutMin: finalHop.AmountOutMin,
		Recipient:    msg.Recipient,
		SrcChain:     k.localChain,
		DstChain:     finalHop.ChainId,
		EscrowToken:  msg.TokenIn,
		EscrowAmount: msg.AmountIn,
		FeePaid:      totalFee,
		Status:       types.RoutePending,
		CreatedAt:    sdkCtx.BlockTime().Unix(),
	}
	k.emitRouteEvent(sdkCtx, types.EventTypeRouteCreated, route)

	firstHop := msg.Hops[0]
	if pool, err := k.dexKeeper.GetPoolByTokens(ctx, msg.TokenIn, firstHop.TokenOut); err == nil {
		out, err := k.dexKeeper.Swap(ctx, moduleAddr, pool.Id, msg.TokenIn, msg.AmountIn, firstHop.AmountOutMin, moduleAddr)
		if err != nil {
			return nil, err
		}
		route.EscrowToken = firstHop.TokenOut
		route.EscrowAmount = out
		route.Status = types.RouteLocalSwapped
		k.emitRouteEvent(sdkCtx, types.EventTypeRouteSwapped, route)
	}

	route.Hops = make([]types.Hop, 0, len(msg.Hops))
	for i, l := range legs {
		recipient := msg.Recipient
		if i < len(msg.Hops)-1 {
			recipient = msg.Hops[i+1].ChainId
		}

		handle, err := l.adapter.Dispatch(sdkCtx, recipient, l.payload)
		if err != nil {
			return nil, types.ErrBridgeOperationFailed.Wrapf("hop %d dispatch to %s: %v", i, msg.Hops[i].ChainId, err)
		}
		route.Hops = append(route.Hops, types.Hop{ChainId: msg.Hops[i].ChainId, Handle: handle})
	}

	route.Status = types.RouteDispatched
	if err := k.SetRoute(ctx, route); err != nil {
		return nil, err
	}
	k.emitRouteEvent(sdkCtx, types.EventTypeRouteDispatch, route)

	return route, nil
}
