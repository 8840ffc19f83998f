package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/router/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the router MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SwapExactTokensForTokens handles MsgSwapExactTokensForTokens
func (k msgServer) SwapExactTokensForTokens(goCtx context.Context, msg *types.MsgSwapExactTokensForTokens) (*types.MsgSwapExactTokensForTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("trader: %v", err)
	}

	to := trader
	if msg.To != "" {
		to, err = sdk.AccAddressFromBech32(msg.To)
		if err != nil {
			return nil, types.ErrZeroAddress.Wrapf("to: %v", err)
		}
	}

	amountOut, err := k.Keeper.SwapExactTokensForTokens(goCtx, trader, msg.AmountIn, msg.AmountOutMin, msg.Path, to, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgSwapExactTokensForTokensResponse{AmountOut: amountOut}, nil
}

// AddLiquidity handles MsgAddLiquidity
func (k msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("provider: %v", err)
	}

	shares, err := k.Keeper.AddLiquidity(goCtx, provider, msg.PoolId, msg.AmountA, msg.AmountB, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgAddLiquidityResponse{Shares: shares}, nil
}

// RemoveLiquidity handles MsgRemoveLiquidity
func (k msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("provider: %v", err)
	}

	amountA, amountB, err := k.Keeper.RemoveLiquidity(goCtx, provider, msg.PoolId, msg.Shares, msg.Deadline)
	if err != nil {
		return nil, err
	}

	return &types.MsgRemoveLiquidityResponse{AmountA: amountA, AmountB: amountB}, nil
}

// ExecuteCrossChainRoute handles MsgExecuteCrossChainRoute
func (k msgServer) ExecuteCrossChainRoute(goCtx context.Context, msg *types.MsgExecuteCrossChainRoute) (*types.MsgExecuteCrossChainRouteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	route, err := k.Keeper.ExecuteCrossChainRoute(goCtx, msg)
	if err != nil {
		return nil, err
	}

	resp := &types.MsgExecuteCrossChainRouteResponse{RouteId: route.Id}
	if len(route.Hops) > 0 {
		resp.Handle = route.Hops[len(route.Hops)-1].Handle
	}
	return resp, nil
}

// ExecuteMultiPathRoute handles MsgExecuteMultiPathRoute
func (k msgServer) ExecuteMultiPathRoute(goCtx context.Context, msg *types.MsgExecuteMultiPathRoute) (*types.MsgExecuteMultiPathRouteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	route, err := k.Keeper.ExecuteMultiPathRoute(goCtx, msg)
	if err != nil {
		return nil, err
	}

	return &types.MsgExecuteMultiPathRouteResponse{RouteId: route.Id}, nil
}

// RefundRoute handles MsgRefundRoute
func (k msgServer) RefundRoute(goCtx context.Context, msg *types.MsgRefundRoute) (*types.MsgRefundRouteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrZeroAddress.Wrapf("sender: %v", err)
	}

	refunded, err := k.Keeper.RefundRoute(goCtx, sender, msg.RouteId)
	if err != nil {
		return nil, err
	}

	return &types.MsgRefundRouteResponse{Refunded: refunded}, nil
}
