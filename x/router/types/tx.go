package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the router message server interface
type MsgServer interface {
	SwapExactTokensForTokens(context.Context, *MsgSwapExactTokensForTokens) (*MsgSwapExactTokensForTokensResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	ExecuteCrossChainRoute(context.Context, *MsgExecuteCrossChainRoute) (*MsgExecuteCrossChainRouteResponse, error)
	ExecuteMultiPathRoute(context.Context, *MsgExecuteMultiPathRoute) (*MsgExecuteMultiPathRouteResponse, error)
	RefundRoute(context.Context, *MsgRefundRoute) (*MsgRefundRouteResponse, error)
}

// MsgSwapExactTokensForTokensResponse defines the response for SwapExactTokensForTokens
type MsgSwapExactTokensForTokensResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgExecuteCrossChainRouteResponse defines the response for ExecuteCrossChainRoute
type MsgExecuteCrossChainRouteResponse struct {
	RouteId uint64 `json:"route_id"`
	Handle  string `json:"handle,omitempty"`
}

// MsgExecuteMultiPathRouteResponse defines the response for ExecuteMultiPathRoute
type MsgExecuteMultiPathRouteResponse struct {
	RouteId uint64 `json:"route_id"`
}

// MsgRefundRouteResponse defines the response for RefundRoute
type MsgRefundRouteResponse struct {
	Refunded math.Int `json:"refunded"`
}
