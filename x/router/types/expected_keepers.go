package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	dextypes "github.com/meridian-chain/meridian/x/dex/types"
)

// BankKeeper defines the bank operations the router module needs
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// DexKeeper defines the trading operations the router module needs
type DexKeeper interface {
	GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (*dextypes.Pool, error)
	Swap(ctx context.Context, trader sdk.AccAddress, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int, recipient sdk.AccAddress) (math.Int, error)
	AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, amountA, amountB math.Int) (math.Int, error)
	RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) (math.Int, math.Int, error)
}

// FeeKeeper defines the fee quoting operations the router module needs
type FeeKeeper interface {
	CalculateFee(ctx context.Context, baseFeePpm uint64, amount math.Int) (uint64, error)
}
