package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the subset of the bank module used by the dex keeper.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// FeeKeeper validates pool fees against the governed fee-tier catalog.
type FeeKeeper interface {
	ValidateFee(ctx context.Context, feePpm uint64) error
}

// OracleKeeper receives spot-price observations from the swap path.
type OracleKeeper interface {
	Update(ctx context.Context, poolID uint64, price math.LegacyDec, timestamp int64) error
}
