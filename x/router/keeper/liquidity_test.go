package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/router/types"
)

func TestRouterAddLiquidityDeadline(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	poolID := seedPool(t, tk, 10, "uatom", "umrd")

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(500_000)),
		sdk.NewCoin("umrd", math.NewInt(500_000)),
	))

	// An expired deadline fails before any token moves.
	_, err := tk.Router.AddLiquidity(tk.Ctx, provider, poolID,
		math.NewInt(500_000), math.NewInt(500_000), tk.Ctx.BlockTime().Unix()-1)
	require.ErrorIs(t, err, types.ErrDeadlineExpired)
	require.Equal(t, math.NewInt(500_000), tk.Bank.Balance(provider, "uatom"))

	// A live deadline delegates to the dex and mints shares.
	shares, err := tk.Router.AddLiquidity(tk.Ctx, provider, poolID,
		math.NewInt(500_000), math.NewInt(500_000), tk.Ctx.BlockTime().Unix()+60)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), shares)
	require.True(t, tk.Bank.Balance(provider, "uatom").IsZero())
}

func TestRouterRemoveLiquidityDeadline(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	poolID := seedPool(t, tk, 10, "uatom", "umrd")

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(500_000)),
		sdk.NewCoin("umrd", math.NewInt(500_000)),
	))

	shares, err := tk.Router.AddLiquidity(tk.Ctx, provider, poolID,
		math.NewInt(500_000), math.NewInt(500_000), 0)
	require.NoError(t, err)

	// An expired deadline leaves the position untouched.
	_, _, err = tk.Router.RemoveLiquidity(tk.Ctx, provider, poolID, shares,
		tk.Ctx.BlockTime().Unix()-1)
	require.ErrorIs(t, err, types.ErrDeadlineExpired)

	got, err := tk.Dex.GetLiquidity(tk.Ctx, poolID, provider)
	require.NoError(t, err)
	require.Equal(t, shares, got)

	// A zero deadline means no deadline; the burn pays out both reserves.
	amountA, amountB, err := tk.Router.RemoveLiquidity(tk.Ctx, provider, poolID, shares, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_000), amountA)
	require.Equal(t, math.NewInt(500_000), amountB)
	require.Equal(t, math.NewInt(500_000), tk.Bank.Balance(provider, "uatom"))
	require.Equal(t, math.NewInt(500_000), tk.Bank.Balance(provider, "umrd"))
}
