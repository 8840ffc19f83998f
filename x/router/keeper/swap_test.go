package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/router/types"
)

// seedPool funds a provider and opens a denomA/denomB pool with a million of
// each at the default fee.
func seedPool(t *testing.T, tk *keepertest.TestKeepers, seed byte, denomA, denomB string) uint64 {
	t.Helper()

	provider := tk.FundedAccount(seed, sdk.NewCoins(
		sdk.NewCoin(denomA, math.NewInt(1_000_000)),
		sdk.NewCoin(denomB, math.NewInt(1_000_000)),
	))

	pool, err := tk.Dex.CreatePool(tk.Ctx, provider, denomA, denomB, 3000, "")
	require.NoError(t, err)
	_, err = tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	return pool.Id
}

func TestPathSwapTwoHops(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")
	seedPool(t, tk, 11, "umrd", "uosmo")

	trader := tk.FundedAccount(1, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	// 1000 uatom -> 996 umrd -> 992 uosmo through two 0.3% pools.
	out, err := tk.Router.SwapExactTokensForTokens(tk.Ctx, trader,
		math.NewInt(1000), math.NewInt(1), []string{"uatom", "umrd", "uosmo"}, trader, 0)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(992), out)

	require.True(t, tk.Bank.Balance(trader, "uatom").IsZero())
	require.Equal(t, math.NewInt(992), tk.Bank.Balance(trader, "uosmo"))
}

func TestPathSwapMinOutput(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")
	seedPool(t, tk, 11, "umrd", "uosmo")

	trader := tk.FundedAccount(1, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	_, err := tk.Router.SwapExactTokensForTokens(tk.Ctx, trader,
		math.NewInt(1000), math.NewInt(993), []string{"uatom", "umrd", "uosmo"}, trader, 0)
	require.ErrorIs(t, err, types.ErrInsufficientOutput)
}

func TestPathSwapToRecipient(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")

	trader := tk.FundedAccount(1, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))
	friend := tk.FundedAccount(2, sdk.NewCoins())

	out, err := tk.Router.SwapExactTokensForTokens(tk.Ctx, trader,
		math.NewInt(1000), math.NewInt(1), []string{"uatom", "umrd"}, friend, 0)
	require.NoError(t, err)
	require.Equal(t, out, tk.Bank.Balance(friend, "umrd"))
	require.True(t, tk.Bank.Balance(trader, "umrd").IsZero())
}

func TestPathSwapValidation(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")

	trader := tk.FundedAccount(1, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	// A single denom is not a path.
	_, err := tk.Router.SwapExactTokensForTokens(tk.Ctx, trader,
		math.NewInt(1000), math.ZeroInt(), []string{"uatom"}, trader, 0)
	require.ErrorIs(t, err, types.ErrInvalidPath)

	// No pool serves this pair.
	_, err = tk.Router.SwapExactTokensForTokens(tk.Ctx, trader,
		math.NewInt(1000), math.ZeroInt(), []string{"uatom", "ujuno"}, trader, 0)
	require.ErrorIs(t, err, types.ErrInvalidPath)

	// Deadline already passed.
	_, err = tk.Router.SwapExactTokensForTokens(tk.Ctx, trader,
		math.NewInt(1000), math.ZeroInt(), []string{"uatom", "umrd"}, trader,
		tk.Ctx.BlockTime().Unix()-1)
	require.ErrorIs(t, err, types.ErrDeadlineExpired)
}
