package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/dex/types"
)

func TestAddInitialLiquidity(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("umrd", math.NewInt(1_000_000)),
	))

	pool, err := tk.Dex.CreatePool(tk.Ctx, provider, "uatom", "umrd", 3000, "")
	require.NoError(t, err)

	minted, err := tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	// sqrt(1e6 * 1e6) = 1e6 total shares, 1000 of them locked forever.
	require.Equal(t, math.NewInt(999_000), minted)

	got, err := tk.Dex.GetLiquidity(tk.Ctx, pool.Id, provider)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(999_000), got)

	locked, err := tk.Dex.GetLiquidity(tk.Ctx, pool.Id, tk.Dex.GetModuleAddress())
	require.NoError(t, err)
	require.Equal(t, types.MinimumLiquidityShares(), locked)

	stored, err := tk.Dex.GetPool(tk.Ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), stored.TotalShares)
	require.Equal(t, math.NewInt(1_000_000), stored.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), stored.ReserveB)
}

func TestAddInitialLiquidityBelowMinimum(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(10_000)),
		sdk.NewCoin("umrd", math.NewInt(10_000)),
	))

	pool, err := tk.Dex.CreatePool(tk.Ctx, provider, "uatom", "umrd", 3000, "")
	require.NoError(t, err)

	// sqrt(1500*1500) = 1500, below the 2000 minimum initial deposit.
	_, err = tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(1500), math.NewInt(1500))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidityMinted)

	// sqrt(900*900) = 900 does not even clear the locked floor.
	_, err = tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(900), math.NewInt(900))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidityMinted)
}

func TestAddLiquidityProRata(t *testing.T) {
	tk, provider, poolID := setupPool(t, 1_000_000, 2_000_000)

	balanceA := tk.Bank.Balance(provider, "uatom")
	balanceB := tk.Bank.Balance(provider, "umrd")

	// Matching the 1:2 ratio exactly.
	before, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)

	shares, err := tk.Dex.AddLiquidity(tk.Ctx, provider, poolID, math.NewInt(500_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	expected := math.NewInt(500_000).Mul(before.TotalShares).Quo(before.ReserveA)
	require.Equal(t, expected, shares)

	require.Equal(t, balanceA.Sub(math.NewInt(500_000)), tk.Bank.Balance(provider, "uatom"))
	require.Equal(t, balanceB.Sub(math.NewInt(1_000_000)), tk.Bank.Balance(provider, "umrd"))
}

func TestAddLiquidityTrimsExcess(t *testing.T) {
	tk, provider, poolID := setupPool(t, 1_000_000, 2_000_000)

	balanceB := tk.Bank.Balance(provider, "umrd")

	// Offering 4x the needed token B; only the ratio-matched 1e6 is taken.
	_, err := tk.Dex.AddLiquidity(tk.Ctx, provider, poolID, math.NewInt(500_000), math.NewInt(4_000_000))
	require.NoError(t, err)

	require.Equal(t, balanceB.Sub(math.NewInt(1_000_000)), tk.Bank.Balance(provider, "umrd"))

	pool, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_500_000), pool.ReserveA)
	require.Equal(t, math.NewInt(3_000_000), pool.ReserveB)
}

func TestRemoveLiquidity(t *testing.T) {
	tk, provider, poolID := setupPool(t, 1_000_000, 1_000_000)

	balanceA := tk.Bank.Balance(provider, "uatom")
	balanceB := tk.Bank.Balance(provider, "umrd")

	// Burn half of the provider's shares: 499500 of 1e6 total.
	amountA, amountB, err := tk.Dex.RemoveLiquidity(tk.Ctx, provider, poolID, math.NewInt(499_500))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(499_500), amountA)
	require.Equal(t, math.NewInt(499_500), amountB)

	require.Equal(t, balanceA.Add(amountA), tk.Bank.Balance(provider, "uatom"))
	require.Equal(t, balanceB.Add(amountB), tk.Bank.Balance(provider, "umrd"))

	pool, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_500), pool.TotalShares)

	// Burning more than owned fails.
	_, _, err = tk.Dex.RemoveLiquidity(tk.Ctx, provider, poolID, math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestRemoveLiquidityDeletesEmptyPosition(t *testing.T) {
	tk, provider, poolID := setupPool(t, 1_000_000, 1_000_000)

	_, _, err := tk.Dex.RemoveLiquidity(tk.Ctx, provider, poolID, math.NewInt(999_000))
	require.NoError(t, err)

	got, err := tk.Dex.GetLiquidity(tk.Ctx, poolID, provider)
	require.NoError(t, err)
	require.True(t, got.IsZero())

	// The locked minimum stays behind.
	pool, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, types.MinimumLiquidityShares(), pool.TotalShares)
}

func TestDonateAccruesToReserves(t *testing.T) {
	tk, _, poolID := setupPool(t, 1_000_000, 1_000_000)

	donor := tk.FundedAccount(4, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(50_000))))

	before, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)

	require.NoError(t, tk.Dex.Donate(tk.Ctx, donor, poolID, math.NewInt(50_000), math.ZeroInt()))

	after, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, before.ReserveA.Add(math.NewInt(50_000)), after.ReserveA)
	require.Equal(t, before.ReserveB, after.ReserveB)
	// Donations mint no shares.
	require.Equal(t, before.TotalShares, after.TotalShares)
}
