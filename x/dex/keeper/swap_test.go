package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/dex/types"
)

func setupPool(t *testing.T, reserveA, reserveB int64) (*keepertest.TestKeepers, sdk.AccAddress, uint64) {
	tk := keepertest.NewTestKeepers(t)

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(reserveA*10)),
		sdk.NewCoin("umrd", math.NewInt(reserveB*10)),
	))

	pool, err := tk.Dex.CreatePool(tk.Ctx, provider, "uatom", "umrd", 3000, "")
	require.NoError(t, err)

	_, err = tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(reserveA), math.NewInt(reserveB))
	require.NoError(t, err)

	return tk, provider, pool.Id
}

func TestSwapExactOutput(t *testing.T) {
	tk, _, poolID := setupPool(t, 1_000_000, 1_000_000)

	trader := tk.FundedAccount(2, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	// out = 1000*997000*1000000 / (1000000*1000000 + 1000*997000), floored
	out, err := tk.Dex.Swap(tk.Ctx, trader, poolID, "uatom", math.NewInt(1000), math.OneInt(), trader)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(996), out)

	require.Equal(t, math.NewInt(996), tk.Bank.Balance(trader, "umrd"))
	require.Equal(t, math.ZeroInt(), tk.Bank.Balance(trader, "uatom"))

	pool, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_001_000), pool.ReserveA)
	require.Equal(t, math.NewInt(999_004), pool.ReserveB)
}

func TestSwapKNeverDecreases(t *testing.T) {
	tk, _, poolID := setupPool(t, 1_000_000, 2_000_000)

	trader := tk.FundedAccount(2, sdk.NewCoins(sdk.NewCoin("umrd", math.NewInt(500_000))))

	before, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)
	oldK := before.ReserveA.Mul(before.ReserveB)

	for i := 0; i < 5; i++ {
		_, err := tk.Dex.Swap(tk.Ctx, trader, poolID, "umrd", math.NewInt(100_000), math.OneInt(), trader)
		require.NoError(t, err)

		pool, err := tk.Dex.GetPool(tk.Ctx, poolID)
		require.NoError(t, err)
		newK := pool.ReserveA.Mul(pool.ReserveB)
		require.True(t, newK.GTE(oldK), "k decreased from %s to %s", oldK, newK)
		oldK = newK
	}
}

func TestSwapMinAmountOut(t *testing.T) {
	tk, _, poolID := setupPool(t, 1_000_000, 1_000_000)

	trader := tk.FundedAccount(2, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	_, err := tk.Dex.Swap(tk.Ctx, trader, poolID, "uatom", math.NewInt(1000), math.NewInt(997), trader)
	require.ErrorIs(t, err, types.ErrMinAmountOut)

	// Nothing moved and the pool is untouched.
	require.Equal(t, math.NewInt(1000), tk.Bank.Balance(trader, "uatom"))
	pool, err := tk.Dex.GetPool(tk.Ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveB)
}

func TestSwapValidation(t *testing.T) {
	tk, provider, poolID := setupPool(t, 1_000_000, 1_000_000)

	trader := tk.FundedAccount(2, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	tests := []struct {
		name     string
		poolID   uint64
		tokenIn  string
		amountIn math.Int
		wantErr  error
	}{
		{"zero amount", poolID, "uatom", math.ZeroInt(), types.ErrInvalidAmountIn},
		{"negative amount", poolID, "uatom", math.NewInt(-5), types.ErrInvalidAmountIn},
		{"unknown pool", 99, "uatom", math.NewInt(100), types.ErrPoolNotFound},
		{"token not in pool", poolID, "uosmo", math.NewInt(100), types.ErrInvalidToken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tk.Dex.Swap(tk.Ctx, trader, tc.poolID, tc.tokenIn, tc.amountIn, math.OneInt(), trader)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	// A pool without liquidity cannot trade.
	empty, err := tk.Dex.CreatePool(tk.Ctx, provider, "uosmo", "uusdt", 3000, "")
	require.NoError(t, err)
	_, err = tk.Dex.Swap(tk.Ctx, trader, empty.Id, "uosmo", math.NewInt(100), math.OneInt(), trader)
	require.ErrorIs(t, err, types.ErrPoolNotInitialized)
}

func TestSwapToRecipient(t *testing.T) {
	tk, _, poolID := setupPool(t, 1_000_000, 1_000_000)

	trader := tk.FundedAccount(2, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))
	recipient := tk.FundedAccount(3, sdk.NewCoins())

	out, err := tk.Dex.Swap(tk.Ctx, trader, poolID, "uatom", math.NewInt(1000), math.OneInt(), recipient)
	require.NoError(t, err)
	require.Equal(t, out, tk.Bank.Balance(recipient, "umrd"))
	require.Equal(t, math.ZeroInt(), tk.Bank.Balance(trader, "umrd"))
}

func TestGetSpotPrice(t *testing.T) {
	tk, _, poolID := setupPool(t, 1_000_000, 2_000_000)

	// 2e6 umrd per 1e6 uatom: one uatom buys two umrd, ignoring fees.
	price, err := tk.Dex.GetSpotPrice(tk.Ctx, poolID, "uatom")
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(2), price)

	inverse, err := tk.Dex.GetSpotPrice(tk.Ctx, poolID, "umrd")
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDecWithPrec(5, 1), inverse)
}

func TestSwapFeedsOracle(t *testing.T) {
	tk, _, poolID := setupPool(t, 1_000_000, 1_000_000)

	trader := tk.FundedAccount(2, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))
	_, err := tk.Dex.Swap(tk.Ctx, trader, poolID, "uatom", math.NewInt(1000), math.OneInt(), trader)
	require.NoError(t, err)

	price, err := tk.Oracle.GetLatestPrice(tk.Ctx, poolID)
	require.NoError(t, err)
	require.True(t, price.IsPositive())
}
