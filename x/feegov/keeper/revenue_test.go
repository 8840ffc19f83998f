package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/feegov/types"
)

func newShare(recipient sdk.AccAddress, bps uint64) types.RevenueShare {
	return types.RevenueShare{
		Recipient:     recipient.String(),
		PercentageBps: bps,
		Active:        true,
		TotalClaimed:  math.ZeroInt(),
	}
}

func TestSetRevenueShareCaps(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	treasury := tk.FundedAccount(1, sdk.NewCoins())
	devFund := tk.FundedAccount(2, sdk.NewCoins())

	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(treasury, 6000)))
	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(devFund, 4000)))

	// Any further active share would push the total past 10,000 bps.
	extra := tk.FundedAccount(3, sdk.NewCoins())
	require.ErrorIs(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(extra, 100)), types.ErrInvalidShares)

	// An inactive share does not count against the cap.
	inactive := newShare(extra, 100)
	inactive.Active = false
	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, inactive))

	// Shrinking an existing share frees room.
	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(devFund, 3000)))
	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(extra, 1000)))

	require.ErrorIs(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(extra, 10_001)), types.ErrInvalidShares)
	require.ErrorIs(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(extra, 0)), types.ErrInvalidShares)
}

func TestDistributeRevenue(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	treasury := tk.FundedAccount(1, sdk.NewCoins())
	devFund := tk.FundedAccount(2, sdk.NewCoins())
	payer := tk.FundedAccount(3, sdk.NewCoins(sdk.NewCoin("umrd", math.NewInt(10_000))))

	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(treasury, 6000)))
	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(devFund, 4000)))

	require.NoError(t, tk.FeeGov.DistributeRevenue(tk.Ctx, payer, "umrd", math.NewInt(1000)))

	require.Equal(t, math.NewInt(600), tk.Bank.Balance(treasury, "umrd"))
	require.Equal(t, math.NewInt(400), tk.Bank.Balance(devFund, "umrd"))

	total, err := tk.FeeGov.GetDistributedTotal(tk.Ctx, "umrd")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), total)

	share, found, err := tk.FeeGov.GetRevenueShare(tk.Ctx, treasury)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, math.NewInt(600), share.TotalClaimed)
}

func TestDistributeRevenueFloorsPayouts(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	treasury := tk.FundedAccount(1, sdk.NewCoins())
	devFund := tk.FundedAccount(2, sdk.NewCoins())
	payer := tk.FundedAccount(3, sdk.NewCoins(sdk.NewCoin("umrd", math.NewInt(10_000))))

	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(treasury, 6000)))
	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(devFund, 4000)))

	// 1001 splits 600.6/400.4; each payout floors and the module keeps 1.
	require.NoError(t, tk.FeeGov.DistributeRevenue(tk.Ctx, payer, "umrd", math.NewInt(1001)))

	require.Equal(t, math.NewInt(600), tk.Bank.Balance(treasury, "umrd"))
	require.Equal(t, math.NewInt(400), tk.Bank.Balance(devFund, "umrd"))
	require.Equal(t, math.NewInt(1), tk.Bank.Balance(tk.FeeGov.GetModuleAddress(), "umrd"))
}

func TestDistributeRevenueValidation(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	payer := tk.FundedAccount(3, sdk.NewCoins(sdk.NewCoin("umrd", math.NewInt(10_000))))

	err := tk.FeeGov.DistributeRevenue(tk.Ctx, payer, "umrd", math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)

	tk.FeeGov.SetDistributionPaused(tk.Ctx, true)
	err = tk.FeeGov.DistributeRevenue(tk.Ctx, payer, "umrd", math.NewInt(100))
	require.ErrorIs(t, err, types.ErrDistributionPaused)

	tk.FeeGov.SetDistributionPaused(tk.Ctx, false)
	require.NoError(t, tk.FeeGov.DistributeRevenue(tk.Ctx, payer, "umrd", math.NewInt(100)))
}

func TestRevenueShareReplacementKeepsClaims(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	treasury := tk.FundedAccount(1, sdk.NewCoins())
	payer := tk.FundedAccount(3, sdk.NewCoins(sdk.NewCoin("umrd", math.NewInt(10_000))))

	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(treasury, 5000)))
	require.NoError(t, tk.FeeGov.DistributeRevenue(tk.Ctx, payer, "umrd", math.NewInt(1000)))

	// Replacing the share carries the claim counter forward.
	require.NoError(t, tk.FeeGov.SetRevenueShare(tk.Ctx, newShare(treasury, 8000)))

	share, found, err := tk.FeeGov.GetRevenueShare(tk.Ctx, treasury)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(8000), share.PercentageBps)
	require.Equal(t, math.NewInt(500), share.TotalClaimed)
}
