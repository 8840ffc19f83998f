package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/feegov/types"
)

func TestValidateFeeGrid(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	tests := []struct {
		name   string
		feePpm uint64
		valid  bool
	}{
		{"minimum", 100, true},
		{"on step", 3000, true},
		{"maximum", 100_000, true},
		{"below minimum", 99, false},
		{"zero", 0, false},
		{"off step", 3050, false},
		{"off step by one", 101, false},
		{"above maximum", 100_100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tk.FeeGov.ValidateFee(tk.Ctx, tc.feePpm)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, types.ErrInvalidFee)
			}
		})
	}
}

func TestCalculateFeeVolumeScaling(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	tests := []struct {
		name    string
		base    uint64
		amount  math.Int
		wantPpm uint64
	}{
		{"below threshold keeps base", 3000, math.NewInt(500_000), 3000},
		{"at threshold doubles", 3000, math.NewInt(1_000_000), 6000},
		{"two thresholds triples", 3000, math.NewInt(2_500_000), 9000},
		{"multiplier capped at five", 3000, math.NewInt(100_000_000), 15_000},
		{"never exceeds max fee", 50_000, math.NewInt(100_000_000), types.MaxFeePpm},
		{"zero amount keeps base", 3000, math.ZeroInt(), 3000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tk.FeeGov.CalculateFee(tk.Ctx, tc.base, tc.amount)
			require.NoError(t, err)
			require.Equal(t, tc.wantPpm, got)
		})
	}

	// Off-grid base fees are rejected outright.
	_, err := tk.FeeGov.CalculateFee(tk.Ctx, 3050, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvalidFee)
}

func TestCalculateFeeActivityScore(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	// The score starts neutral and leaves the volume-scaled fee unchanged.
	require.EqualValues(t, types.NeutralScoreBps, tk.FeeGov.GetActivityScore(tk.Ctx))
	got, err := tk.FeeGov.CalculateFee(tk.Ctx, 3000, math.NewInt(1_000_000))
	require.NoError(t, err)
	require.EqualValues(t, 6000, got)

	// An elevated score scales the fee proportionally.
	require.NoError(t, tk.FeeGov.SetActivityScore(tk.Ctx, 15_000))
	got, err = tk.FeeGov.CalculateFee(tk.Ctx, 3000, math.NewInt(1_000_000))
	require.NoError(t, err)
	require.EqualValues(t, 9000, got)

	// A depressed score never drops the fee below the grid minimum.
	require.NoError(t, tk.FeeGov.SetActivityScore(tk.Ctx, types.MinScoreBps))
	got, err = tk.FeeGov.CalculateFee(tk.Ctx, types.MinFeePpm, math.ZeroInt())
	require.NoError(t, err)
	require.EqualValues(t, types.MinFeePpm, got)

	// Out-of-bounds scores are rejected and leave the stored score alone.
	require.ErrorIs(t, tk.FeeGov.SetActivityScore(tk.Ctx, types.MaxScoreBps+1), types.ErrInvalidScore)
	require.ErrorIs(t, tk.FeeGov.SetActivityScore(tk.Ctx, 0), types.ErrInvalidScore)
	require.EqualValues(t, types.MinScoreBps, tk.FeeGov.GetActivityScore(tk.Ctx))
}

func TestFeeUpdatedEvent(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	hasFeeUpdated := func(ctx sdk.Context) bool {
		for _, ev := range ctx.EventManager().Events() {
			if ev.Type == types.EventTypeFeeUpdated {
				return true
			}
		}
		return false
	}

	ctx := tk.Ctx.WithEventManager(sdk.NewEventManager())
	tier := types.FeeTier{FeePpm: 20_000, TickSpacing: 400, Active: true}
	require.NoError(t, tk.FeeGov.AddFeeTier(ctx, tier))
	require.True(t, hasFeeUpdated(ctx), "tier mutation must emit fee_updated")

	ctx = tk.Ctx.WithEventManager(sdk.NewEventManager())
	require.NoError(t, tk.FeeGov.SetActivityScore(ctx, 12_000))
	require.True(t, hasFeeUpdated(ctx), "score change must emit fee_updated")
}

func TestAddFeeTier(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	tier := types.FeeTier{FeePpm: 20_000, TickSpacing: 400, Active: true, Description: "exotic pairs"}
	require.NoError(t, tk.FeeGov.AddFeeTier(tk.Ctx, tier))

	got, found, err := tk.FeeGov.GetFeeTier(tk.Ctx, 20_000)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, tier, got)

	// Duplicates and off-grid fees are rejected.
	require.ErrorIs(t, tk.FeeGov.AddFeeTier(tk.Ctx, tier), types.ErrFeeTierExists)
	require.ErrorIs(t, tk.FeeGov.AddFeeTier(tk.Ctx, types.FeeTier{FeePpm: 20_050, TickSpacing: 400, Active: true}), types.ErrInvalidFee)
}

func TestDefaultFeeTiersSeeded(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	for _, feePpm := range []uint64{500, 3000, 10_000} {
		_, found, err := tk.FeeGov.GetFeeTier(tk.Ctx, feePpm)
		require.NoError(t, err)
		require.True(t, found, "default tier %d missing", feePpm)
	}
}
