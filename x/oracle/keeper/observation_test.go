package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/oracle/types"
)

func TestTWAPConstantPrice(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	price := math.LegacyNewDec(42)
	t0 := keepertest.GenesisTime.Unix()

	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, price, t0))
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, price, t0+3600))

	// A constant price over the whole window averages to itself.
	twap, err := tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0, t0+3600)
	require.NoError(t, err)
	require.Equal(t, price, twap)
}

func TestTWAPTimeWeighting(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	t0 := keepertest.GenesisTime.Unix()

	// Price 1 for 100s, then price 3 for 100s: the average is 2.
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(1), t0))
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(3), t0+100))
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(3), t0+200))

	twap, err := tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0, t0+200)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(2), twap)

	// The sub-window holding only the second price averages to 3.
	twap, err = tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0+100, t0+200)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(3), twap)
}

func TestTWAPWindowValidation(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	t0 := keepertest.GenesisTime.Unix()

	_, err := tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0, t0)
	require.ErrorIs(t, err, types.ErrInvalidWindow)

	_, err = tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0, t0-10)
	require.ErrorIs(t, err, types.ErrInvalidWindow)

	// A window spanning the whole buffer cannot distinguish eras.
	_, err = tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0, t0+types.BufferSize)
	require.ErrorIs(t, err, types.ErrInvalidWindow)

	// No observations at all.
	_, err = tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0, t0+100)
	require.ErrorIs(t, err, types.ErrNoObservations)
}

func TestTWAPMissingEndpoint(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	t0 := keepertest.GenesisTime.Unix()
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(5), t0))

	// The end slot was never written.
	_, err := tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0, t0+60)
	require.ErrorIs(t, err, types.ErrNoObservations)
}

func TestTWAPStaleSlotRejected(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	t0 := keepertest.GenesisTime.Unix()

	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(5), t0))
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(5), t0+100))

	// A full buffer revolution later the slot for t0 is reused.
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(7), t0+types.BufferSize))

	_, err := tk.Oracle.GetTWAPWindow(tk.Ctx, 1, t0, t0+100)
	require.ErrorIs(t, err, types.ErrStaleObservation)
}

func TestUpdateRejectsBadInput(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	t0 := keepertest.GenesisTime.Unix()

	require.ErrorIs(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(-1), t0), types.ErrInvalidPrice)
	require.ErrorIs(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(1), -5), types.ErrInvalidTimestamp)

	// Time cannot run backwards per pool.
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(1), t0))
	require.ErrorIs(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(1), t0-1), types.ErrInvalidTimestamp)
}

func TestUpdateSameSecondLastWriteWins(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	t0 := keepertest.GenesisTime.Unix()

	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(5), t0))
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, math.LegacyNewDec(9), t0))

	price, err := tk.Oracle.GetLatestPrice(tk.Ctx, 1)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(9), price)
}

func TestGetTWAPDefaultWindow(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	now := tk.Ctx.BlockTime().Unix()
	price := math.LegacyNewDec(11)

	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, price, now-types.DefaultTWAPWindow))
	require.NoError(t, tk.Oracle.Update(tk.Ctx, 1, price, now))

	twap, err := tk.Oracle.GetTWAP(tk.Ctx, 1)
	require.NoError(t, err)
	require.Equal(t, price, twap)
}
