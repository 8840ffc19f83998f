package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/router/types"
)

// dispatchedRoute runs a full cross-chain route so saga tests start from the
// Dispatched state.
func dispatchedRoute(t *testing.T) (*keepertest.TestKeepers, *keepertest.MockRelayAdapter, sdk.AccAddress, *types.Route) {
	t.Helper()
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")

	relay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(50)))
	require.NoError(t, tk.Router.RegisterAdapter("osmosis-1", relay))

	sender := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1000)),
		sdk.NewCoin("umrd", math.NewInt(50)),
	))

	route, err := tk.Router.ExecuteCrossChainRoute(tk.Ctx, crossChainMsg(sender, 1000, sdk.NewCoin("umrd", math.NewInt(50))))
	require.NoError(t, err)

	return tk, relay, sender, route
}

func TestDeliveryConfirmedKeepsEscrow(t *testing.T) {
	tk, relay, sender, route := dispatchedRoute(t)

	require.NoError(t, tk.Router.OnDeliveryResult(tk.Ctx, relay.LastHandle(), true))

	stored, err := tk.Router.GetRoute(tk.Ctx, route.Id)
	require.NoError(t, err)
	require.Equal(t, types.RouteDelivered, stored.Status)

	// A delivered route owes its escrow to the destination, not the sender.
	_, err = tk.Router.RefundRoute(tk.Ctx, sender, route.Id)
	require.ErrorIs(t, err, types.ErrInvalidRouteState)
}

func TestDeliveryFailedRefund(t *testing.T) {
	tk, relay, sender, route := dispatchedRoute(t)

	require.NoError(t, tk.Router.OnDeliveryResult(tk.Ctx, relay.LastHandle(), false))

	stored, err := tk.Router.GetRoute(tk.Ctx, route.Id)
	require.NoError(t, err)
	require.Equal(t, types.RouteFailed, stored.Status)

	// Only the route's sender may claim.
	stranger := tk.FundedAccount(9, sdk.NewCoins())
	_, err = tk.Router.RefundRoute(tk.Ctx, stranger, route.Id)
	require.ErrorIs(t, err, types.ErrInvalidInput)

	refunded, err := tk.Router.RefundRoute(tk.Ctx, sender, route.Id)
	require.NoError(t, err)
	require.Equal(t, route.EscrowAmount, refunded)
	require.Equal(t, route.EscrowAmount, tk.Bank.Balance(sender, route.EscrowToken))

	// Refunds are one-shot.
	_, err = tk.Router.RefundRoute(tk.Ctx, sender, route.Id)
	require.ErrorIs(t, err, types.ErrInvalidRouteState)
}

func TestOnDeliveryResultStateGuards(t *testing.T) {
	tk, relay, _, _ := dispatchedRoute(t)

	require.NoError(t, tk.Router.OnDeliveryResult(tk.Ctx, relay.LastHandle(), true))

	// Terminal states do not transition again.
	err := tk.Router.OnDeliveryResult(tk.Ctx, relay.LastHandle(), false)
	require.ErrorIs(t, err, types.ErrInvalidRouteState)

	err = tk.Router.OnDeliveryResult(tk.Ctx, "mock/404", true)
	require.ErrorIs(t, err, types.ErrRouteNotFound)
}

func TestSyncDeliveryStatus(t *testing.T) {
	tk, relay, _, route := dispatchedRoute(t)

	// Still pending on the relay: no transition.
	synced, err := tk.Router.SyncDeliveryStatus(tk.Ctx, route.Id)
	require.NoError(t, err)
	require.Equal(t, types.RouteDispatched, synced.Status)

	relay.Deliveries[relay.LastHandle()] = types.DeliveryConfirmed
	synced, err = tk.Router.SyncDeliveryStatus(tk.Ctx, route.Id)
	require.NoError(t, err)
	require.Equal(t, types.RouteDelivered, synced.Status)
}

func TestSyncDeliveryStatusFailure(t *testing.T) {
	tk, relay, _, route := dispatchedRoute(t)

	relay.Deliveries[relay.LastHandle()] = types.DeliveryFailed
	synced, err := tk.Router.SyncDeliveryStatus(tk.Ctx, route.Id)
	require.NoError(t, err)
	require.Equal(t, types.RouteFailed, synced.Status)
}

func TestOnRecvSwapPayload(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	recipient := tk.FundedAccount(3, sdk.NewCoins())
	payload := types.SwapPayload{
		RouteId:      7,
		TokenOut:     "umrd",
		AmountOutMin: math.NewInt(100),
		Recipient:    recipient.String(),
	}
	require.NoError(t, tk.Router.OnRecvSwapPayload(tk.Ctx, payload))

	// A recipient this chain cannot parse is rejected.
	payload.Recipient = "osmo1elsewhere"
	err := tk.Router.OnRecvSwapPayload(tk.Ctx, payload)
	require.ErrorIs(t, err, types.ErrZeroAddress)

	payload.Recipient = ""
	err = tk.Router.OnRecvSwapPayload(tk.Ctx, payload)
	require.ErrorIs(t, err, types.ErrInvalidPayload)
}
