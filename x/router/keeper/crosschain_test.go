package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/router/types"
)

func crossChainMsg(sender sdk.AccAddress, amountIn int64, fee sdk.Coin) *types.MsgExecuteCrossChainRoute {
	return &types.MsgExecuteCrossChainRoute{
		Sender:       sender.String(),
		TokenIn:      "uatom",
		TokenOut:     "umrd",
		AmountIn:     math.NewInt(amountIn),
		AmountOutMin: math.ZeroInt(),
		Recipient:    "osmo1recipient",
		SrcChain:     keepertest.LocalChainID,
		DstChain:     "osmosis-1",
		Fee:          fee,
	}
}

func TestCrossChainRoute(t *testing.T) {
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

	require.Equal(t, types.RouteDispatched, route.Status)
	require.Len(t, route.Hops, 1)
	require.Equal(t, "mock/1", route.Hops[0].Handle)

	// The local leg swapped the escrow into the output token.
	require.Equal(t, "umrd", route.EscrowToken)
	require.Equal(t, math.NewInt(996), route.EscrowAmount)

	// The relay saw the destination payload.
	require.Len(t, relay.Dispatched, 1)
	var payload types.SwapPayload
	require.NoError(t, payload.Unmarshal(relay.Dispatched[0]))
	require.Equal(t, route.Id, payload.RouteId)
	require.Equal(t, "umrd", payload.TokenOut)
	require.Equal(t, "osmo1recipient", payload.Recipient)

	// Sender is fully debited; the module escrows proceeds plus the fee.
	require.True(t, tk.Bank.Balance(sender, "uatom").IsZero())
	require.True(t, tk.Bank.Balance(sender, "umrd").IsZero())
	moduleAddr := tk.Router.GetModuleAddress()
	require.Equal(t, math.NewInt(996+50), tk.Bank.Balance(moduleAddr, "umrd"))

	stored, err := tk.Router.GetRoute(tk.Ctx, route.Id)
	require.NoError(t, err)
	require.Equal(t, route, stored)
}

func TestCrossChainRouteFeeGate(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")

	relay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(50)))
	require.NoError(t, tk.Router.RegisterAdapter("osmosis-1", relay))

	sender := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1000)),
		sdk.NewCoin("umrd", math.NewInt(49)),
	))

	// Short fee: rejected before a single token moves.
	_, err := tk.Router.ExecuteCrossChainRoute(tk.Ctx, crossChainMsg(sender, 1000, sdk.NewCoin("umrd", math.NewInt(49))))
	require.ErrorIs(t, err, types.ErrInsufficientFee)
	require.Empty(t, tk.Bank.Transfers)

	// Wrong denom fails the same gate.
	_, err = tk.Router.ExecuteCrossChainRoute(tk.Ctx, crossChainMsg(sender, 1000, sdk.NewCoin("uatom", math.NewInt(50))))
	require.ErrorIs(t, err, types.ErrInsufficientFee)
	require.Empty(t, tk.Bank.Transfers)
}

func TestCrossChainRouteVolumeScalesFee(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")

	relay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(50)))
	require.NoError(t, tk.Router.RegisterAdapter("osmosis-1", relay))

	sender := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(2_500_000)),
		sdk.NewCoin("umrd", math.NewInt(150)),
	))

	// 2.5M input triples the relay fee: 50 becomes 150.
	_, err := tk.Router.ExecuteCrossChainRoute(tk.Ctx, crossChainMsg(sender, 2_500_000, sdk.NewCoin("umrd", math.NewInt(149))))
	require.ErrorIs(t, err, types.ErrInsufficientFee)

	route, err := tk.Router.ExecuteCrossChainRoute(tk.Ctx, crossChainMsg(sender, 2_500_000, sdk.NewCoin("umrd", math.NewInt(150))))
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoin("umrd", math.NewInt(150)), route.FeePaid)
}

func TestCrossChainRouteChainValidation(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	relay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(50)))
	require.NoError(t, tk.Router.RegisterAdapter("osmosis-1", relay))

	sender := tk.FundedAccount(1, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	msg := crossChainMsg(sender, 1000, sdk.NewCoin("umrd", math.NewInt(50)))
	msg.SrcChain = "osmosis-1"
	_, err := tk.Router.ExecuteCrossChainRoute(tk.Ctx, msg)
	require.ErrorIs(t, err, types.ErrInvalidSrcChain)

	msg = crossChainMsg(sender, 1000, sdk.NewCoin("umrd", math.NewInt(50)))
	msg.DstChain = "unknown-1"
	_, err = tk.Router.ExecuteCrossChainRoute(tk.Ctx, msg)
	require.ErrorIs(t, err, types.ErrInvalidDstChain)
}

func TestCrossChainRouteDispatchRejected(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")

	relay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(50)))
	relay.FailDispatch = true
	require.NoError(t, tk.Router.RegisterAdapter("osmosis-1", relay))

	sender := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1000)),
		sdk.NewCoin("umrd", math.NewInt(50)),
	))

	_, err := tk.Router.ExecuteCrossChainRoute(tk.Ctx, crossChainMsg(sender, 1000, sdk.NewCoin("umrd", math.NewInt(50))))
	require.ErrorIs(t, err, types.ErrBridgeOperationFailed)

	// Nothing was persisted for the aborted route.
	_, err = tk.Router.GetRoute(tk.Ctx, 1)
	require.ErrorIs(t, err, types.ErrRouteNotFound)
}

func TestCrossChainRouteWithoutLocalPool(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	relay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(50)))
	require.NoError(t, tk.Router.RegisterAdapter("osmosis-1", relay))

	sender := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1000)),
		sdk.NewCoin("umrd", math.NewInt(50)),
	))

	// No uatom/umrd pool exists: the input itself travels as escrow.
	route, err := tk.Router.ExecuteCrossChainRoute(tk.Ctx, crossChainMsg(sender, 1000, sdk.NewCoin("umrd", math.NewInt(50))))
	require.NoError(t, err)
	require.Equal(t, types.RouteDispatched, route.Status)
	require.Equal(t, "uatom", route.EscrowToken)
	require.Equal(t, math.NewInt(1000), route.EscrowAmount)
}

func TestMultiPathRoute(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)
	seedPool(t, tk, 10, "uatom", "umrd")

	osmoRelay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(50)))
	junoRelay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(30)))
	require.NoError(t, tk.Router.RegisterAdapter("osmosis-1", osmoRelay))
	require.NoError(t, tk.Router.RegisterAdapter("juno-1", junoRelay))

	sender := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1000)),
		sdk.NewCoin("umrd", math.NewInt(80)),
	))

	msg := &types.MsgExecuteMultiPathRoute{
		Sender:   sender.String(),
		TokenIn:  "uatom",
		AmountIn: math.NewInt(1000),
		Hops: []types.ChainHop{
			{ChainId: "osmosis-1", TokenOut: "umrd", AmountOutMin: math.ZeroInt()},
			{ChainId: "juno-1", TokenOut: "ujuno", AmountOutMin: math.ZeroInt()},
		},
		Recipient: "juno1recipient",
		Fee:       sdk.NewCoin("umrd", math.NewInt(80)),
	}

	route, err := tk.Router.ExecuteMultiPathRoute(tk.Ctx, msg)
	require.NoError(t, err)

	require.Equal(t, types.RouteDispatched, route.Status)
	require.Equal(t, "juno-1", route.DstChain)
	require.Equal(t, "ujuno", route.TokenOut)
	require.Len(t, route.Hops, 2)

	// The intermediate leg is addressed onward; only the last leg names the
	// caller's recipient.
	require.Equal(t, []string{"juno-1"}, osmoRelay.Recipients)
	require.Equal(t, []string{"juno1recipient"}, junoRelay.Recipients)

	// The first hop's pool served the local leg.
	require.Equal(t, "umrd", route.EscrowToken)
	require.Equal(t, math.NewInt(996), route.EscrowAmount)
}

func TestMultiPathRouteFeeValidation(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	osmoRelay := keepertest.NewMockRelayAdapter(sdk.NewCoin("umrd", math.NewInt(50)))
	junoRelay := keepertest.NewMockRelayAdapter(sdk.NewCoin("ujuno", math.NewInt(30)))
	require.NoError(t, tk.Router.RegisterAdapter("osmosis-1", osmoRelay))
	require.NoError(t, tk.Router.RegisterAdapter("juno-1", junoRelay))

	sender := tk.FundedAccount(1, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1000))))

	msg := &types.MsgExecuteMultiPathRoute{
		Sender:   sender.String(),
		TokenIn:  "uatom",
		AmountIn: math.NewInt(1000),
		Hops: []types.ChainHop{
			{ChainId: "osmosis-1", TokenOut: "umrd", AmountOutMin: math.ZeroInt()},
			{ChainId: "juno-1", TokenOut: "ujuno", AmountOutMin: math.ZeroInt()},
		},
		Recipient: "juno1recipient",
		Fee:       sdk.NewCoin("umrd", math.NewInt(80)),
	}

	// Relays quoting different fee denoms cannot be summed.
	_, err := tk.Router.ExecuteMultiPathRoute(tk.Ctx, msg)
	require.ErrorIs(t, err, types.ErrInvalidInput)

	// Unknown hop chain.
	msg.Hops[1].ChainId = "unknown-1"
	_, err = tk.Router.ExecuteMultiPathRoute(tk.Ctx, msg)
	require.ErrorIs(t, err, types.ErrInvalidDstChain)

	// An empty chain path is rejected outright.
	msg.Hops = nil
	_, err = tk.Router.ExecuteMultiPathRoute(tk.Ctx, msg)
	require.ErrorIs(t, err, types.ErrInvalidPath)
}
