package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	"github.com/meridian-chain/meridian/x/dex/types"
)

// recordingHook logs every lifecycle point it sees and can be scripted to
// veto one of them.
type recordingHook struct {
	calls  []types.HookPoint
	deltas []*types.StateDelta
	vetoAt types.HookPoint
	veto   bool
}

func (h *recordingHook) OnPoolEvent(ctx sdk.Context, point types.HookPoint, pool types.Pool, delta *types.StateDelta) error {
	h.calls = append(h.calls, point)
	h.deltas = append(h.deltas, delta)
	if h.veto && point == h.vetoAt {
		return errors.New("vetoed")
	}
	return nil
}

func allPermissions() types.HookPermissions {
	return types.HookPermissions{
		BeforeInitialize:     true,
		AfterInitialize:      true,
		BeforeModifyPosition: true,
		AfterModifyPosition:  true,
		BeforeSwap:           true,
		AfterSwap:            true,
		BeforeDonate:         true,
		AfterDonate:          true,
	}
}

func TestHookRegistration(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	hook := &recordingHook{}
	require.NoError(t, tk.Dex.RegisterHook("limiter", hook, allPermissions()))

	// Duplicate ids are rejected.
	require.ErrorIs(t, tk.Dex.RegisterHook("limiter", hook, allPermissions()), types.ErrHookExists)
	require.ErrorIs(t, tk.Dex.RegisterHook("", hook, allPermissions()), types.ErrInvalidInput)
	require.ErrorIs(t, tk.Dex.RegisterHook("nil-hook", nil, allPermissions()), types.ErrInvalidInput)

	perms, err := tk.Dex.GetHookPermissions("limiter")
	require.NoError(t, err)
	require.True(t, perms.Allows(types.HookBeforeSwap))

	_, err = tk.Dex.GetHookPermissions("ghost")
	require.ErrorIs(t, err, types.ErrHookNotRegistered)
}

func TestHookSeesFullLifecycle(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	hook := &recordingHook{}
	require.NoError(t, tk.Dex.RegisterHook("observer", hook, allPermissions()))

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(2_000_000)),
		sdk.NewCoin("umrd", math.NewInt(2_000_000)),
	))

	pool, err := tk.Dex.CreatePool(tk.Ctx, provider, "uatom", "umrd", 3000, "observer")
	require.NoError(t, err)
	_, err = tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	_, err = tk.Dex.Swap(tk.Ctx, provider, pool.Id, "uatom", math.NewInt(1000), math.OneInt(), provider)
	require.NoError(t, err)

	require.Equal(t, []types.HookPoint{
		types.HookBeforeInitialize,
		types.HookAfterInitialize,
		types.HookBeforeModifyPosition,
		types.HookAfterModifyPosition,
		types.HookBeforeSwap,
		types.HookAfterSwap,
	}, hook.calls)

	// Before points carry no delta; after points do.
	require.Nil(t, hook.deltas[4])
	require.NotNil(t, hook.deltas[5])
	require.Equal(t, math.NewInt(1000), hook.deltas[5].AmountIn)
	require.Equal(t, math.NewInt(996), hook.deltas[5].AmountOut)
}

func TestHookPermissionSkips(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	// Subscribed to after-swap only.
	hook := &recordingHook{}
	require.NoError(t, tk.Dex.RegisterHook("after-only", hook, types.HookPermissions{AfterSwap: true}))

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(2_000_000)),
		sdk.NewCoin("umrd", math.NewInt(2_000_000)),
	))

	pool, err := tk.Dex.CreatePool(tk.Ctx, provider, "uatom", "umrd", 3000, "after-only")
	require.NoError(t, err)
	_, err = tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	_, err = tk.Dex.Swap(tk.Ctx, provider, pool.Id, "uatom", math.NewInt(1000), math.OneInt(), provider)
	require.NoError(t, err)

	require.Equal(t, []types.HookPoint{types.HookAfterSwap}, hook.calls)
}

func TestHookVetoBlocksSwap(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	hook := &recordingHook{veto: true, vetoAt: types.HookBeforeSwap}
	require.NoError(t, tk.Dex.RegisterHook("blocker", hook, allPermissions()))

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(2_000_000)),
		sdk.NewCoin("umrd", math.NewInt(2_000_000)),
	))

	pool, err := tk.Dex.CreatePool(tk.Ctx, provider, "uatom", "umrd", 3000, "blocker")
	require.NoError(t, err)
	_, err = tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	_, err = tk.Dex.Swap(tk.Ctx, provider, pool.Id, "uatom", math.NewInt(1000), math.OneInt(), provider)
	require.ErrorIs(t, err, types.ErrHookFailed)

	// The veto left the pool untouched.
	stored, err := tk.Dex.GetPool(tk.Ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), stored.ReserveA)
}

func TestUnregisteredHookFailsClosed(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	// Creating a pool that references a hook nobody registered fails at the
	// first lifecycle point.
	provider := tk.FundedAccount(1, sdk.NewCoins())
	_, err := tk.Dex.CreatePool(tk.Ctx, provider, "uatom", "umrd", 3000, "ghost")
	require.ErrorIs(t, err, types.ErrHookNotRegistered)
}
