package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/meridian-chain/meridian/testutil/keeper"
	dexkeeper "github.com/meridian-chain/meridian/x/dex/keeper"
	"github.com/meridian-chain/meridian/x/dex/types"
)

// reentrantHook tries to swap against its own pool from inside a lifecycle
// point, capturing the inner error.
type reentrantHook struct {
	dex      dexkeeper.Keeper
	poolID   uint64
	trader   sdk.AccAddress
	innerErr error
}

func (h *reentrantHook) OnPoolEvent(ctx sdk.Context, point types.HookPoint, pool types.Pool, delta *types.StateDelta) error {
	if point == types.HookBeforeSwap {
		_, h.innerErr = h.dex.Swap(ctx, h.trader, h.poolID, "uatom", math.NewInt(100), math.OneInt(), h.trader)
	}
	return nil
}

func TestPoolLockBlocksReentry(t *testing.T) {
	tk := keepertest.NewTestKeepers(t)

	hook := &reentrantHook{dex: tk.Dex}
	require.NoError(t, tk.Dex.RegisterHook("reentrant", hook, types.HookPermissions{BeforeSwap: true}))

	provider := tk.FundedAccount(1, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(2_000_000)),
		sdk.NewCoin("umrd", math.NewInt(2_000_000)),
	))

	pool, err := tk.Dex.CreatePool(tk.Ctx, provider, "uatom", "umrd", 3000, "reentrant")
	require.NoError(t, err)
	_, err = tk.Dex.AddLiquidity(tk.Ctx, provider, pool.Id, math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	hook.poolID = pool.Id
	hook.trader = provider

	// The outer swap succeeds; the nested one bounced off the pool lock.
	_, err = tk.Dex.Swap(tk.Ctx, provider, pool.Id, "uatom", math.NewInt(1000), math.OneInt(), provider)
	require.NoError(t, err)
	require.ErrorIs(t, hook.innerErr, types.ErrPoolLocked)
}

func TestPoolLockReleased(t *testing.T) {
	tk, _, poolID := setupPool(t, 1_000_000, 1_000_000)

	trader := tk.FundedAccount(2, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(2000))))

	// Back-to-back operations reacquire the lock cleanly.
	_, err := tk.Dex.Swap(tk.Ctx, trader, poolID, "uatom", math.NewInt(1000), math.OneInt(), trader)
	require.NoError(t, err)
	_, err = tk.Dex.Swap(tk.Ctx, trader, poolID, "uatom", math.NewInt(1000), math.OneInt(), trader)
	require.NoError(t, err)
}
