package keeper

import (
	"context"

	"github.com/meridian-chain/meridian/x/dex/types"
)

// acquirePoolLock takes the per-pool exclusive lock for the duration of a
// mutating call. The host executes calls atomically, but token transfers can
// trigger callbacks into the module; the lock turns any such reentry into a
// deterministic ErrPoolLocked failure. The returned release function must be
// deferred by the caller.
func (k Keeper) acquirePoolLock(ctx context.Context, poolID uint64) (func(), error) {
	store := k.getStore(ctx)
	key := types.PoolLockKey(poolID)

	if store.Has(key) {
		return nil, types.ErrPoolLocked.Wrapf("pool %d", poolID)
	}

	store.Set(key, []byte{1})
	return func() { store.Delete(key) }, nil
}
