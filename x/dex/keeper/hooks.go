package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/dex/types"
)

// RegisterHook adds a hook implementation under id with its declared
// permission set. Hooks are wired at application setup, before any pool
// references them.
func (k Keeper) RegisterHook(id string, hook types.PoolHook, perms types.HookPermissions) error {
	if id == "" {
		return types.ErrInvalidInput.Wrap("hook id cannot be empty")
	}
	if hook == nil {
		return types.ErrInvalidInput.Wrap("hook implementation cannot be nil")
	}
	if _, ok := k.hooks[id]; ok {
		return types.ErrHookExists.Wrap(id)
	}

	k.hooks[id] = registeredHook{hook: hook, perms: perms}
	return nil
}

// GetHookPermissions returns the registry's permission record for a hook.
// A missing registration is an error: permission checks fail closed.
func (k Keeper) GetHookPermissions(id string) (types.HookPermissions, error) {
	reg, ok := k.hooks[id]
	if !ok {
		return types.HookPermissions{}, types.ErrHookNotRegistered.Wrap(id)
	}
	return reg.perms, nil
}

// dispatchHook invokes the pool's hook at the given lifecycle point.
// Pools without a hook skip dispatch entirely. A pool referencing an
// unregistered hook aborts the operation: an unverifiable permission set is
// treated as a denial, not a pass.
func (k Keeper) dispatchHook(ctx sdk.Context, point types.HookPoint, pool types.Pool, delta *types.StateDelta) error {
	if pool.HookId == "" {
		return nil
	}

	reg, ok := k.hooks[pool.HookId]
	if !ok {
		return types.ErrHookNotRegistered.Wrapf("pool %d references hook %q", pool.Id, pool.HookId)
	}

	if !reg.perms.Allows(point) {
		return nil
	}

	if err := reg.hook.OnPoolEvent(ctx, point, pool, delta); err != nil {
		return types.ErrHookFailed.Wrapf("%s: %v", point, err)
	}
	return nil
}
