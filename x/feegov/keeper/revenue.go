package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/feegov/types"
)

// SetRevenueShare sets or replaces a recipient's revenue share. The sum of
// active percentages across all recipients must stay within 10,000 bps.
//
// Errors: ErrZeroAddress, ErrInvalidShares.
func (k Keeper) SetRevenueShare(ctx context.Context, share types.RevenueShare) error {
	if err := share.Validate(); err != nil {
		return err
	}

	recipient, err := sdk.AccAddressFromBech32(share.Recipient)
	if err != nil {
		return types.ErrZeroAddress.Wrapf("recipient: %v", err)
	}

	// Preserve the claim counter across replacements.
	if existing, found, err := k.GetRevenueShare(ctx, recipient); err != nil {
		return err
	} else if found {
		share.TotalClaimed = existing.TotalClaimed
	}

	if share.Active {
		total := share.PercentageBps
		err := k.IterateRevenueShares(ctx, func(other types.RevenueShare) bool {
			if other.Active && other.Recipient != share.Recipient {
				total += other.PercentageBps
			}
			return false
		})
		if err != nil {
			return err
		}
		if total > types.MaxTotalBps {
			return types.ErrInvalidShares.Wrapf("active shares would total %d bps", total)
		}
	}

	bz, err := share.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.RevenueShareKey(recipient), bz)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRevenueShareSet,
			sdk.NewAttribute(types.AttributeKeyRecipient, share.Recipient),
			sdk.NewAttribute(types.AttributeKeyBps, math.NewIntFromUint64(share.PercentageBps).String()),
		),
	)
	return nil
}

// GetRevenueShare retrieves a recipient's revenue share
func (k Keeper) GetRevenueShare(ctx context.Context, recipient sdk.AccAddress) (types.RevenueShare, bool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.RevenueShareKey(recipient))
	if bz == nil {
		return types.RevenueShare{}, false, nil
	}

	var share types.RevenueShare
	if err := share.Unmarshal(bz); err != nil {
		return types.RevenueShare{}, false, err
	}
	return share, true, nil
}

// IterateRevenueShares iterates over all revenue shares
func (k Keeper) IterateRevenueShares(ctx context.Context, cb func(share types.RevenueShare) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.RevenueShareKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var share types.RevenueShare
		if err := share.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(share) {
			break
		}
	}
	return nil
}

// SetDistributionPaused toggles the revenue distribution circuit breaker
func (k Keeper) SetDistributionPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	if paused {
		store.Set(types.DistributionPausedKey, []byte{1})
	} else {
		store.Delete(types.DistributionPausedKey)
	}
}

// IsDistributionPaused reports whether revenue distribution is paused
func (k Keeper) IsDistributionPaused(ctx context.Context) bool {
	return k.getStore(ctx).Has(types.DistributionPausedKey)
}

// DistributeRevenue pulls amount of denom from the payer and pays each
// active recipient its bps slice, floored. The floored remainder stays on
// the module account. Distribution is guarded against reentry through token
// transfer callbacks and can be paused by the authority.
//
// Errors: ErrZeroAmount, ErrDistributionPaused, ErrDistributionLocked.
func (k Keeper) DistributeRevenue(ctx context.Context, payer sdk.AccAddress, denom string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount
	}
	if payer.Empty() {
		return types.ErrZeroAddress.Wrap("payer")
	}
	if k.IsDistributionPaused(ctx) {
		return types.ErrDistributionPaused
	}

	store := k.getStore(ctx)
	if store.Has(types.DistributionLockKey) {
		return types.ErrDistributionLocked
	}
	store.Set(types.DistributionLockKey, []byte{1})
	defer store.Delete(types.DistributionLockKey)

	moduleAddr := k.GetModuleAddress()
	if err := k.bankKeeper.SendCoins(ctx, payer, moduleAddr,
		sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
		return err
	}

	var shares []types.RevenueShare
	err := k.IterateRevenueShares(ctx, func(share types.RevenueShare) bool {
		if share.Active {
			shares = append(shares, share)
		}
		return false
	})
	if err != nil {
		return err
	}

	for i := range shares {
		payout := amount.MulRaw(int64(shares[i].PercentageBps)).QuoRaw(types.MaxTotalBps)
		if payout.IsZero() {
			continue
		}

		recipient, err := sdk.AccAddressFromBech32(shares[i].Recipient)
		if err != nil {
			return types.ErrZeroAddress.Wrapf("recipient %q: %v", shares[i].Recipient, err)
		}
		if err := k.bankKeeper.SendCoins(ctx, moduleAddr, recipient,
			sdk.NewCoins(sdk.NewCoin(denom, payout))); err != nil {
			return err
		}

		shares[i].TotalClaimed = shares[i].TotalClaimed.Add(payout)
		bz, err := shares[i].Marshal()
		if err != nil {
			return err
		}
		store.Set(types.RevenueShareKey(recipient), bz)
	}

	if err := k.addDistributedTotal(ctx, denom, amount); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRevenueDistributed,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// GetDistributedTotal returns the lifetime amount of a denom routed through
// DistributeRevenue.
func (k Keeper) GetDistributedTotal(ctx context.Context, denom string) (math.Int, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.TotalDistributedKey(denom))
	if bz == nil {
		return math.ZeroInt(), nil
	}

	var total math.Int
	if err := total.Unmarshal(bz); err != nil {
		return math.ZeroInt(), err
	}
	return total, nil
}

func (k Keeper) addDistributedTotal(ctx context.Context, denom string, amount math.Int) error {
	total, err := k.GetDistributedTotal(ctx, denom)
	if err != nil {
		return err
	}

	bz, err := total.Add(amount).Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.TotalDistributedKey(denom), bz)
	return nil
}

// SetDistributedTotal sets a denom's distribution counter, used on genesis
// import.
func (k Keeper) SetDistributedTotal(ctx context.Context, denom string, amount math.Int) error {
	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.TotalDistributedKey(denom), bz)
	return nil
}
