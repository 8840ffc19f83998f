package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/feegov/types"
)

// AddFeeTier adds a tier to the catalog. Called by the authority directly or
// by an executed proposal.
//
// Errors: ErrInvalidFee, ErrInvalidTickSpacing, ErrFeeTierExists.
func (k Keeper) AddFeeTier(ctx context.Context, tier types.FeeTier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	if _, found, err := k.GetFeeTier(ctx, tier.FeePpm); err != nil {
		return err
	} else if found {
		return types.ErrFeeTierExists.Wrapf("tier %d ppm", tier.FeePpm)
	}

	if err := k.SetFeeTier(ctx, tier); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeFeeTierAdded,
			sdk.NewAttribute(types.AttributeKeyFeePpm, fmt.Sprintf("%d", tier.FeePpm)),
		),
		sdk.NewEvent(
			types.EventTypeFeeUpdated,
			sdk.NewAttribute(types.AttributeKeyFeePpm, fmt.Sprintf("%d", tier.FeePpm)),
		),
	})
	return nil
}

// GetFeeTier retrieves a fee tier by its ppm value
func (k Keeper) GetFeeTier(ctx context.Context, feePpm uint64) (types.FeeTier, bool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.FeeTierKey(feePpm))
	if bz == nil {
		return types.FeeTier{}, false, nil
	}

	var tier types.FeeTier
	if err := tier.Unmarshal(bz); err != nil {
		return types.FeeTier{}, false, err
	}
	return tier, true, nil
}

// SetFeeTier stores a fee tier
func (k Keeper) SetFeeTier(ctx context.Context, tier types.FeeTier) error {
	bz, err := tier.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.FeeTierKey(tier.FeePpm), bz)
	return nil
}

// IterateFeeTiers iterates over the tier catalog in ascending fee order.
func (k Keeper) IterateFeeTiers(ctx context.Context, cb func(tier types.FeeTier) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.FeeTierKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var tier types.FeeTier
		if err := tier.Unmarshal(iterator.Value()); err != nil {
			return err
		}
		if cb(tier) {
			break
		}
	}
	return nil
}

// ValidateFee checks that a fee sits on the tier grid. This is the stateless
// bound-and-step check; it does not require a catalog entry, so pools can use
// any grid fee even before governance lists it.
func (k Keeper) ValidateFee(ctx context.Context, feePpm uint64) error {
	return types.ValidateFeePpm(feePpm)
}

// GetActivityScore returns the market activity score in basis points. An
// unset score reads as NeutralScoreBps.
func (k Keeper) GetActivityScore(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.ActivityScoreKey)
	if bz == nil {
		return types.NeutralScoreBps
	}
	return binary.BigEndian.Uint64(bz)
}

// SetActivityScore stores the market activity score and emits a fee update
// event, since every dynamic fee derives from it.
//
// Errors: ErrInvalidScore.
func (k Keeper) SetActivityScore(ctx context.Context, scoreBps uint64) error {
	if err := types.ValidateScoreBps(scoreBps); err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ActivityScoreKey, binary.BigEndian.AppendUint64(nil, scoreBps))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeUpdated,
			sdk.NewAttribute(types.AttributeKeyScoreBps, fmt.Sprintf("%d", scoreBps)),
		),
	)
	return nil
}

// CalculateFee returns the effective fee in ppm for a trade of the given
// size against a pool using baseFeePpm. The base fee scales linearly with
// trade volume above VolumeThresholdUnits, capped at MaxVolumeMultiplier,
// then scales by the stored activity score. The result is clamped to
// [MinFeePpm, MaxFeePpm].
//
// Errors: ErrInvalidFee when the stored base fee is off the tier grid.
func (k Keeper) CalculateFee(ctx context.Context, baseFeePpm uint64, amount math.Int) (uint64, error) {
	if err := types.ValidateFeePpm(baseFeePpm); err != nil {
		return 0, err
	}

	scaled := math.NewIntFromUint64(baseFeePpm)
	if !amount.IsNil() && amount.IsPositive() {
		// multiplier = 1 + amount/threshold, capped
		multiplier := amount.QuoRaw(types.VolumeThresholdUnits).AddRaw(1)
		if multiplier.GT(math.NewInt(types.MaxVolumeMultiplier)) {
			multiplier = math.NewInt(types.MaxVolumeMultiplier)
		}
		scaled = scaled.Mul(multiplier)
	}

	score := k.GetActivityScore(ctx)
	scaled = scaled.MulRaw(int64(score)).QuoRaw(types.NeutralScoreBps)

	if scaled.LT(math.NewInt(types.MinFeePpm)) {
		return types.MinFeePpm, nil
	}
	if scaled.GT(math.NewInt(types.MaxFeePpm)) {
		return types.MaxFeePpm, nil
	}
	return scaled.Uint64(), nil
}
