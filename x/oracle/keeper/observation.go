package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/meridian-chain/meridian/x/oracle/types"
)

// GetAccumulator retrieves a pool's latest price accumulator.
func (k Keeper) GetAccumulator(ctx context.Context, poolID uint64) (types.Accumulator, bool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.LatestKey(poolID))
	if bz == nil {
		return types.Accumulator{}, false, nil
	}

	var acc types.Accumulator
	if err := acc.Unmarshal(bz); err != nil {
		return types.Accumulator{}, false, err
	}
	return acc, true, nil
}

// SetAccumulator stores a pool's latest price accumulator.
func (k Keeper) SetAccumulator(ctx context.Context, poolID uint64, acc types.Accumulator) error {
	bz, err := acc.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.LatestKey(poolID), bz)
	return nil
}

// GetObservation retrieves one slot of a pool's circular buffer.
func (k Keeper) GetObservation(ctx context.Context, poolID uint64, slot uint16) (types.Observation, bool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ObservationKey(poolID, slot))
	if bz == nil {
		return types.Observation{}, false, nil
	}

	var obs types.Observation
	if err := obs.Unmarshal(bz); err != nil {
		return types.Observation{}, false, err
	}
	return obs, true, nil
}

// SetObservation stores one slot of a pool's circular buffer.
func (k Keeper) SetObservation(ctx context.Context, poolID uint64, obs types.Observation) error {
	bz, err := obs.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.ObservationKey(poolID, types.SlotIndex(obs.Timestamp)), bz)
	return nil
}

// Update records a spot price observation for a pool. The running integral
// grows by the previous price held over the elapsed interval, then the slot
// at timestamp mod BufferSize is overwritten with the new cumulative value.
// Overwriting, rather than adding onto whatever stale value occupies a reused
// slot, keeps the integral monotone across buffer wraps.
//
// Observations must be monotone in time per pool; several updates in the
// same second collapse onto one slot, last write wins.
func (k Keeper) Update(ctx context.Context, poolID uint64, price math.LegacyDec, timestamp int64) error {
	if price.IsNil() || price.IsNegative() {
		return types.ErrInvalidPrice.Wrapf("pool %d", poolID)
	}
	if timestamp < 0 {
		return types.ErrInvalidTimestamp.Wrapf("timestamp %d", timestamp)
	}

	acc, found, err := k.GetAccumulator(ctx, poolID)
	if err != nil {
		return err
	}

	if !found {
		acc = types.Accumulator{
			Timestamp:       timestamp,
			Price:           price,
			CumulativePrice: math.LegacyZeroDec(),
		}
	} else {
		if timestamp < acc.Timestamp {
			return types.ErrInvalidTimestamp.Wrapf(
				"observation at %d precedes latest at %d", timestamp, acc.Timestamp)
		}

		elapsed := timestamp - acc.Timestamp
		acc.CumulativePrice = acc.CumulativePrice.Add(acc.Price.MulInt64(elapsed))
		acc.Price = price
		acc.Timestamp = timestamp
	}

	if err := k.SetAccumulator(ctx, poolID, acc); err != nil {
		return err
	}
	return k.SetObservation(ctx, poolID, types.Observation{
		Timestamp:       timestamp,
		CumulativePrice: acc.CumulativePrice,
	})
}

// GetTWAP returns the time-weighted average price over the default window,
// ending at the current block time.
func (k Keeper) GetTWAP(ctx context.Context, poolID uint64) (math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	return k.GetTWAPWindow(ctx, poolID, now-types.DefaultTWAPWindow, now)
}

// GetTWAPWindow returns the time-weighted average price over [startTime,
// endTime]. Both endpoints must land on recorded observation slots from the
// current buffer era; a slot overwritten by a later wrap fails with
// ErrStaleObservation rather than silently mixing eras. O(1).
func (k Keeper) GetTWAPWindow(ctx context.Context, poolID uint64, startTime, endTime int64) (math.LegacyDec, error) {
	if endTime <= startTime {
		return math.LegacyZeroDec(), types.ErrInvalidWindow.Wrapf("end %d <= start %d", endTime, startTime)
	}
	if endTime-startTime >= types.BufferSize {
		return math.LegacyZeroDec(), types.ErrInvalidWindow.Wrapf(
			"window %d seconds exceeds buffer span %d", endTime-startTime, types.BufferSize)
	}

	_, found, err := k.GetAccumulator(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if !found {
		return math.LegacyZeroDec(), types.ErrNoObservations.Wrapf("pool %d", poolID)
	}

	start, err := k.observationAt(ctx, poolID, startTime)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	end, err := k.observationAt(ctx, poolID, endTime)
	if err != nil {
		return math.LegacyZeroDec(), err
	}

	elapsed := end.Timestamp - start.Timestamp
	if elapsed <= 0 {
		return math.LegacyZeroDec(), types.ErrInvalidWindow.Wrapf(
			"window endpoints collapse to the same observation at %d", end.Timestamp)
	}

	return end.CumulativePrice.Sub(start.CumulativePrice).QuoInt64(elapsed), nil
}

// observationAt reads the slot for a timestamp and verifies it belongs to the
// era the caller asked about.
func (k Keeper) observationAt(ctx context.Context, poolID uint64, timestamp int64) (types.Observation, error) {
	obs, found, err := k.GetObservation(ctx, poolID, types.SlotIndex(timestamp))
	if err != nil {
		return types.Observation{}, err
	}
	if !found {
		return types.Observation{}, types.ErrNoObservations.Wrapf(
			"pool %d has no observation at %d", poolID, timestamp)
	}
	if obs.Timestamp != timestamp {
		return types.Observation{}, types.ErrStaleObservation.Wrapf(
			"slot for %d holds observation from %d", timestamp, obs.Timestamp)
	}
	return obs, nil
}

// GetLatestPrice returns the most recent spot observation for a pool.
func (k Keeper) GetLatestPrice(ctx context.Context, poolID uint64) (math.LegacyDec, error) {
	acc, found, err := k.GetAccumulator(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if !found {
		return math.LegacyZeroDec(), types.ErrNoObservations.Wrapf("pool %d", poolID)
	}
	return acc.Price, nil
}
