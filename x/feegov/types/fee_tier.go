package types

import (
	"encoding/json"
)

// Fee tier bounds, in parts per million of swap input
const (
	MinFeePpm  = 100
	MaxFeePpm  = 100_000
	FeeStepPpm = 100

	// VolumeThresholdUnits is the swap size at which the dynamic fee begins
	// scaling above the base tier, in base token units.
	VolumeThresholdUnits = 1_000_000

	// MaxVolumeMultiplier caps how far volume can scale the dynamic fee.
	MaxVolumeMultiplier = 5
)

// Activity score bounds, in basis points of a neutral multiplier. The score
// folds market volatility and liquidity conditions into the dynamic fee;
// NeutralScoreBps leaves the volume-scaled fee unchanged.
const (
	NeutralScoreBps = 10_000
	MinScoreBps     = 5_000
	MaxScoreBps     = 20_000
)

// ValidateScoreBps checks an activity score against its bounds
func ValidateScoreBps(scoreBps uint64) error {
	if scoreBps < MinScoreBps || scoreBps > MaxScoreBps {
		return ErrInvalidScore.Wrapf("score %d bps outside [%d, %d]", scoreBps, MinScoreBps, MaxScoreBps)
	}
	return nil
}

// ValidateFeePpm reports whether a fee sits on the tier grid:
// within [MinFeePpm, MaxFeePpm] and offset from MinFeePpm by a multiple of
// FeeStepPpm.
func ValidateFeePpm(feePpm uint64) error {
	if feePpm < MinFeePpm || feePpm > MaxFeePpm {
		return ErrInvalidFee.Wrapf("fee %d ppm outside [%d, %d]", feePpm, MinFeePpm, MaxFeePpm)
	}
	if (feePpm-MinFeePpm)%FeeStepPpm != 0 {
		return ErrInvalidFee.Wrapf("fee %d ppm not a multiple of %d from %d", feePpm, FeeStepPpm, MinFeePpm)
	}
	return nil
}

// FeeTier is a catalog entry describing an allowed pool fee.
type FeeTier struct {
	FeePpm      uint64 `json:"fee_ppm"`
	TickSpacing uint64 `json:"tick_spacing"`
	Active      bool   `json:"active"`
	Description string `json:"description"`
}

// Validate performs basic fee tier validation
func (t FeeTier) Validate() error {
	if err := ValidateFeePpm(t.FeePpm); err != nil {
		return err
	}
	if t.TickSpacing == 0 {
		return ErrInvalidTickSpacing.Wrap("tick spacing must be positive")
	}
	return nil
}

// Marshal serializes the fee tier to bytes
func (t FeeTier) Marshal() ([]byte, error) {
	return json.Marshal(t)
}

// Unmarshal deserializes the fee tier from bytes
func (t *FeeTier) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, t)
}
