package types

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxTotalBps is the ceiling on the sum of active revenue share percentages.
const MaxTotalBps = 10_000

// RevenueShare routes a percentage of distributed protocol revenue to a
// recipient. TotalClaimed accumulates across all denoms by count of base
// units paid out.
type RevenueShare struct {
	Recipient     string   `json:"recipient"`
	PercentageBps uint64   `json:"percentage_bps"`
	Active        bool     `json:"active"`
	TotalClaimed  math.Int `json:"total_claimed"`
}

// Validate performs basic revenue share validation
func (r RevenueShare) Validate() error {
	if _, err := sdk.AccAddressFromBech32(r.Recipient); err != nil {
		return ErrZeroAddress.Wrapf("recipient %q: %v", r.Recipient, err)
	}
	if r.PercentageBps == 0 || r.PercentageBps > MaxTotalBps {
		return ErrInvalidShares.Wrapf("percentage %d bps outside (0, %d]", r.PercentageBps, MaxTotalBps)
	}
	if r.TotalClaimed.IsNil() || r.TotalClaimed.IsNegative() {
		return ErrInvalidInput.Wrap("total claimed must be non-negative")
	}
	return nil
}

// Marshal serializes the revenue share to bytes
func (r RevenueShare) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Unmarshal deserializes the revenue share from bytes
func (r *RevenueShare) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, r)
}
