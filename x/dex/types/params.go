package types

import (
	"encoding/json"

	"cosmossdk.io/math"
)

// Params holds the dex module parameters.
type Params struct {
	// MinInitialDeposit is the smallest geometric-mean deposit accepted when
	// a pool is first funded. Must exceed the locked minimum liquidity.
	MinInitialDeposit math.Int `json:"min_initial_deposit"`
	// DefaultFeePpm is the pool fee applied when the creator does not select
	// a fee tier explicitly.
	DefaultFeePpm uint64 `json:"default_fee_ppm"`
}

// DefaultParams returns the default dex parameters.
func DefaultParams() Params {
	return Params{
		MinInitialDeposit: math.NewInt(2000),
		DefaultFeePpm:     3000, // 0.3%
	}
}

// Validate checks parameter sanity.
func (p Params) Validate() error {
	if p.MinInitialDeposit.IsNil() || !p.MinInitialDeposit.GT(MinimumLiquidityShares()) {
		return ErrInvalidInput.Wrap("min initial deposit must exceed locked minimum liquidity")
	}
	if p.DefaultFeePpm >= FeeDenominator {
		return ErrInvalidFee.Wrapf("default fee %d ppm exceeds denominator", p.DefaultFeePpm)
	}
	return nil
}

// Marshal encodes the params for state storage.
func (p *Params) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal decodes params from state.
func (p *Params) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, p)
}
