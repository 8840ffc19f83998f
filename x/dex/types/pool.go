package types

import (
	"encoding/json"

	"cosmossdk.io/math"
)

// FeeDenominator is the parts-per-million base for swap fees.
const FeeDenominator = 1_000_000

// MinimumLiquidityShares returns the amount of shares permanently locked in a
// pool on the first deposit. Locking a floor defangs first-depositor price
// manipulation: the attacker can no longer own 100% of a dust-sized pool.
func MinimumLiquidityShares() math.Int {
	return math.NewInt(1000)
}

// Pool is a constant-product liquidity pool over a canonical token pair.
// TokenA sorts lexicographically before TokenB.
type Pool struct {
	Id          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	FeePpm      uint64   `json:"fee_ppm"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	HookId      string   `json:"hook_id,omitempty"`
}

// OrderTokens returns the pair in canonical (lexicographic) order.
func OrderTokens(tokenA, tokenB string) (string, string) {
	if tokenA > tokenB {
		return tokenB, tokenA
	}
	return tokenA, tokenB
}

// Initialized reports whether the pool has received its first deposit.
func (p Pool) Initialized() bool {
	return !p.TotalShares.IsNil() && p.TotalShares.IsPositive()
}

// HasToken reports whether denom is one of the pool's pair.
func (p Pool) HasToken(denom string) bool {
	return denom == p.TokenA || denom == p.TokenB
}

// OtherToken returns the counterpart of denom in the pair.
// Callers must check HasToken first.
func (p Pool) OtherToken(denom string) string {
	if denom == p.TokenA {
		return p.TokenB
	}
	return p.TokenA
}

// Validate checks structural pool invariants.
func (p Pool) Validate() error {
	if p.TokenA == p.TokenB {
		return ErrIdenticalTokens
	}
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidInput.Wrap("token denoms cannot be empty")
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidInput.Wrapf("tokens out of canonical order: %s > %s", p.TokenA, p.TokenB)
	}
	if p.FeePpm >= FeeDenominator {
		return ErrInvalidFee.Wrapf("fee %d ppm exceeds denominator", p.FeePpm)
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("nil reserve or share total")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("negative reserve or share total")
	}
	return nil
}

// Marshal encodes the pool for state storage.
func (p *Pool) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Unmarshal decodes a pool from its state representation.
func (p *Pool) Unmarshal(bz []byte) error {
	return json.Unmarshal(bz, p)
}

// Position is a liquidity provider's share claim on a pool. Positions are
// fungible: the sum of all position shares equals the pool's TotalShares.
type Position struct {
	PoolId   uint64   `json:"pool_id"`
	Provider string   `json:"provider"`
	Shares   math.Int `json:"shares"`
}
