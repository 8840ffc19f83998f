package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/meridian-chain/meridian/x/dex/types"
)

// maxSafeBits bounds intermediate results to what math.Int can represent.
const maxSafeBits = 255

func withinBounds(v *big.Int) bool {
	return v.BitLen() <= maxSafeBits
}

// checkedMul multiplies two Ints, failing with ErrOverflow instead of
// panicking when the product leaves the representable range.
func checkedMul(a, b math.Int) (math.Int, error) {
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if !withinBounds(product) {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("mul %s * %s", a, b)
	}
	return math.NewIntFromBigInt(product), nil
}

// checkedAdd adds two Ints with an explicit overflow check.
func checkedAdd(a, b math.Int) (math.Int, error) {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	if !withinBounds(sum) {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("add %s + %s", a, b)
	}
	return math.NewIntFromBigInt(sum), nil
}

// checkedQuo divides a by b, flooring the result. Division by zero is an
// overflow-class error rather than a panic.
func checkedQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("division by zero: %s / 0", a)
	}
	return a.Quo(b), nil
}

// intSqrt returns the exact integer square root (floor) of n.
// big.Int.Sqrt is exact, unlike the decimal ApproxSqrt, so share math stays
// bit-for-bit deterministic across nodes.
func intSqrt(n math.Int) math.Int {
	if n.IsZero() || n.IsNegative() {
		return math.ZeroInt()
	}
	return math.NewIntFromBigInt(new(big.Int).Sqrt(n.BigInt()))
}
