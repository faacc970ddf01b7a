package precision

import (
	"math"
	"math/big"
)

// maxPow3Exp is the largest n with 3ⁿ representable in int64:
// 3³⁹ = 4052555153018976267 < 2⁶³−1 < 3⁴⁰.
const maxPow3Exp = 39

// Pow3Float computes 3ⁿ in float64. Negative n yields 3⁻|ⁿ|. The result
// is inexact once 3ⁿ exceeds 2⁵³ (n ≥ 34) but its relative error stays
// at machine-epsilon scale; it never wraps or changes sign.
func Pow3Float(n int) float64 {
	return math.Pow(3, float64(n))
}

// Pow3Int64 computes 3ⁿ exactly in int64, rejecting exponents that do
// not fit instead of wrapping.
//
// Errors:
//   - ErrNegativeExponent — if n < 0.
//   - ErrInt64Overflow    — if n > 39.
//
// Complexity: O(n).
func Pow3Int64(n int) (int64, error) {
	if n < 0 {
		return 0, ErrNegativeExponent
	}
	if n > maxPow3Exp {
		return 0, ErrInt64Overflow
	}
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 3
	}

	return v, nil
}

// Pow3Wrap computes 3ⁿ in int64 with NO overflow check. Past n = 39 the
// product wraps around two's complement and the "power" comes out
// negative, which then corrupts anything downstream that divides by it.
//
// This is the cautionary example: a reference value computed this way
// turns a subtle rounding experiment into nonsense. Use Pow3Float,
// Pow3Int64, or Pow3Big instead; nothing in this module calls Pow3Wrap
// outside of demonstrations.
func Pow3Wrap(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 3
	}

	return v
}

// Pow3Big computes 3ⁿ exactly at arbitrary precision.
//
// Errors:
//   - ErrNegativeExponent — if n < 0.
//
// Complexity: O(n·M(n)) in bit operations; irrelevant at classroom n.
func Pow3Big(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeExponent
	}

	return new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(n)), nil), nil
}
