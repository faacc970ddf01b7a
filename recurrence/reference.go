package recurrence

import "math"

// Reference computes the closed-form values 3⁻ʲ for j = 0..n, the
// ground truth both recurrences are measured against.
//
// The power is evaluated in floating point (math.Pow), never through
// either recurrence and never through fixed-width integer
// exponentiation: int64 3ʲ wraps around past j = 39, silently flipping
// sign and corrupting every error computed from it. See
// precision.Pow3Wrap for a demonstration of that failure mode and
// precision.Pow3Big for the exact arbitrary-precision route.
//
// Errors:
//   - ErrNegativeLength — if n < 0.
//
// Complexity: O(n) time, O(n) memory.
func Reference(n int) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	ref := make([]float64, n+1)
	for j := range ref {
		ref[j] = math.Pow(3, -float64(j))
	}

	return ref, nil
}
