package precision

import "math"

// MachineEpsilon computes the float64 machine epsilon by the classic
// halving loop: the largest power of two whose addition to 1 is still
// distinguishable from 1. The result equals 2⁻⁵² (≈ 2.22e-16).
//
// Complexity: O(1) — 52 iterations.
func MachineEpsilon() float64 {
	eps := 1.0
	for 1.0+eps/2 > 1.0 {
		eps /= 2
	}

	return eps
}

// Spacing returns the gap between x and the next representable float64
// toward +∞. Near 1 this is machine epsilon; it doubles with every
// power-of-two boundary crossed.
func Spacing(x float64) float64 {
	return math.Nextafter(x, math.Inf(1)) - x
}

// Cancellation evaluates 1−cos(x) two ways and returns both: the naive
// subtraction, which loses roughly half its digits for small x because
// cos(x) ≈ 1, and the stable half-angle form 2·sin²(x/2), which keeps
// full precision.
//
// The difference of the two results, divided by the stable one, is a
// direct measurement of catastrophic cancellation.
func Cancellation(x float64) (naive, stable float64) {
	naive = 1 - math.Cos(x)
	s := math.Sin(x / 2)
	stable = 2 * s * s

	return naive, stable
}
