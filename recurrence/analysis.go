package recurrence

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FractionalError computes the elementwise fractional deviation of an
// approximation from the closed-form reference:
//
//	err[j] = |1 − seq[j] / 3⁻ʲ|   for j = 0..len(seq)−1.
//
// The reference 3⁻ʲ is never zero for finite j, so the division is
// always defined. An exact approximation yields exactly 0 (index 0,
// where both sides are the float 1, always does).
//
// Errors:
//   - ErrEmptySequence — if seq is empty.
//
// Complexity: O(n) time, O(n) memory.
func FractionalError(seq []float64) ([]float64, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	ref, err := Reference(len(seq) - 1)
	if err != nil {
		return nil, err
	}
	errs := make([]float64, len(seq))
	floats.DivTo(errs, seq, ref)
	for j := range errs {
		errs[j] = math.Abs(1 - errs[j])
	}

	return errs, nil
}

// Compare runs the full stability experiment over [0,n]: both
// generators, the reference, and both fractional-error sequences.
//
// Errors:
//   - ErrNegativeLength — if n < 0.
//
// Complexity: O(n) time, O(n) memory.
func Compare(n int) (Comparison, error) {
	var (
		c   Comparison
		err error
	)
	if c.P, err = P(n); err != nil {
		return Comparison{}, err
	}
	if c.Q, err = Q(n); err != nil {
		return Comparison{}, err
	}
	if c.Ref, err = Reference(n); err != nil {
		return Comparison{}, err
	}
	if c.ErrP, err = FractionalError(c.P); err != nil {
		return Comparison{}, err
	}
	if c.ErrQ, err = FractionalError(c.Q); err != nil {
		return Comparison{}, err
	}

	return c, nil
}

// GrowthRate estimates the per-step amplification of an error sequence
// over the index window [from,to] by least-squares fitting log(err[j])
// against j and exponentiating the slope.
//
// For the unstable recurrence the estimate approaches 4 (the ratio of
// the parasitic root 4/3 to the wanted root 1/3); for the stable one it
// stays near 3/2, which keeps the absolute error harmless because it
// starts at machine epsilon.
//
// Errors:
//   - ErrBadWindow — if the window is out of range, shorter than two
//     points, or contains a non-positive error value (log undefined).
//
// Complexity: O(to−from) time and memory.
func GrowthRate(errs []float64, from, to int) (float64, error) {
	if from < 0 || to >= len(errs) || to-from < 1 {
		return 0, ErrBadWindow
	}
	xs := make([]float64, 0, to-from+1)
	ys := make([]float64, 0, to-from+1)
	for j := from; j <= to; j++ {
		if errs[j] <= 0 {
			return 0, ErrBadWindow
		}
		xs = append(xs, float64(j))
		ys = append(ys, math.Log(errs[j]))
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)

	return math.Exp(slope), nil
}
