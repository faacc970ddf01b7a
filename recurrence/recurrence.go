package recurrence

// Coefficients of the two recurrences x_j = a1·x_{j−1} + a0·x_{j−2}.
// Both share the characteristic root 1/3 (the wanted solution); they
// differ in the second, parasitic root.
const (
	pCoef1 = 5.0 / 6.0  // P: roots 1/3 and 1/2 — parasitic mode decays
	pCoef0 = -1.0 / 6.0 //
	qCoef1 = 5.0 / 3.0  // Q: roots 1/3 and 4/3 — parasitic mode grows
	qCoef0 = -4.0 / 9.0 //

	seed0 = 1.0       // x_0 = 3⁰
	seed1 = 1.0 / 3.0 // x_1 = 3⁻¹
)

// P — stable three-term recurrence for 3⁻ʲ.
//
// Description:
//
//	Returns the sequence of length n+1 with seq[0]=1, seq[1]=1/3 and
//
//	  seq[j] = (5/6)·seq[j−1] − (1/6)·seq[j−2]   for j ≥ 2.
//
//	The characteristic roots are 1/3 and 1/2. Rounding errors excite the
//	1/2-mode, but (1/2)ʲ decays, so early errors never amplify: the
//	fractional error stays within a few orders of magnitude of machine
//	epsilon for any practical j.
//
// Edge cases:
//   - n = 0 → [1]
//   - n = 1 → [1, 1/3]
//
// Errors:
//   - ErrNegativeLength — if n < 0.
//
// Complexity: O(n) time, O(n) memory.
func P(n int) ([]float64, error) {
	return evaluate(pCoef1, pCoef0, n)
}

// Q — unstable three-term recurrence for 3⁻ʲ.
//
// Description:
//
//	Same contract and seeds as P, but
//
//	  seq[j] = (5/3)·seq[j−1] − (4/9)·seq[j−2]   for j ≥ 2.
//
//	The characteristic roots are 1/3 and 4/3. The 4/3-mode has zero
//	amplitude analytically, yet the rounding of the seed 1/3 gives it an
//	amplitude near machine epsilon. Relative to the decaying true value
//	3⁻ʲ it then grows by ×4 per step, so the approximation has lost all
//	correct digits by j ≈ 40.
//
// Edge cases and errors: identical to P.
//
// Complexity: O(n) time, O(n) memory.
func Q(n int) ([]float64, error) {
	return evaluate(qCoef1, qCoef0, n)
}

// evaluate runs the generic two-step recurrence with the shared seeds.
// Every value is computed in float64; no integer arithmetic is involved
// anywhere on this path.
func evaluate(a1, a0 float64, n int) ([]float64, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	seq := make([]float64, n+1)
	seq[0] = seed0
	if n == 0 {
		return seq, nil
	}
	seq[1] = seed1
	for j := 2; j <= n; j++ {
		seq[j] = a1*seq[j-1] + a0*seq[j-2]
	}

	return seq, nil
}
