package rootfind

import "math"

// Bisect — root finding by interval halving.
//
// Description:
//
//	Given f continuous on [a,b] with f(a)·f(b) < 0, repeatedly halves
//	the interval, keeping the half where the sign changes. The bracket
//	invariant guarantees convergence; each step gains exactly one bit
//	of the root.
//
// Algorithm Outline:
//  1. If f(a)=0 or f(b)=0, return that endpoint immediately.
//  2. Reject same-sign endpoints with ErrNoBracket.
//  3. Loop: mid = (a+b)/2; keep the sign-changing half.
//  4. Stop when f(mid)=0 or the half-width drops below Tol.
//
// Errors:
//   - ErrBadOptions    — non-positive Tol or MaxIter.
//   - ErrNoBracket     — f(a)·f(b) > 0.
//   - ErrMaxIterations — tolerance not met within MaxIter (the Result
//     still carries the best midpoint).
//
// Complexity: O(log((b−a)/Tol)) function evaluations.
func Bisect(f Func, a, b float64, opts Options) (Result, error) {
	if err := validate(opts); err != nil {
		return Result{}, err
	}
	if a > b {
		a, b = b, a
	}

	fa, fb := f(a), f(b)
	if fa == 0 {
		return Result{Root: a}, nil
	}
	if fb == 0 {
		return Result{Root: b}, nil
	}
	if math.Signbit(fa) == math.Signbit(fb) {
		return Result{}, ErrNoBracket
	}

	var (
		mid, fm float64
		i       int
	)
	for i = 1; i <= opts.MaxIter; i++ {
		mid = a + (b-a)/2
		fm = f(mid)
		if fm == 0 || (b-a)/2 < opts.Tol {
			return Result{Root: mid, Iterations: i, Residual: fm}, nil
		}
		if math.Signbit(fa) != math.Signbit(fm) {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}

	return Result{Root: mid, Iterations: opts.MaxIter, Residual: fm}, ErrMaxIterations
}
