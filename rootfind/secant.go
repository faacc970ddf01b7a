package rootfind

import "math"

// Secant — root finding by secant-line iteration.
//
// Description:
//
//	Replaces Newton's tangent with the secant through the last two
//	iterates:
//
//	  x_{k+1} = x_k − f(x_k)·(x_k − x_{k−1}) / (f(x_k) − f(x_{k−1}))
//
//	No derivative is needed; convergence order is the golden ratio
//	(≈1.618) near a simple root.
//
// Errors:
//   - ErrBadOptions    — non-positive Tol or MaxIter.
//   - ErrZeroSecant    — f(x_k) = f(x_{k−1}); the secant is horizontal.
//   - ErrMaxIterations — step size still above Tol after MaxIter.
//
// Complexity: one f evaluation per iteration after the first two.
func Secant(f Func, x0, x1 float64, opts Options) (Result, error) {
	if err := validate(opts); err != nil {
		return Result{}, err
	}

	fPrev, fCurr := f(x0), f(x1)
	xPrev, xCurr := x0, x1
	if fPrev == 0 {
		return Result{Root: x0}, nil
	}
	for i := 1; i <= opts.MaxIter; i++ {
		if fCurr == 0 {
			return Result{Root: xCurr, Iterations: i - 1}, nil
		}
		if fCurr == fPrev {
			return Result{Root: xCurr, Iterations: i - 1, Residual: fCurr}, ErrZeroSecant
		}
		step := fCurr * (xCurr - xPrev) / (fCurr - fPrev)
		xPrev, fPrev = xCurr, fCurr
		xCurr -= step
		fCurr = f(xCurr)
		if math.Abs(step) < opts.Tol {
			return Result{Root: xCurr, Iterations: i, Residual: fCurr}, nil
		}
	}

	return Result{Root: xCurr, Iterations: opts.MaxIter, Residual: fCurr}, ErrMaxIterations
}
