package rootfind

import (
	"math"

	"github.com/cwru-phys-250/p250-spring-2019/precision"
)

// Newton — root finding by tangent-line iteration.
//
// Description:
//
//	Iterates x ← x − f(x)/f′(x). Near a simple root the error is
//	squared each step, so convergence is extremely fast once the
//	iterate is close; far from a root the method can wander or diverge,
//	which is why MaxIter is a hard limit rather than a formality.
//
// Errors:
//   - ErrBadOptions     — non-positive Tol or MaxIter.
//   - ErrZeroDerivative — f′ vanished at an iterate; no step possible.
//   - ErrMaxIterations  — step size still above Tol after MaxIter
//     iterations (the Result carries the last iterate).
//
// Complexity: O(MaxIter) evaluations of f and df; typically well under
// ten iterations on well-conditioned problems.
func Newton(f, df Func, x0 float64, opts Options) (Result, error) {
	if err := validate(opts); err != nil {
		return Result{}, err
	}

	x := x0
	for i := 1; i <= opts.MaxIter; i++ {
		fx := f(x)
		if fx == 0 {
			return Result{Root: x, Iterations: i - 1}, nil
		}
		d := df(x)
		if d == 0 {
			return Result{Root: x, Iterations: i - 1, Residual: fx}, ErrZeroDerivative
		}
		step := fx / d
		x -= step
		if math.Abs(step) < opts.Tol {
			return Result{Root: x, Iterations: i, Residual: f(x)}, nil
		}
	}

	return Result{Root: x, Iterations: opts.MaxIter, Residual: f(x)}, ErrMaxIterations
}

// NewtonNumeric is Newton's method with a central-difference derivative
// for when no analytic f′ is available. The step size h balances
// truncation against rounding: h ∝ ∛eps scaled to the iterate, the
// standard choice for a second-order difference.
//
// Errors: as Newton; a vanishing numerical derivative also returns
// ErrZeroDerivative.
func NewtonNumeric(f Func, x0 float64, opts Options) (Result, error) {
	df := func(x float64) float64 {
		h := cbrtEps * math.Max(1, math.Abs(x))

		return (f(x+h) - f(x-h)) / (2 * h)
	}

	return Newton(f, df, x0, opts)
}

// cbrtEps is ∛(machine epsilon), the optimal relative step for a
// central difference.
var cbrtEps = math.Cbrt(precision.MachineEpsilon())
