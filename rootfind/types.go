package rootfind

import "errors"

var (
	// ErrBadOptions indicates a non-positive tolerance or iteration limit.
	ErrBadOptions = errors.New("rootfind: tolerance and iteration limit must be positive")
	// ErrNoBracket indicates f(a) and f(b) have the same sign.
	ErrNoBracket = errors.New("rootfind: interval endpoints must bracket a sign change")
	// ErrZeroDerivative indicates Newton's method hit a vanishing derivative.
	ErrZeroDerivative = errors.New("rootfind: derivative vanished at an iterate")
	// ErrZeroSecant indicates the secant method hit two equal function values.
	ErrZeroSecant = errors.New("rootfind: secant slope vanished between iterates")
	// ErrMaxIterations indicates the iteration limit was reached without
	// meeting the tolerance.
	ErrMaxIterations = errors.New("rootfind: iteration limit reached before convergence")
)

// Func is a scalar function f(x) whose root is sought.
type Func func(x float64) float64

// Options configures all solvers in this package.
//
// Fields:
//   - Tol     — convergence tolerance: on the interval half-width for
//     Bisect, on the step size for Newton and Secant.
//   - MaxIter — hard iteration limit; exceeding it returns
//     ErrMaxIterations together with the best iterate so far.
type Options struct {
	Tol     float64
	MaxIter int
}

// DefaultOptions returns the tolerances used throughout the course
// material: near machine precision, with a generous iteration budget.
func DefaultOptions() Options {
	return Options{Tol: 1e-12, MaxIter: 100}
}

// Result reports a solver outcome.
type Result struct {
	// Root is the final iterate.
	Root float64
	// Iterations is the number of iterations actually performed.
	Iterations int
	// Residual is f(Root), a direct quality check independent of Tol.
	Residual float64
}

// validate rejects unusable option combinations before any f evaluation.
func validate(opts Options) error {
	if opts.Tol <= 0 || opts.MaxIter <= 0 {
		return ErrBadOptions
	}

	return nil
}
