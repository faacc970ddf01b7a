// Package rootfind provides classic scalar root-finding algorithms:
// bisection, Newton's method, and the secant method.
//
// 🚀 Which one when?
//
//	  • Bisect — needs a sign-changing bracket [a,b]; gains exactly one
//	    bit per step, but cannot fail to converge on a valid bracket.
//	  • Newton — needs the derivative and a decent starting point;
//	    doubles the number of correct digits per step near a simple root.
//	  • NewtonNumeric — Newton with a central-difference derivative when
//	    no analytic one is available.
//	  • Secant — derivative-free, superlinear (golden-ratio order);
//	    the usual compromise between the two.
//
// ⚙️ Usage:
//
//	import "github.com/cwru-phys-250/p250-spring-2019/rootfind"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	res, err := rootfind.Bisect(f, 1, 2, rootfind.DefaultOptions())
//	// res.Root ≈ √2, res.Iterations ≈ 41, res.Residual ≈ 0
//
// All solvers are pure functions: no state, no logging, only sentinel
// errors from types.go.
//
// Convergence: Bisect is O(log((b−a)/tol)) iterations; Newton and
// Secant are typically under ten on well-behaved problems.
package rootfind
