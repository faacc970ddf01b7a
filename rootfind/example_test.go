package rootfind_test

import (
	"fmt"
	"math"

	"github.com/cwru-phys-250/p250-spring-2019/rootfind"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBisect
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Find √2 as the root of x²−2 on the bracket [1,2]. Bisection gains
//	one binary digit per iteration, so reaching 1e-12 takes about forty
//	steps — slow, but impossible to derail.
//
// Complexity: O(log((b−a)/Tol)) function evaluations.
func ExampleBisect() {
	f := func(x float64) float64 { return x*x - 2 }

	res, err := rootfind.Bisect(f, 1, 2, rootfind.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.10f\niterations=%d\n", res.Root, res.Iterations)
	// Output:
	// root=1.4142135624
	// iterations=40
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewton
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same root by Newton's method: the digit count doubles each
//	step, so six iterations replace bisection's forty.
//
// Complexity: O(1) per step; quadratic convergence near a simple root.
func ExampleNewton() {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	res, err := rootfind.Newton(f, df, 1, rootfind.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("root=%.10f\nmatches math.Sqrt2: %v\n", res.Root, math.Abs(res.Root-math.Sqrt2) < 1e-12)
	// Output:
	// root=1.4142135624
	// matches math.Sqrt2: true
}
