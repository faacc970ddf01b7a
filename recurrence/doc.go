// Package recurrence demonstrates numerical stability of three-term
// linear recurrences by computing the sequence 3⁻ⁿ two different ways.
//
// 🚀 What is this about?
//
//	Both recurrences below solve the same linear difference equation and
//	are seeded with the exact values 1 and 1/3, so in exact arithmetic
//	they generate identical sequences. In floating point they behave very
//	differently:
//	  • P: x_j = (5/6)·x_{j−1} − (1/6)·x_{j−2}   — stable
//	  • Q: x_j = (5/3)·x_{j−1} − (4/9)·x_{j−2}   — unstable
//
// ✨ Why does Q blow up?
//
//	The characteristic roots of Q are 1/3 and 4/3. The wanted solution is
//	(1/3)ʲ; the parasitic mode (4/3)ʲ has a zero coefficient analytically,
//	but the rounding of 1/3 excites it with a tiny nonzero amplitude.
//	Relative to the decaying true value, that contamination grows by a
//	factor of (4/3)/(1/3) = 4 every step, so Q loses roughly 0.6 decimal
//	digits per term and has no correct digits left near j = 40.
//	P's roots are 1/3 and 1/2: its parasitic mode also decays, and the
//	fractional error stays near machine precision.
//
// ⚙️ Usage:
//
//	import "github.com/cwru-phys-250/p250-spring-2019/recurrence"
//
//	cmp, err := recurrence.Compare(40)
//	// cmp.P, cmp.Q       — the two approximations of 3⁻ʲ
//	// cmp.Ref            — closed-form reference values
//	// cmp.ErrP, cmp.ErrQ — fractional errors |1 − approx/ref|
//
// The fractional-error sequences are plain (index, value) data, ready
// for any log-scale chart renderer; see the series package for helpers.
//
// Performance: O(N) time, O(N) memory for every function here.
package recurrence
