// Package precision collects small finite-precision demonstrations:
// machine epsilon, float spacing, catastrophic cancellation, and the
// integer-wraparound hazard of computing 3ⁿ in a fixed-width type.
//
// 🚀 Why a whole package for this?
//
//	Every pitfall here is invisible in exact arithmetic and routine in
//	float64 or int64. Each function isolates one of them:
//	  • MachineEpsilon / Spacing — the granularity of float64
//	  • Cancellation             — subtracting nearly equal numbers
//	  • Pow3Wrap                 — silent int64 sign flip past 3³⁹
//
// ⚙️ The three routes to 3ⁿ:
//
//	Pow3Float(n) — float64, inexact past 3³³ but never wraps; this is
//	               the route the recurrence package's reference uses.
//	Pow3Big(n)   — exact for any n via math/big.
//	Pow3Wrap(n)  — int64 with no overflow check: a cautionary example
//	               only, kept to show the wraparound, never production
//	               logic. Pow3Int64 is the checked variant.
//
// All functions are pure and O(n) or better.
package precision
