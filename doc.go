// Package p250 is the numerical-analysis companion library for PHYS 250:
// small, pure-function demonstrations of how finite precision shapes
// real computations.
//
// 🚀 What is in here?
//
//	A dependency-light teaching library that brings together:
//		• Recurrence stability: the 3⁻ⁿ sequence by a stable and an
//		  unstable three-term recurrence, with full error analysis
//		• Finite precision: machine epsilon, float spacing,
//		  catastrophic cancellation, integer-wraparound hazards
//		• Root finding: bisection, Newton (analytic & numeric
//		  derivative), secant
//		• Plot preparation: (x,y) pairs, log-scale transforms, tables
//		  for external chart renderers
//
// ✨ Why this shape?
//
//   - Every function is pure — explicit inputs, explicit outputs, no
//     notebook-style global state
//   - Every pitfall is demonstrated, not just described: the unstable
//     recurrence really does lose all its digits by j = 40
//   - Sentinel errors, no panics on user input
//
// Under the hood, everything is organized under four subpackages:
//
//	recurrence/ — stable vs unstable generators for 3⁻ⁿ + error analysis
//	precision/  — machine epsilon, spacing, cancellation, 3ⁿ three ways
//	rootfind/   — bisection, Newton, secant solvers
//	series/     — (x,y) points, log-scale transforms, tables for plotting
//
// Quick taste:
//
//	cmp, _ := recurrence.Compare(40)
//	fmt.Println(cmp.ErrQ[40] > 1) // true: the unstable recurrence failed
//
// The runnable walkthroughs live in examples/; each subpackage also has
// Example tests showing its API in isolation.
package p250
