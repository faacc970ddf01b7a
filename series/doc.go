// Package series adapts numeric sequences for external chart and
// report renderers: (x,y) pairs with the index as abscissa, log-scale
// transforms, and column-aligned tables.
//
// The package holds no rendering code. A renderer that accepts (x,y)
// pairs — log-scale for error-growth comparisons — is the intended
// consumer; everything here is plain data preparation.
//
// ⚙️ Usage:
//
//	cmp, _ := recurrence.Compare(40)
//	pts := series.LogPoints(cmp.ErrQ) // ready for a log-scale y axis
//
// All functions are pure and O(n).
package series
