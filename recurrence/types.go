package recurrence

import "errors"

var (
	// ErrNegativeLength indicates a requested sequence length n < 0.
	ErrNegativeLength = errors.New("recurrence: sequence length must be non-negative")
	// ErrEmptySequence indicates an empty input sequence.
	ErrEmptySequence = errors.New("recurrence: input sequence must be non-empty")
	// ErrBadWindow indicates an invalid or unusable growth-rate window.
	ErrBadWindow = errors.New("recurrence: invalid growth-rate window")
)

// Comparison bundles the outputs of one stability experiment over [0,n]:
// both recurrence approximations of 3⁻ʲ, the closed-form reference, and
// the fractional error of each approximation. All five slices have
// length n+1 and share the index j as abscissa.
type Comparison struct {
	// P is the stable-recurrence approximation of 3⁻ʲ.
	P []float64
	// Q is the unstable-recurrence approximation of 3⁻ʲ.
	Q []float64
	// Ref is the closed-form reference 3⁻ʲ.
	Ref []float64
	// ErrP is |1 − P[j]/Ref[j]| per index.
	ErrP []float64
	// ErrQ is |1 − Q[j]/Ref[j]| per index.
	ErrQ []float64
}
