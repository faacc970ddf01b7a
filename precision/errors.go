package precision

import "errors"

var (
	// ErrNegativeExponent indicates a requested integer power with n < 0.
	ErrNegativeExponent = errors.New("precision: exponent must be non-negative")
	// ErrInt64Overflow indicates that 3ⁿ does not fit in an int64.
	ErrInt64Overflow = errors.New("precision: 3^n overflows int64 for n > 39")
)
