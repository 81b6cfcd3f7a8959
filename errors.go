package ieee754

import "errors"

// Sentinel errors forming the error taxonomy: construction-time failures
// are reported synchronously to the caller and compared with errors.Is.
// Encoding and decoding of well-formed inputs never return an error —
// overflow and underflow are silent, value-level outcomes, not faults.
var (
	// ErrInvalidParameter is returned when a codec is constructed with
	// an out-of-range (E, P) or (C, T) parameter set.
	ErrInvalidParameter = errors.New("ieee754: invalid codec parameter")

	// ErrInvalidSign is returned when a Value is constructed with a
	// sign other than +1/-1, or with a sign that disagrees with a
	// nonzero magnitude's own sign.
	ErrInvalidSign = errors.New("ieee754: invalid sign")

	// ErrCategoryMismatch is returned when the finite-value constructor
	// NewFinite is given no magnitude; a finite Value always carries one.
	ErrCategoryMismatch = errors.New("ieee754: category mismatch")

	// ErrNotFinite is returned by Magnitude when called on a Value
	// whose category is not finite.
	ErrNotFinite = errors.New("ieee754: value is not finite")
)
