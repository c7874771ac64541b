package rational

import "errors"

// Sentinel errors returned by functions in this package.
//
// The primitive dispatch layer collapses ErrZeroDen, ErrDivByZero,
// ErrOverflow, and ErrUndefined into a single absence-of-result outcome.
// ErrNotImplemented is kept distinct: it marks a branch the library does not
// support yet, not a mathematically undefined input.
var (
	// ErrZeroDen indicates a construction with a zero denominator.
	ErrZeroDen = errors.New("rational: zero denominator")

	// ErrDivByZero indicates division (or inversion) of zero.
	ErrDivByZero = errors.New("rational: division by zero")

	// ErrOverflow indicates a result outside the int64/int64 representation.
	ErrOverflow = errors.New("rational: overflow")

	// ErrUndefined indicates an input outside an operation's domain
	// (negative exponent, non-perfect-square root, and so on).
	ErrUndefined = errors.New("rational: undefined result")

	// ErrNotImplemented indicates an input in a branch the library does not
	// support yet (general log, general cbrt).
	ErrNotImplemented = errors.New("rational: not implemented")
)
