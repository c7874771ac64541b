// Package rational provides exact fixed-width rational numbers.
//
// A Rat is an int64 numerator over an int64 denominator, always held in
// lowest terms with a positive denominator. All arithmetic is checked:
// operations that would leave the representable range return ErrOverflow
// instead of wrapping. Partial operations (division by zero, unsupported
// power/root domains) return sentinel errors that the primitive layer maps
// to its absence-of-result encoding.
//
// This package contains value types and pure functions only. All other
// internal packages may import rational; rational imports nothing internal.
package rational
