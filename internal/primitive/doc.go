// Package primitive implements the typed dispatch table for sort primitives.
//
// The host engine registers every primitive once at setup time; Register
// validates the declared signature (known kinds, non-empty name, no duplicate
// (name, operands) pair) so that type errors surface at registration, not at
// call time. Dispatch is then a map lookup plus a linear scan over the
// overloads of one name.
//
// Partiality is explicit. A primitive application yields an Outcome, which
// either carries a value or is absent; absence covers both mathematically
// undefined results and checked-arithmetic overflow, and the host uses it to
// gate conditional rewrites. Unsupported-but-implementable branches are a
// separate, recoverable NotImplementedError so they can never be mistaken
// for a derivable "no fact" outcome.
package primitive
