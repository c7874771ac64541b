// Package value defines the host-facing scalar representation shared by the
// canonical store and the primitive dispatch layer.
//
// A Value is a fixed-width slot: a sort tag plus 64 raw bits. Small sorts
// (i64, f64, Unit) encode their payload directly in the bits; boxed sorts
// such as Rational carry a Handle into their sort's canonical store instead.
//
// The package also defines the sealed Expr tree used by extraction to hand
// the host a symbolic reconstruction of a stored value, and the canonical
// JSON encoding used wherever byte-stable serialization matters (golden
// fixtures, CLI JSON output).
//
// This package contains type definitions only. All other internal packages
// may import value; value imports nothing internal.
package value
