package primitive

import (
	"fmt"
	"strings"

	"github.com/Jiacheng-WU/egglog-parallel/internal/value"
)

// Outcome is the result of applying a primitive: either a value or an
// explicit absence. Absence is the host's "no fact derivable" signal and
// covers undefined results, checked-arithmetic overflow, and comparison
// predicates that do not hold. It is never modeled as a nil value.
type Outcome struct {
	val value.Value
	ok  bool
}

// Some returns an outcome carrying v.
func Some(v value.Value) Outcome {
	return Outcome{val: v, ok: true}
}

// None returns the absent outcome.
func None() Outcome {
	return Outcome{}
}

// Get returns the carried value and whether one is present.
func (o Outcome) Get() (value.Value, bool) {
	return o.val, o.ok
}

// Present reports whether the outcome carries a value.
func (o Outcome) Present() bool {
	return o.ok
}

// ApplyFunc evaluates a primitive over already-decoded operand slots.
// The registry guarantees len(args) and the operand kinds match the declared
// signature before calling. A nil error with an absent Outcome is the normal
// "no result" case; errors are reserved for NotImplementedError and
// contract violations.
type ApplyFunc func(args []value.Value) (Outcome, error)

// Primitive is a named, fixed-arity pure function over host value slots.
// Operations are stateless: they may read their sort's canonical store but
// hold no state across calls.
type Primitive struct {
	// Name is the operator name, e.g. "+" or "rational".
	Name string

	// Operands lists the operand sorts, in order. May be empty.
	Operands []value.Kind

	// Result is the declared result sort.
	Result value.Kind

	// Apply evaluates the primitive.
	Apply ApplyFunc
}

// Signature renders the declared signature, e.g. "pow(Rational, Rational) -> Rational".
func (p Primitive) Signature() string {
	parts := make([]string, len(p.Operands))
	for i, k := range p.Operands {
		parts[i] = string(k)
	}
	return fmt.Sprintf("%s(%s) -> %s", p.Name, strings.Join(parts, ", "), p.Result)
}

// matches reports whether the declared operands equal kinds.
func (p Primitive) matches(kinds []value.Kind) bool {
	if len(p.Operands) != len(kinds) {
		return false
	}
	for i, k := range p.Operands {
		if k != kinds[i] {
			return false
		}
	}
	return true
}
