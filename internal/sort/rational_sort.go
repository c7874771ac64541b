package sort

import (
	"errors"

	"github.com/Jiacheng-WU/egglog-parallel/internal/primitive"
	"github.com/Jiacheng-WU/egglog-parallel/internal/rational"
	"github.com/Jiacheng-WU/egglog-parallel/internal/value"
)

// Name is the sort identifier registered with the host engine.
const Name = "Rational"

// ExtractionCost is the fixed cost weight of reconstructing a rational as a
// constructor call, consumed by the host's cheapest-representative pass.
const ExtractionCost = 1

// RationalSort binds the primitive operation library to one canonical store.
// It holds no other state; every primitive is pure over resolved values.
type RationalSort struct {
	store *Store
}

// NewRationalSort creates the sort over the given store.
func NewRationalSort(store *Store) *RationalSort {
	return &RationalSort{store: store}
}

// Name returns the sort identifier.
func (s *RationalSort) Name() string {
	return Name
}

// Store returns the canonical store backing this sort.
func (s *RationalSort) Store() *Store {
	return s.store
}

// MakeExpr produces the symbolic reconstruction of the value behind h: a
// rational constructor call over the reduced numerator and denominator as
// integer literals, with the fixed extraction cost. Atomic leaf
// construction; no search or recursion.
func (s *RationalSort) MakeExpr(h value.Handle) (int, value.Expr) {
	r := s.store.Resolve(h)
	return ExtractionCost, value.Call{
		Op:   "rational",
		Args: []value.Expr{value.Lit(r.Num()), value.Lit(r.Den())},
	}
}

// Register installs every rational primitive into reg.
//
// All checked operations signal overflow and undefined inputs alike as an
// absent outcome; the host cannot (and need not) tell them apart. The
// unsupported log/cbrt branches surface as *primitive.NotImplementedError
// instead, which keeps them distinct at the API boundary.
func (s *RationalSort) Register(reg *primitive.Registry) error {
	prims := []primitive.Primitive{
		s.binary("+", rational.Rat.Add),
		s.binary("-", rational.Rat.Sub),
		s.binary("*", rational.Rat.Mul),
		s.binary("/", rational.Rat.Div),
		s.binary("pow", rational.Rat.Pow),

		s.binaryTotal("min", rational.Rat.Min),
		s.binaryTotal("max", rational.Rat.Max),

		s.unary("neg", rational.Rat.Neg),
		s.unary("abs", rational.Rat.Abs),
		s.unary("sqrt", rational.Rat.Sqrt),
		s.unary("log", rational.Rat.Log),
		s.unary("cbrt", rational.Rat.Cbrt),

		s.unaryTotal("floor", rational.Rat.Floor),
		s.unaryTotal("ceil", rational.Rat.Ceil),
		s.unaryTotal("round", rational.Rat.Round),

		s.constructor(),
		s.projection("numer", rational.Rat.Num),
		s.projection("denom", rational.Rat.Den),
		s.toF64(),

		s.comparison("<", func(c int) bool { return c < 0 }),
		s.comparison(">", func(c int) bool { return c > 0 }),
		s.comparison("<=", func(c int) bool { return c <= 0 }),
		s.comparison(">=", func(c int) bool { return c >= 0 }),
	}

	for _, p := range prims {
		if err := reg.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// rat resolves a boxed rational operand.
func (s *RationalSort) rat(v value.Value) rational.Rat {
	return s.store.Resolve(v.AsHandle())
}

// box interns a result and wraps its handle.
func (s *RationalSort) box(r rational.Rat) value.Value {
	return value.Boxed(value.KindRational, s.store.Intern(r))
}

// outcome maps a rational-library result onto the primitive encoding:
// overflow and undefined inputs collapse into absence, the unsupported
// branches become a distinct recoverable error.
func (s *RationalSort) outcome(op string, in rational.Rat, r rational.Rat, err error) (primitive.Outcome, error) {
	if err != nil {
		if errors.Is(err, rational.ErrNotImplemented) {
			return primitive.None(), &primitive.NotImplementedError{Op: op, Input: in.String()}
		}
		return primitive.None(), nil
	}
	return primitive.Some(s.box(r)), nil
}

func (s *RationalSort) binary(name string, fn func(a, b rational.Rat) (rational.Rat, error)) primitive.Primitive {
	return primitive.Primitive{
		Name:     name,
		Operands: []value.Kind{value.KindRational, value.KindRational},
		Result:   value.KindRational,
		Apply: func(args []value.Value) (primitive.Outcome, error) {
			a := s.rat(args[0])
			r, err := fn(a, s.rat(args[1]))
			return s.outcome(name, a, r, err)
		},
	}
}

func (s *RationalSort) binaryTotal(name string, fn func(a, b rational.Rat) rational.Rat) primitive.Primitive {
	return primitive.Primitive{
		Name:     name,
		Operands: []value.Kind{value.KindRational, value.KindRational},
		Result:   value.KindRational,
		Apply: func(args []value.Value) (primitive.Outcome, error) {
			return primitive.Some(s.box(fn(s.rat(args[0]), s.rat(args[1])))), nil
		},
	}
}

func (s *RationalSort) unary(name string, fn func(a rational.Rat) (rational.Rat, error)) primitive.Primitive {
	return primitive.Primitive{
		Name:     name,
		Operands: []value.Kind{value.KindRational},
		Result:   value.KindRational,
		Apply: func(args []value.Value) (primitive.Outcome, error) {
			a := s.rat(args[0])
			r, err := fn(a)
			return s.outcome(name, a, r, err)
		},
	}
}

func (s *RationalSort) unaryTotal(name string, fn func(a rational.Rat) rational.Rat) primitive.Primitive {
	return primitive.Primitive{
		Name:     name,
		Operands: []value.Kind{value.KindRational},
		Result:   value.KindRational,
		Apply: func(args []value.Value) (primitive.Outcome, error) {
			return primitive.Some(s.box(fn(s.rat(args[0])))), nil
		},
	}
}

// constructor builds the reduced fraction from two integer slots.
// A zero denominator yields no result rather than aborting: a hostile
// input must not take down the host process.
func (s *RationalSort) constructor() primitive.Primitive {
	return primitive.Primitive{
		Name:     "rational",
		Operands: []value.Kind{value.KindI64, value.KindI64},
		Result:   value.KindRational,
		Apply: func(args []value.Value) (primitive.Outcome, error) {
			r, err := rational.Try(args[0].AsI64(), args[1].AsI64())
			if err != nil {
				return primitive.None(), nil
			}
			return primitive.Some(s.box(r)), nil
		},
	}
}

// projection exposes the reduced numerator or denominator. The parts are
// themselves int64, so projection to the i64 slot is total.
func (s *RationalSort) projection(name string, fn func(a rational.Rat) int64) primitive.Primitive {
	return primitive.Primitive{
		Name:     name,
		Operands: []value.Kind{value.KindRational},
		Result:   value.KindI64,
		Apply: func(args []value.Value) (primitive.Outcome, error) {
			return primitive.Some(value.I64(fn(s.rat(args[0])))), nil
		},
	}
}

// toF64 is the best-effort lossy conversion. It never fails; precision loss
// is silent.
func (s *RationalSort) toF64() primitive.Primitive {
	return primitive.Primitive{
		Name:     "to-f64",
		Operands: []value.Kind{value.KindRational},
		Result:   value.KindF64,
		Apply: func(args []value.Value) (primitive.Outcome, error) {
			return primitive.Some(value.F64(s.rat(args[0]).Float64())), nil
		},
	}
}

// comparison encodes a predicate as an optional unit: present when the
// relation holds, absent when it does not. The host turns presence into a
// derivable fact. Equality is not registered here; the host has a generic
// value-equality mechanism for all sorts.
func (s *RationalSort) comparison(name string, holds func(cmp int) bool) primitive.Primitive {
	return primitive.Primitive{
		Name:     name,
		Operands: []value.Kind{value.KindRational, value.KindRational},
		Result:   value.KindUnit,
		Apply: func(args []value.Value) (primitive.Outcome, error) {
			if holds(s.rat(args[0]).Cmp(s.rat(args[1]))) {
				return primitive.Some(value.Unit()), nil
			}
			return primitive.None(), nil
		},
	}
}
