package harness

import (
	"fmt"
	"strconv"

	"github.com/Jiacheng-WU/egglog-parallel/internal/primitive"
	"github.com/Jiacheng-WU/egglog-parallel/internal/rational"
	"github.com/Jiacheng-WU/egglog-parallel/internal/sort"
	"github.com/Jiacheng-WU/egglog-parallel/internal/value"
)

// CoerceLiteral converts an operand literal to a host slot of the given
// kind, interning rationals into the store.
func CoerceLiteral(store *sort.Store, kind value.Kind, lit string) (value.Value, error) {
	switch kind {
	case value.KindRational:
		r, err := rational.Parse(lit)
		if err != nil {
			return value.Value{}, err
		}
		return value.Boxed(value.KindRational, store.Intern(r)), nil
	case value.KindI64:
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return value.Value{}, err
		}
		return value.I64(n), nil
	case value.KindF64:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return value.Value{}, err
		}
		return value.F64(f), nil
	case value.KindUnit:
		if lit != "()" {
			return value.Value{}, fmt.Errorf("unit literal must be %q, got %q", "()", lit)
		}
		return value.Unit(), nil
	default:
		return value.Value{}, fmt.Errorf("unknown operand kind %q", kind)
	}
}

// InferCall resolves an operator name and operand literals against the
// registered overloads: the first overload whose arity matches and whose
// operand kinds can coerce every literal wins.
func InferCall(reg *primitive.Registry, store *sort.Store, op string, literals []string) (primitive.Primitive, []value.Value, error) {
	overloads := reg.Overloads(op)
	if len(overloads) == 0 {
		return primitive.Primitive{}, nil, &primitive.DispatchError{
			Code:    primitive.ErrCodeUnknownPrimitive,
			Name:    op,
			Message: "no such primitive",
		}
	}

	var lastErr error
	for _, p := range overloads {
		if len(p.Operands) != len(literals) {
			continue
		}
		args := make([]value.Value, len(literals))
		ok := true
		for i, lit := range literals {
			v, err := CoerceLiteral(store, p.Operands[i], lit)
			if err != nil {
				lastErr = fmt.Errorf("operand %d of %s: %w", i, p.Signature(), err)
				ok = false
				break
			}
			args[i] = v
		}
		if ok {
			return p, args, nil
		}
	}

	if lastErr != nil {
		return primitive.Primitive{}, nil, lastErr
	}
	return primitive.Primitive{}, nil, &primitive.DispatchError{
		Code:    primitive.ErrCodeArityMismatch,
		Name:    op,
		Message: fmt.Sprintf("no overload takes %d argument(s)", len(literals)),
	}
}

// RenderValue renders a host slot the way scenarios and the CLI print it:
// rationals as "m/n", integers and floats in decimal, unit as "()".
func RenderValue(store *sort.Store, v value.Value) string {
	if v.Sort == value.KindRational {
		return store.Resolve(v.AsHandle()).String()
	}
	return v.String()
}
