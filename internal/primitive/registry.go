package primitive

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Jiacheng-WU/egglog-parallel/internal/value"
)

// Registry is the dispatch table mapping (name, operand kinds) to a typed
// primitive. It is built once at setup time; all validation happens at
// registration so invocation cannot hit a malformed entry.
//
// Thread-safety: Register is setup-phase only. Once registration is done the
// table is read-only and safe for concurrent Lookup/Invoke.
type Registry struct {
	prims map[string][]Primitive
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{prims: make(map[string][]Primitive)}
}

// Register adds a primitive after validating its declaration.
// Returns a *DispatchError with code INVALID_SIGNATURE for a malformed
// declaration and DUPLICATE_SIGNATURE when the (name, operands) pair is
// already present. Overloads of one name with distinct operand kinds are
// allowed.
func (r *Registry) Register(p Primitive) error {
	if p.Name == "" {
		return &DispatchError{
			Code:    ErrCodeInvalidSignature,
			Message: "primitive name must not be empty",
		}
	}
	if p.Apply == nil {
		return &DispatchError{
			Code:    ErrCodeInvalidSignature,
			Name:    p.Name,
			Message: "apply function must not be nil",
		}
	}
	for _, k := range p.Operands {
		if !k.Valid() {
			return &DispatchError{
				Code:    ErrCodeInvalidSignature,
				Name:    p.Name,
				Message: fmt.Sprintf("unknown operand kind %q", k),
			}
		}
	}
	if !p.Result.Valid() {
		return &DispatchError{
			Code:    ErrCodeInvalidSignature,
			Name:    p.Name,
			Message: fmt.Sprintf("unknown result kind %q", p.Result),
		}
	}
	for _, existing := range r.prims[p.Name] {
		if existing.matches(p.Operands) {
			return &DispatchError{
				Code:    ErrCodeDuplicateSignature,
				Name:    p.Name,
				Message: fmt.Sprintf("signature already registered: %s", p.Signature()),
			}
		}
	}
	r.prims[p.Name] = append(r.prims[p.Name], p)
	return nil
}

// Lookup returns the primitive registered for (name, kinds), if any.
func (r *Registry) Lookup(name string, kinds []value.Kind) (Primitive, bool) {
	for _, p := range r.prims[name] {
		if p.matches(kinds) {
			return p, true
		}
	}
	return Primitive{}, false
}

// Overloads returns every primitive registered under name.
func (r *Registry) Overloads(name string) []Primitive {
	return slices.Clone(r.prims[name])
}

// Names returns all registered primitive names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.prims))
	for name := range r.prims {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every registered primitive, sorted by name then signature,
// for stable listings and manifest cross-checks.
func (r *Registry) All() []Primitive {
	var all []Primitive
	for _, name := range r.Names() {
		overloads := slices.Clone(r.prims[name])
		slices.SortFunc(overloads, func(a, b Primitive) int {
			return strings.Compare(a.Signature(), b.Signature())
		})
		all = append(all, overloads...)
	}
	return all
}

// Invoke dispatches a call by name, deriving the operand kinds from the
// argument slots themselves. Returns a *DispatchError with code
// UNKNOWN_PRIMITIVE when no overload matches (ARITY_MISMATCH when overloads
// exist but none has the right arity), and otherwise forwards the
// primitive's outcome.
func (r *Registry) Invoke(name string, args []value.Value) (Outcome, error) {
	kinds := make([]value.Kind, len(args))
	for i, a := range args {
		kinds[i] = a.Sort
	}

	p, ok := r.Lookup(name, kinds)
	if !ok {
		overloads := r.prims[name]
		if len(overloads) == 0 {
			return None(), &DispatchError{
				Code:    ErrCodeUnknownPrimitive,
				Name:    name,
				Message: "no such primitive",
			}
		}
		arityOK := false
		for _, o := range overloads {
			if len(o.Operands) == len(args) {
				arityOK = true
				break
			}
		}
		if !arityOK {
			return None(), &DispatchError{
				Code:    ErrCodeArityMismatch,
				Name:    name,
				Message: fmt.Sprintf("no overload takes %d argument(s)", len(args)),
			}
		}
		return None(), &DispatchError{
			Code:    ErrCodeUnknownPrimitive,
			Name:    name,
			Message: fmt.Sprintf("no overload matches operand kinds %v", kinds),
		}
	}
	return p.Apply(args)
}
