package primitive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jiacheng-WU/egglog-parallel/internal/value"
)

func echoI64() Primitive {
	return Primitive{
		Name:     "echo",
		Operands: []value.Kind{value.KindI64},
		Result:   value.KindI64,
		Apply: func(args []value.Value) (Outcome, error) {
			return Some(args[0]), nil
		},
	}
}

func TestRegisterValidatesDeclaration(t *testing.T) {
	tests := []struct {
		name     string
		prim     Primitive
		wantCode DispatchErrorCode
	}{
		{
			name:     "empty name",
			prim:     Primitive{Result: value.KindI64, Apply: func([]value.Value) (Outcome, error) { return None(), nil }},
			wantCode: ErrCodeInvalidSignature,
		},
		{
			name:     "nil apply",
			prim:     Primitive{Name: "f", Result: value.KindI64},
			wantCode: ErrCodeInvalidSignature,
		},
		{
			name: "unknown operand kind",
			prim: Primitive{
				Name:     "f",
				Operands: []value.Kind{"String"},
				Result:   value.KindI64,
				Apply:    func([]value.Value) (Outcome, error) { return None(), nil },
			},
			wantCode: ErrCodeInvalidSignature,
		},
		{
			name: "unknown result kind",
			prim: Primitive{
				Name:   "f",
				Result: "String",
				Apply:  func([]value.Value) (Outcome, error) { return None(), nil },
			},
			wantCode: ErrCodeInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.prim)
			var de *DispatchError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.wantCode, de.Code)
		})
	}
}

func TestRegisterRejectsDuplicateSignature(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoI64()))

	err := reg.Register(echoI64())
	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeDuplicateSignature, de.Code)
}

func TestRegisterAllowsOverloads(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoI64()))

	f64Echo := echoI64()
	f64Echo.Operands = []value.Kind{value.KindF64}
	f64Echo.Result = value.KindF64
	require.NoError(t, reg.Register(f64Echo))

	assert.Len(t, reg.Overloads("echo"), 2)
}

func TestLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoI64()))

	p, ok := reg.Lookup("echo", []value.Kind{value.KindI64})
	assert.True(t, ok)
	assert.Equal(t, "echo(i64) -> i64", p.Signature())

	_, ok = reg.Lookup("echo", []value.Kind{value.KindF64})
	assert.False(t, ok)

	_, ok = reg.Lookup("missing", nil)
	assert.False(t, ok)
}

func TestInvoke(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoI64()))

	out, err := reg.Invoke("echo", []value.Value{value.I64(42)})
	require.NoError(t, err)
	v, ok := out.Get()
	require.True(t, ok)
	assert.Equal(t, int64(42), v.AsI64())
}

func TestInvokeUnknownPrimitive(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Invoke("missing", nil)
	assert.True(t, IsUnknownPrimitive(err))
}

func TestInvokeArityMismatch(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoI64()))

	_, err := reg.Invoke("echo", []value.Value{value.I64(1), value.I64(2)})
	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeArityMismatch, de.Code)
}

func TestInvokeOperandKindMismatch(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(echoI64()))

	_, err := reg.Invoke("echo", []value.Value{value.F64(1)})
	var de *DispatchError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCodeUnknownPrimitive, de.Code)
}

func TestNamesAndAllAreSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		p := echoI64()
		p.Name = name
		require.NoError(t, reg.Register(p))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "zeta", all[2].Name)
}

func TestOutcome(t *testing.T) {
	v, ok := Some(value.Unit()).Get()
	assert.True(t, ok)
	assert.Equal(t, value.Unit(), v)

	_, ok = None().Get()
	assert.False(t, ok)
	assert.False(t, None().Present())
	assert.True(t, Some(value.I64(0)).Present())
}

func TestNotImplementedErrorDistinctFromAbsence(t *testing.T) {
	err := &NotImplementedError{Op: "log", Input: "2/1"}
	assert.True(t, IsNotImplemented(err))
	assert.False(t, IsNotImplemented(errors.New("other")))
	assert.Contains(t, err.Error(), "NOT_IMPLEMENTED")
	assert.Contains(t, err.Error(), "log")
}
