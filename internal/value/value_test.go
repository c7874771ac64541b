package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestI64RoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
		v := I64(n)
		assert.Equal(t, KindI64, v.Sort)
		assert.Equal(t, n, v.AsI64())
	}
}

func TestF64RoundTrip(t *testing.T) {
	for _, f := range []float64{0, 0.5, -0.25, math.Inf(1), math.SmallestNonzeroFloat64} {
		v := F64(f)
		assert.Equal(t, KindF64, v.Sort)
		assert.Equal(t, f, v.AsF64())
	}
}

func TestBoxedHandleRoundTrip(t *testing.T) {
	v := Boxed(KindRational, Handle(7))
	assert.Equal(t, KindRational, v.Sort)
	assert.Equal(t, Handle(7), v.AsHandle())
}

func TestUnit(t *testing.T) {
	v := Unit()
	assert.Equal(t, KindUnit, v.Sort)
	assert.Equal(t, uint64(0), v.Bits)
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindRational, KindI64, KindF64, KindUnit} {
		assert.True(t, k.Valid())
	}
	assert.False(t, Kind("String").Valid())
	assert.False(t, Kind("").Valid())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "-3", I64(-3).String())
	assert.Equal(t, "0.5", F64(0.5).String())
	assert.Equal(t, "()", Unit().String())
	assert.Equal(t, "Rational#4", Boxed(KindRational, 4).String())
}

func TestRenderExpr(t *testing.T) {
	e := Call{Op: "rational", Args: []Expr{Lit(2), Lit(3)}}
	assert.Equal(t, "(rational 2 3)", Render(e))

	assert.Equal(t, "-7", Render(Lit(-7)))

	nested := Call{Op: "+", Args: []Expr{Lit(1), Call{Op: "rational", Args: []Expr{Lit(1), Lit(2)}}}}
	assert.Equal(t, "(+ 1 (rational 1 2))", Render(nested))
}

func TestExprSealed(t *testing.T) {
	var _ Expr = Lit(0)
	var _ Expr = Call{}
}
