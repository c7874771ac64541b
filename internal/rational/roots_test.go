package rational

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowDomainPolicy(t *testing.T) {
	tests := []struct {
		name      string
		base, exp Rat
		want      Rat
		wantErr   error
	}{
		{"zero to positive", Zero, FromInt(3), Zero, nil},
		{"zero to fractional positive", Zero, New(1, 2), Zero, nil},
		{"zero to zero", Zero, Zero, Rat{}, ErrUndefined},
		{"zero to negative", Zero, FromInt(-1), Rat{}, ErrUndefined},
		{"nonzero to zero", FromInt(5), Zero, One, nil},
		{"square", FromInt(3), FromInt(2), FromInt(9), nil},
		{"cube of fraction", New(2, 3), FromInt(3), New(8, 27), nil},
		{"first power", New(7, 4), One, New(7, 4), nil},
		{"negative base even exponent", FromInt(-2), FromInt(4), FromInt(16), nil},
		{"negative base odd exponent", FromInt(-2), FromInt(3), FromInt(-8), nil},
		{"negative exponent", FromInt(2), FromInt(-1), Rat{}, ErrUndefined},
		{"fractional exponent", FromInt(4), New(1, 2), Rat{}, ErrUndefined},
		{"overflowing power", FromInt(2), FromInt(64), Rat{}, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.base.Pow(tt.exp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPowLargeIntegerExponent(t *testing.T) {
	// 1^n is fine for any exponent; the loop must not overflow on the
	// exponent itself.
	got, err := One.Pow(FromInt(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, One, got)

	got, err = FromInt(-1).Pow(FromInt(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, FromInt(-1), got)
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		name    string
		in      Rat
		want    Rat
		wantErr error
	}{
		{"perfect square fraction", New(4, 9), New(2, 3), nil},
		{"perfect square integer", FromInt(144), FromInt(12), nil},
		{"one", One, One, nil},
		{"zero", Zero, Zero, nil},
		{"non-square numerator", FromInt(2), Rat{}, ErrUndefined},
		{"non-square denominator", New(4, 3), Rat{}, ErrUndefined},
		{"negative", FromInt(-1), Rat{}, ErrUndefined},
		{"negative fraction", New(-4, 9), Rat{}, ErrUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Sqrt()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSqrtRootStaysReduced(t *testing.T) {
	got, err := New(16, 25).Sqrt()
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Num())
	assert.Equal(t, int64(5), got.Den())
}

func TestLog(t *testing.T) {
	got, err := One.Log()
	require.NoError(t, err)
	assert.Equal(t, Zero, got)

	// Every non-one input is unsupported, including mathematically
	// undefined ones; the tag must stay distinct from ErrUndefined.
	for _, in := range []Rat{FromInt(2), New(1, 2), Zero, FromInt(-1)} {
		_, err := in.Log()
		assert.ErrorIs(t, err, ErrNotImplemented, "log(%v)", in)
		assert.NotErrorIs(t, err, ErrUndefined)
	}
}

func TestCbrt(t *testing.T) {
	got, err := One.Cbrt()
	require.NoError(t, err)
	assert.Equal(t, One, got)

	for _, in := range []Rat{FromInt(8), New(1, 8), Zero, FromInt(-1)} {
		_, err := in.Cbrt()
		assert.ErrorIs(t, err, ErrNotImplemented, "cbrt(%v)", in)
	}
}

func TestPerfectSqrtBoundaries(t *testing.T) {
	r, ok := perfectSqrt(0)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), r)

	r, ok = perfectSqrt(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), r)

	_, ok = perfectSqrt(math.MaxInt64)
	assert.False(t, ok)

	// Largest perfect square below 2^63.
	root := uint64(3037000499)
	r, ok = perfectSqrt(root * root)
	assert.True(t, ok)
	assert.Equal(t, root, r)

	_, ok = perfectSqrt(root*root + 1)
	assert.False(t, ok)
}
