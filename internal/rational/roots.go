package rational

import "math"

// Pow returns x raised to exp.
//
// The domain policy is evaluated in order:
//  1. x == 0 and exp > 0: result 0.
//  2. x == 0 and exp <= 0: ErrUndefined (covers 0^0).
//  3. exp == 0 (x nonzero): result 1.
//  4. exp a non-negative integer: checked repeated-squaring power.
//  5. otherwise (negative or fractional exponent): ErrUndefined.
//
// Overflow during squaring returns ErrOverflow.
func (x Rat) Pow(exp Rat) (Rat, error) {
	if x.IsZero() {
		if exp.Sign() > 0 {
			return Zero, nil
		}
		return Rat{}, ErrUndefined
	}
	if exp.IsZero() {
		return One, nil
	}
	if !exp.IsInt() || exp.Sign() < 0 {
		return Rat{}, ErrUndefined
	}

	result := One
	base := x
	var err error
	for n := exp.Num(); n > 0; n >>= 1 {
		if n&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return Rat{}, err
			}
		}
		if n > 1 {
			if base, err = base.Mul(base); err != nil {
				return Rat{}, err
			}
		}
	}
	return result, nil
}

// Sqrt returns the exact square root of x.
//
// Defined only when the reduced numerator is non-negative and both the
// numerator and denominator are perfect squares; every root is verified by
// squaring. All other inputs return ErrUndefined.
func (x Rat) Sqrt() (Rat, error) {
	if x.num < 0 {
		return Rat{}, ErrUndefined
	}
	sn, ok := perfectSqrt(uint64(x.num))
	if !ok {
		return Rat{}, ErrUndefined
	}
	sd, ok := perfectSqrt(uint64(x.Den()))
	if !ok {
		return Rat{}, ErrUndefined
	}
	// x is reduced, so its root numerator/denominator pair is too.
	return Rat{num: int64(sn), den: int64(sd) - 1}, nil
}

// Log returns the natural logarithm of x.
// Only log(1) == 0 is supported; every other input returns
// ErrNotImplemented, including mathematically undefined ones.
func (x Rat) Log() (Rat, error) {
	if x.IsOne() {
		return Zero, nil
	}
	return Rat{}, ErrNotImplemented
}

// Cbrt returns the cube root of x.
// Only cbrt(1) == 1 is supported; every other input returns
// ErrNotImplemented.
func (x Rat) Cbrt() (Rat, error) {
	if x.IsOne() {
		return One, nil
	}
	return Rat{}, ErrNotImplemented
}

// perfectSqrt returns the integer square root of n and whether n is a
// perfect square. The float seed is corrected and then verified by squaring.
func perfectSqrt(n uint64) (uint64, bool) {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}
