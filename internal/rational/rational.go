package rational

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Rat is a rational number with a 64-bit numerator and denominator, always
// in lowest terms with a positive denominator.
//
// The denominator is stored biased by one so that the zero value of Rat is a
// valid 0/1. Rat has value semantics: values can be freely copied, compared
// with == and !=, and used as map keys. Two Rats are equal iff their reduced
// numerator/denominator pairs are equal, which the constructors guarantee.
type Rat struct {
	num int64
	den int64 // actual denominator minus 1
}

// Zero is the rational 0/1.
var Zero = Rat{}

// One is the rational 1/1.
var One = Rat{num: 1}

// Try creates the reduced rational num/den.
// Returns ErrZeroDen if den is zero, and ErrOverflow if the reduced value
// does not fit (only possible on int64-min sign-flip edges).
func Try(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrZeroDen
	}
	if num == 0 {
		return Rat{}, nil
	}
	neg := (num < 0) != (den < 0)
	nm, dm := mag(num), mag(den)
	g := gcd(nm, dm)
	return fromParts(neg, nm/g, dm/g)
}

// New is like Try but panics on error. Use only with known-valid inputs.
func New(num, den int64) Rat {
	r, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt creates the rational n/1.
func FromInt(n int64) Rat {
	return Rat{num: n}
}

// Parse parses "m/n" or a plain integer "m" into a reduced rational.
// The fraction need not be in lowest terms; the result will be.
func Parse(s string) (Rat, error) {
	numStr, denStr, slash := strings.Cut(s, "/")
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing numerator: %w", err)
	}
	if !slash {
		return FromInt(num), nil
	}
	den, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil {
		return Rat{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return Try(num, den)
}

// Num returns the reduced numerator.
func (x Rat) Num() int64 {
	return x.num
}

// Den returns the reduced denominator. Always positive.
func (x Rat) Den() int64 {
	return x.den + 1
}

// Sign returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Rat) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool {
	return x.num == 0
}

// IsOne reports whether x == 1.
func (x Rat) IsOne() bool {
	return x == One
}

// IsInt reports whether x has denominator 1.
func (x Rat) IsInt() bool {
	return x.den == 0
}

// String returns x as "m/n".
func (x Rat) String() string {
	return fmt.Sprintf("%d/%d", x.Num(), x.Den())
}

// Float64 returns the closest floating-point approximation of x.
// The conversion is best-effort and may lose precision silently.
func (x Rat) Float64() float64 {
	return float64(x.Num()) / float64(x.Den())
}

// Neg returns -x. Fails with ErrOverflow only for the int64-min numerator.
func (x Rat) Neg() (Rat, error) {
	if x.num == math.MinInt64 {
		return Rat{}, ErrOverflow
	}
	return Rat{num: -x.num, den: x.den}, nil
}

// Abs returns |x|. Fails with ErrOverflow only for the int64-min numerator.
func (x Rat) Abs() (Rat, error) {
	if x.num >= 0 {
		return x, nil
	}
	return x.Neg()
}

// Inv returns 1/x. Fails with ErrDivByZero for zero and ErrOverflow when
// the numerator is int64-min (its magnitude cannot be a denominator).
func (x Rat) Inv() (Rat, error) {
	switch {
	case x.num == 0:
		return Rat{}, ErrDivByZero
	case x.num == math.MinInt64:
		return Rat{}, ErrOverflow
	case x.num < 0:
		return Rat{num: -x.Den(), den: -x.num - 1}, nil
	default:
		return Rat{num: x.Den(), den: x.num - 1}, nil
	}
}

// Add returns x + y, reduced, or ErrOverflow.
//
// The shared denominator factor is divided out before multiplying, so
// overflow is reported only when an intermediate or final term exceeds
// int64, matching the checked-add convention of fixed-width rationals.
func (x Rat) Add(y Rat) (Rat, error) {
	g := int64(gcd(uint64(x.Den()), uint64(y.Den())))
	a, ok := mul64(x.num, y.Den()/g)
	if !ok {
		return Rat{}, ErrOverflow
	}
	b, ok := mul64(y.num, x.Den()/g)
	if !ok {
		return Rat{}, ErrOverflow
	}
	num, ok := add64(a, b)
	if !ok {
		return Rat{}, ErrOverflow
	}
	den, ok := mul64(x.Den()/g, y.Den())
	if !ok {
		return Rat{}, ErrOverflow
	}
	return Try(num, den)
}

// Sub returns x - y, reduced, or ErrOverflow.
func (x Rat) Sub(y Rat) (Rat, error) {
	n, err := y.Neg()
	if err != nil {
		return Rat{}, err
	}
	return x.Add(n)
}

// Mul returns x * y, reduced, or ErrOverflow.
//
// Cross-GCDs are divided out first: since x and y are each reduced, the
// only common factors of the product pair x.num*y.num / x.den*y.den come
// from the opposite operand.
func (x Rat) Mul(y Rat) (Rat, error) {
	g1 := int64(gcd(mag(x.num), uint64(y.Den())))
	g2 := int64(gcd(mag(y.num), uint64(x.Den())))
	num, ok := mul64(x.num/g1, y.num/g2)
	if !ok {
		return Rat{}, ErrOverflow
	}
	den, ok := mul64(x.Den()/g2, y.Den()/g1)
	if !ok {
		return Rat{}, ErrOverflow
	}
	return Try(num, den)
}

// Div returns x / y, reduced. Fails with ErrDivByZero when y is zero and
// ErrOverflow when the quotient leaves the representable range.
func (x Rat) Div(y Rat) (Rat, error) {
	inv, err := y.Inv()
	if err != nil {
		return Rat{}, err
	}
	return x.Mul(inv)
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
// The comparison uses 128-bit cross-multiplication and cannot overflow.
func (x Rat) Cmp(y Rat) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	if sx == 0 {
		return 0
	}
	// Same nonzero sign: compare |x.num|*y.den against |y.num|*x.den and
	// flip the answer for negatives.
	lh, ll := bits.Mul64(mag(x.num), uint64(y.Den()))
	rh, rl := bits.Mul64(mag(y.num), uint64(x.Den()))
	c := cmp128(lh, ll, rh, rl)
	if sx < 0 {
		return -c
	}
	return c
}

// Min returns the smaller of x and y.
func (x Rat) Min(y Rat) Rat {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// Max returns the larger of x and y.
func (x Rat) Max(y Rat) Rat {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Floor returns the greatest integer <= x, as a rational. Never fails.
func (x Rat) Floor() Rat {
	n, d := x.Num(), x.Den()
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return FromInt(q)
}

// Ceil returns the least integer >= x, as a rational. Never fails.
func (x Rat) Ceil() Rat {
	n, d := x.Num(), x.Den()
	q := n / d
	if n%d != 0 && n > 0 {
		q++
	}
	return FromInt(q)
}

// Round returns the nearest integer to x, as a rational. Never fails.
//
// Ties round half away from zero: Round(1/2) == 1 and Round(-1/2) == -1.
func (x Rat) Round() Rat {
	n, d := x.Num(), x.Den()
	q, r := n/d, n%d
	if r == 0 {
		return FromInt(q)
	}
	if 2*mag(r) >= uint64(d) {
		if n > 0 {
			q++
		} else {
			q--
		}
	}
	return FromInt(q)
}

// fromParts assembles a Rat from a sign and already-reduced magnitudes,
// checking that both fit their signed representations.
func fromParts(neg bool, nm, dm uint64) (Rat, error) {
	if dm > math.MaxInt64 {
		return Rat{}, ErrOverflow
	}
	if neg {
		if nm > 1<<63 {
			return Rat{}, ErrOverflow
		}
		if nm == 1<<63 {
			return Rat{num: math.MinInt64, den: int64(dm) - 1}, nil
		}
		return Rat{num: -int64(nm), den: int64(dm) - 1}, nil
	}
	if nm > math.MaxInt64 {
		return Rat{}, ErrOverflow
	}
	return Rat{num: int64(nm), den: int64(dm) - 1}, nil
}

// mag returns the magnitude of x as a uint64. Total, including int64-min.
func mag(x int64) uint64 {
	m := uint64(x)
	if x < 0 {
		m = -m
	}
	return m
}

// gcd returns the greatest common divisor of a and b.
// gcd(a, 0) == a and gcd(0, b) == b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mul64 returns a*b and whether the product fits in an int64.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(mag(a), mag(b))
	if hi != 0 {
		return 0, false
	}
	if (a < 0) != (b < 0) {
		if lo > 1<<63 {
			return 0, false
		}
		if lo == 1<<63 {
			return math.MinInt64, true
		}
		return -int64(lo), true
	}
	if lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// add64 returns a+b and whether the sum fits in an int64.
func add64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

// cmp128 compares the 128-bit values ah:al and bh:bl.
func cmp128(ah, al, bh, bl uint64) int {
	switch {
	case ah != bh:
		if ah < bh {
			return -1
		}
		return 1
	case al != bl:
		if al < bl {
			return -1
		}
		return 1
	default:
		return 0
	}
}
