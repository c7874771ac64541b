package value

import (
	"fmt"
	"math"
	"strconv"
)

// Handle identifies a canonicalized value inside its sort's store.
// Handles are assigned monotonically from zero and are never reused or
// invalidated: host structures may retain one indefinitely.
type Handle uint64

// Kind names an operand or result sort in a primitive signature.
type Kind string

// The sorts known to the dispatch layer.
const (
	KindRational Kind = "Rational"
	KindI64      Kind = "i64"
	KindF64      Kind = "f64"
	KindUnit     Kind = "Unit"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindRational, KindI64, KindF64, KindUnit:
		return true
	}
	return false
}

// Value is the host engine's fixed-width generic value slot: a sort tag and
// 64 raw bits. The interpretation of Bits depends on Sort: a two's-complement
// integer for i64, IEEE 754 bits for f64, zero for Unit, and a store Handle
// for boxed sorts such as Rational.
type Value struct {
	Sort Kind
	Bits uint64
}

// I64 boxes an int64.
func I64(n int64) Value {
	return Value{Sort: KindI64, Bits: uint64(n)}
}

// AsI64 returns the int64 payload. Meaningful only for i64 values.
func (v Value) AsI64() int64 {
	return int64(v.Bits)
}

// F64 boxes a float64.
func F64(f float64) Value {
	return Value{Sort: KindF64, Bits: math.Float64bits(f)}
}

// AsF64 returns the float64 payload. Meaningful only for f64 values.
func (v Value) AsF64() float64 {
	return math.Float64frombits(v.Bits)
}

// Unit returns the unit value, the trivial payload of a holding relation.
func Unit() Value {
	return Value{Sort: KindUnit}
}

// Boxed wraps a store handle for the given sort.
func Boxed(sort Kind, h Handle) Value {
	return Value{Sort: sort, Bits: uint64(h)}
}

// AsHandle returns the store handle payload. Meaningful only for boxed sorts.
func (v Value) AsHandle() Handle {
	return Handle(v.Bits)
}

// String renders the raw slot for diagnostics. Boxed payloads render as
// handles; resolving them is the owning store's job.
func (v Value) String() string {
	switch v.Sort {
	case KindI64:
		return strconv.FormatInt(v.AsI64(), 10)
	case KindF64:
		return strconv.FormatFloat(v.AsF64(), 'g', -1, 64)
	case KindUnit:
		return "()"
	default:
		return fmt.Sprintf("%s#%d", v.Sort, v.Bits)
	}
}
