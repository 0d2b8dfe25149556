package numeric

import "math/bits"

// Int128 is a signed 128-bit integer, used to widen the dot products and
// cross products the kernel's exact predicates depend on.
//
// Grounded on the Int128 type in CWBudde-Go-Clipper2/port/math128.go, which
// solves the same problem (128-bit intermediates without big.Int) for
// Clipper2's integer polygon clipper. Only the operations this module's
// predicates actually need are ported: construction from an int64 or from
// an int64*int64 product, Add, Sub, Cmp, and comparison against zero.
type Int128 struct {
	hi int64
	lo uint64
}

// NewInt128FromInt64 widens a single int64 to Int128.
func NewInt128FromInt64(v int64) Int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return Int128{hi: hi, lo: uint64(v)}
}

// MulInt64 returns the widened product of two int64 values.
//
// Every caller in this module supplies operands built from int32 or int64
// coordinates excluding their type's minimum value, so the product always
// fits in 128 bits; MulInt64 does not attempt to detect overflow beyond that.
func MulInt64(a, b int64) Int128 {
	negative := (a < 0) != (b < 0)

	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	result := Int128{hi: int64(hi), lo: lo}
	if negative {
		result = result.negate()
	}
	return result
}

func (i Int128) negate() Int128 {
	lo := ^i.lo + 1
	hi := ^i.hi
	if lo == 0 {
		hi++
	}
	return Int128{hi: hi, lo: lo}
}

// Add returns i+other, widened as needed (it never overflows Int128: the sum
// of the bounded number of terms this module ever accumulates always fits).
func (i Int128) Add(other Int128) Int128 {
	lo, carry := bits.Add64(i.lo, other.lo, 0)
	hi, _ := bits.Add64(uint64(i.hi), uint64(other.hi), carry)
	return Int128{hi: int64(hi), lo: lo}
}

// Sign returns -1, 0, or 1 according to whether i is negative, zero, or
// positive.
func (i Int128) Sign() int {
	switch {
	case i.hi < 0:
		return -1
	case i.hi == 0 && i.lo == 0:
		return 0
	default:
		return 1
	}
}

// Cmp compares i and other, returning -1, 0, or 1.
func (i Int128) Cmp(other Int128) int {
	d := i.Sub(other)
	return d.Sign()
}

// Sub returns i-other.
func (i Int128) Sub(other Int128) Int128 {
	return i.Add(other.negate())
}
