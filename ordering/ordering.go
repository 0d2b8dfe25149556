// Package ordering defines the three-valued comparison result shared by every
// exact predicate in projgeom: Less, Equal, and Greater.
//
// Every geometric predicate in this module — cmp_line, sign, point containment,
// and so on — is decided exactly, with no tolerance, so the result is always
// one of exactly three values. Ordering carries that result around instead of
// a signed int, the way [github.com/mikenye/geom2d/types.Relationship] carries
// around a small closed set of named outcomes rather than a bare int.
package ordering

import "fmt"

// Ordering is the result of comparing two exact quantities.
type Ordering int8

// Valid values for Ordering.
const (
	// Less indicates the left-hand operand is strictly smaller.
	Less Ordering = iota - 1

	// Equal indicates the two operands compare exactly equal.
	Equal

	// Greater indicates the left-hand operand is strictly larger.
	Greater
)

// String returns the name of o.
//
// Panics if o is not one of Less, Equal, or Greater.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		panic(fmt.Errorf("unsupported Ordering: %d", o))
	}
}

// Reverse flips Less and Greater, leaving Equal unchanged.
//
// Reverse is used throughout the kernel to implement the sign-symmetry
// invariant (P1): negating a Point or a Line reverses cmp_line's verdict.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return Equal
	}
}

// FromInt maps the sign of n to an Ordering, matching the convention used by
// Go's standard cmp.Compare and by numeric.Int128's Sign and Cmp, whose
// results this package's callers pass to it.
func FromInt(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}
