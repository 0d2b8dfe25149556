package kernel

import "fmt"

// UnorientedLine is a Line stripped of its orientation: it names the same
// boundary as Line, but makes no claim about which side is "positive". l
// and l.Neg() describe the same UnorientedLine.
//
// Grounded on the UnorientedLine type in original_source/src/utils.rs, which
// exists so the hull and sweep algorithms can reason about a shared boundary
// between two directed half-planes without caring which one of the pair (or
// its negation) produced it.
type UnorientedLine Line

// NewUnorientedLine constructs an UnorientedLine, applying the same
// validation as NewLine.
func NewUnorientedLine(a, b, c int32) (UnorientedLine, error) {
	l, err := NewLine(a, b, c)
	if err != nil {
		return UnorientedLine{}, err
	}
	return UnorientedLine(l), nil
}

// Eq reports whether u and other name the same boundary, in either
// orientation.
func (u UnorientedLine) Eq(other UnorientedLine) bool {
	return Line(u).Eq(Line(other)) || Line(u).Eq(Line(other).Neg())
}

// Intersect returns the point where u and other cross, canonicalized to a
// deterministic sign: Z is forced non-negative, and when Z is exactly zero
// (the two lines are parallel and meet only at infinity) X is forced
// non-negative, falling back to Y when X is also zero. Without this
// canonicalization the result would depend on which of the two equally
// valid orientations of u and other happened to be passed in.
func (u UnorientedLine) Intersect(other UnorientedLine) Point {
	p := Line(u).Intersect(Line(other))
	switch {
	case p.Z < 0:
		return p.Neg()
	case p.Z == 0 && (p.X < 0 || (p.X == 0 && p.Y < 0)):
		return p.Neg()
	default:
		return p
	}
}

// AngleFromHorizontal returns u's direction as an opaque comparable value,
// spanning 180 degrees rather than Line.Slope's 360: u and an UnorientedLine
// built from u.Neg() always compare equal here, since they name the same
// boundary. Tag 0 is the horizontal boundary itself (a==0), the sole
// discontinuity in the 180-degree cycle; tag 1 covers every other
// direction, ordered by the ratio b/a, which runs continuously from just
// past horizontal, through vertical (a!=0, b==0, ratio zero), back around
// to just short of horizontal again.
//
// Grounded on original_source/src/utils.rs's angle_from_horizontal: no
// separate sign canonicalization is needed, since negating both a and b
// leaves a==0 unchanged and leaves the ratio b/a unchanged.
//
// Panics if u is the line at infinity (a=0 and b=0).
func (u UnorientedLine) AngleFromHorizontal() Slope {
	if u.A == 0 && u.B == 0 {
		panic("kernel: asked for the angle of the line at infinity")
	}
	if u.A == 0 {
		return Slope{tag: 0, r: ratioZero}
	}
	return Slope{tag: 1, r: newRatio(int64(u.B), int64(u.A))}
}

// String renders u as its (a, b, c) triple.
func (u UnorientedLine) String() string {
	return fmt.Sprintf("UnorientedLine(%d, %d, %d)", u.A, u.B, u.C)
}
