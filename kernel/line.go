package kernel

import (
	"fmt"
	"math"

	"github.com/exactplane/projgeom/numeric"
	"github.com/exactplane/projgeom/ordering"
)

// Line is a directed half-plane {(x,y) : a*x + b*y + c > 0}, stored as the
// integer triple (a, b, c). None of a, b, c may equal math.MinInt32; NewLine
// enforces this.
//
// The sub-family a=b=0 is the "line at infinity": c>0 denotes the universe
// (every real point satisfies it), c<0 denotes the empty set, and c=0 is
// forbidden (it names neither a half-plane nor its complement).
type Line struct {
	A, B, C int32
}

// NewLine constructs a Line, rejecting math.MinInt32 coordinates (which
// cannot be safely negated or widened by this package's arithmetic) and the
// degenerate all-zero triple.
func NewLine(a, b, c int32) (Line, error) {
	switch math.MinInt32 {
	case int(a):
		return Line{}, &LineMinIntError{Coordinate: "a"}
	case int(b):
		return Line{}, &LineMinIntError{Coordinate: "b"}
	case int(c):
		return Line{}, &LineMinIntError{Coordinate: "c"}
	}
	if a == 0 && b == 0 && c == 0 {
		return Line{}, &LineDegenerateError{}
	}
	return Line{A: a, B: b, C: c}, nil
}

// InfinityKind classifies a Line as a real boundary, the whole plane, or the
// empty set.
type InfinityKind int8

const (
	// NotInfinity means the Line is a genuine directed boundary.
	NotInfinity InfinityKind = iota

	// Universe means the Line's half-plane is the entire plane (a=b=0, c>0).
	Universe

	// Empty means the Line's half-plane contains no points (a=b=0, c<0).
	Empty
)

// IsInfinity classifies l per InfinityKind.
func (l Line) IsInfinity() InfinityKind {
	if l.A != 0 || l.B != 0 {
		return NotInfinity
	}
	if l.C > 0 {
		return Universe
	}
	return Empty
}

// Neg reverses l's positive and negative sides.
func (l Line) Neg() Line {
	return Line{A: -l.A, B: -l.B, C: -l.C}
}

// Intersect returns the intersection of l and other as a homogeneous Point,
// via the widened 3D cross product of their coefficient triples. The
// returned point's sign is positive iff the counterclockwise angle from l to
// other is less than 180 degrees.
//
// If l and other are equal (same directed half-plane), the result is the
// degenerate point (0, 0, 0); it is the caller's responsibility not to rely
// on a meaningful intersection in that case.
func (l Line) Intersect(other Line) Point {
	a1, b1, c1 := int64(l.A), int64(l.B), int64(l.C)
	a2, b2, c2 := int64(other.A), int64(other.B), int64(other.C)
	return Point{
		X: b1*c2 - b2*c1,
		Y: c1*a2 - c2*a1,
		Z: a1*b2 - a2*b1,
	}
}

// Slope is the opaque, totally-ordered value described in spec.md §3: a
// quadrant tag in {0,1,2,3}, broken by the ratio -a/b. Two non-infinite
// lines share a Slope iff they are parallel and point the same direction.
type Slope struct {
	tag int8
	r   ratio
}

// Slope returns l's slope.
//
// Panics if l is the line at infinity (a=0 and b=0): a direction is
// undefined there, exactly as spec.md §4.1 documents for Line::slope.
func (l Line) Slope() Slope {
	switch {
	case l.B > 0:
		return Slope{tag: 1, r: newRatio(int64(-l.A), int64(l.B))}
	case l.B < 0:
		return Slope{tag: 3, r: newRatio(int64(-l.A), int64(l.B))}
	case l.A > 0:
		return Slope{tag: 0, r: ratioZero}
	case l.A < 0:
		return Slope{tag: 2, r: ratioZero}
	default:
		panic("kernel: asked for the slope of the line at infinity")
	}
}

// Cmp compares two slopes. b=0 lines (tags 0 and 2) compare equal to any
// other slope sharing their tag regardless of the ratio field, since -a/b is
// undefined there; tag alone determines the order in that case (see
// Line.Slope).
func (s Slope) Cmp(other Slope) ordering.Ordering {
	if s.tag != other.tag {
		return ordering.FromInt(int(s.tag) - int(other.tag))
	}
	if s.tag == 0 || s.tag == 2 {
		return ordering.Equal
	}
	return s.r.cmp(other.r)
}

// Eq reports whether two slopes are equal.
func (s Slope) Eq(other Slope) bool {
	return s.Cmp(other) == ordering.Equal
}

// Distance is the opaque, totally-ordered value c / max(|a|, |b|). Given two
// lines with equal Slope, the one with the lesser Distance has the smaller
// half-plane: it is contained in the other's (see Line.Distance).
type Distance struct {
	r ratio
}

// Distance returns c / max(|a|, |b|) as an opaque comparable value.
//
// Given l1.Slope().Eq(l2.Slope()), l1's half-plane is contained in l2's iff
// l1.Distance().Cmp(l2.Distance()) is Less or Equal.
func (l Line) Distance() Distance {
	den := max(int64(numeric.Abs(l.A)), int64(numeric.Abs(l.B)))
	// Unlike newRatio, this does not normalize sign or forbid a zero
	// denominator: den is already non-negative by construction (it is a
	// max of absolute values), and Distance is never compared except
	// between two lines sharing a Slope, which rules out the all-zero
	// denominator (the line at infinity has no Slope to share).
	return Distance{r: ratio{num: int64(l.C), den: den}}
}

// Cmp compares two distances.
func (d Distance) Cmp(other Distance) ordering.Ordering {
	return d.r.cmp(other.r)
}

// Eq reports whether d equals other.
func (d Distance) Eq(other Distance) bool {
	return d.Cmp(other) == ordering.Equal
}

// Eq reports whether l and other denote the same directed half-plane.
//
// Two lines are equal when their normalized (Slope, Distance) pairs are
// equal. (0, 0, 0) is treated as its own degenerate class: it equals only
// itself. NewLine never produces (0, 0, 0), and neither does Neg of a Line
// NewLine produced, so this case only matters for Lines built via struct
// literal.
func (l Line) Eq(other Line) bool {
	lZero := l.A == 0 && l.B == 0 && l.C == 0
	oZero := other.A == 0 && other.B == 0 && other.C == 0
	if lZero || oZero {
		return lZero && oZero
	}
	return l.Slope().Eq(other.Slope()) && l.Distance().Eq(other.Distance())
}

// String renders l as its (a, b, c) triple.
func (l Line) String() string {
	return fmt.Sprintf("Line(%d, %d, %d)", l.A, l.B, l.C)
}
