package kernel

import (
	"fmt"
	"math"

	"github.com/exactplane/projgeom/numeric"
	"github.com/exactplane/projgeom/ordering"
)

// Point is a signed homogeneous point (x, y, z). For z>0 it denotes the
// ordinary point (x/z, y/z); for z<0 it denotes the antipode of (x/z,
// y/z), which lies on the opposite side of every Line; for z==0 it denotes
// a point at infinity in the direction (x, y).
//
// None of x, y, z may equal math.MinInt64, and the all-zero triple is
// forbidden; NewPoint enforces both.
type Point struct {
	X, Y, Z int64
}

// NewPoint constructs a Point, rejecting math.MinInt64 coordinates and the
// degenerate all-zero triple.
func NewPoint(x, y, z int64) (Point, error) {
	switch math.MinInt64 {
	case x:
		return Point{}, &PointMinIntError{Coordinate: "x"}
	case y:
		return Point{}, &PointMinIntError{Coordinate: "y"}
	case z:
		return Point{}, &PointMinIntError{Coordinate: "z"}
	}
	if x == 0 && y == 0 && z == 0 {
		return Point{}, &PointDegenerateError{}
	}
	return Point{X: x, Y: y, Z: z}, nil
}

// Neg returns p's antipode: the same location, opposite sign.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y, Z: -p.Z}
}

// Sign reports p's orientation relative to the real plane: Greater for an
// ordinary point (z>0), Equal for a point at infinity (z==0), Less for an
// antipodal point (z<0).
func (p Point) Sign() ordering.Ordering {
	return ordering.FromInt(sign64(p.Z))
}

func sign64(n int64) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// CmpLine reports p's position relative to l's half-plane: Greater if p
// lies strictly inside {a*x+b*y+c*z > 0}, Less if strictly outside, Equal
// if p lies exactly on l's boundary.
//
// Computed as a*x + b*y + c*z widened to numeric.Int128, since a, b, c are
// int32 and x, y, z are int64: each term needs up to 96 bits, and the sum of
// three such terms needs the full 128.
func (p Point) CmpLine(l Line) ordering.Ordering {
	ax := numeric.MulInt64(int64(l.A), p.X)
	by := numeric.MulInt64(int64(l.B), p.Y)
	cz := numeric.MulInt64(int64(l.C), p.Z)
	total := ax.Add(by).Add(cz)
	return ordering.FromInt(total.Sign())
}

// XCoord is the opaque, totally-ordered value x/z.
type XCoord struct {
	r ratio
}

// Cmp compares two x-coordinates.
func (x XCoord) Cmp(other XCoord) ordering.Ordering {
	return x.r.cmp(other.r)
}

// Eq reports whether x equals other.
func (x XCoord) Eq(other XCoord) bool {
	return x.Cmp(other) == ordering.Equal
}

// XCoord returns p's x-coordinate, x/z, as an opaque comparable value.
//
// Meaningful only among points known to share a sign (e.g. points already
// established to lie on a common directed Line); it is the caller's
// responsibility not to compare XCoord across points at infinity (z==0).
func (p Point) XCoord() XCoord {
	return XCoord{r: newRatio(p.X, p.Z)}
}

// YCoord is the opaque, totally-ordered value y/z.
type YCoord struct {
	r ratio
}

// Cmp compares two y-coordinates.
func (y YCoord) Cmp(other YCoord) ordering.Ordering {
	return y.r.cmp(other.r)
}

// Eq reports whether y equals other.
func (y YCoord) Eq(other YCoord) bool {
	return y.Cmp(other) == ordering.Equal
}

// YCoord returns p's y-coordinate, y/z, as an opaque comparable value.
//
// Meaningful only among points known to share a sign, exactly as XCoord
// documents. Used by the sweep-line event queue to order event points by
// (y, x), ascending: the queue yields the least point first, not the
// greatest.
func (p Point) YCoord() YCoord {
	return YCoord{r: newRatio(p.Y, p.Z)}
}

// Eq reports whether p and other denote the same signed homogeneous point:
// proportional by a shared positive scalar.
//
// Proportionality is checked via the 3D cross product of the two triples
// (all three components must vanish); the scalar's sign is then read off
// the dot product, which shares the scalar's sign whenever the underlying
// vector is nonzero.
func (p Point) Eq(other Point) bool {
	cx := numeric.MulInt64(p.Y, other.Z).Sub(numeric.MulInt64(other.Y, p.Z))
	cy := numeric.MulInt64(p.Z, other.X).Sub(numeric.MulInt64(other.Z, p.X))
	cz := numeric.MulInt64(p.X, other.Y).Sub(numeric.MulInt64(other.X, p.Y))
	if cx.Sign() != 0 || cy.Sign() != 0 || cz.Sign() != 0 {
		return false
	}
	dot := numeric.MulInt64(p.X, other.X).
		Add(numeric.MulInt64(p.Y, other.Y)).
		Add(numeric.MulInt64(p.Z, other.Z))
	return dot.Sign() > 0
}

// String renders p as its (x, y, z) triple.
func (p Point) String() string {
	return fmt.Sprintf("Point(%d, %d, %d)", p.X, p.Y, p.Z)
}
