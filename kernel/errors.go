package kernel

import "fmt"

// LineMinIntError reports that a Line was constructed with a coefficient
// equal to math.MinInt32, the one int32 value this module's widening
// arithmetic cannot safely negate or absolute-value.
type LineMinIntError struct {
	// Coordinate names which of a, b, or c held the offending value.
	Coordinate string
}

func (e *LineMinIntError) Error() string {
	return fmt.Sprintf("kernel: line coordinate %s must not be math.MinInt32", e.Coordinate)
}

// LineDegenerateError reports an attempt to construct the all-zero Line
// (a=b=c=0). Every other member of the a=b=0 "line at infinity" sub-family
// is legal (c>0 is the whole plane, c<0 is empty); c=0 is the one case
// spec.md's data model section calls out as forbidden, since it names
// neither a half-plane nor its complement.
type LineDegenerateError struct{}

func (e *LineDegenerateError) Error() string {
	return "kernel: line (0, 0, 0) is degenerate and not a valid directed half-plane"
}

// PointMinIntError reports that a Point was constructed with a coordinate
// equal to math.MinInt64.
type PointMinIntError struct {
	// Coordinate names which of x, y, or z held the offending value.
	Coordinate string
}

func (e *PointMinIntError) Error() string {
	return fmt.Sprintf("kernel: point coordinate %s must not be math.MinInt64", e.Coordinate)
}

// PointDegenerateError reports an attempt to construct the all-zero Point
// (x=y=z=0). Every other triple names either an ordinary point, its
// antipode, or a point at infinity (a direction); (0, 0, 0) names none of
// those.
type PointDegenerateError struct{}

func (e *PointDegenerateError) Error() string {
	return "kernel: point (0, 0, 0) is degenerate and not a valid homogeneous point"
}
