package polygon

import (
	"testing"

	"github.com/exactplane/projgeom/ordering"
	"github.com/stretchr/testify/require"
)

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func TestContainsSquareMatchesChebyshevDistance(t *testing.T) {
	c := square(t)
	poly, err := FromConvex(c)
	require.NoError(t, err)

	for x := int64(-2); x <= 2; x++ {
		for y := int64(-2); y <= 2; y++ {
			pt := mustPoint(t, x, y, 1)
			got := poly.Contains(pt)
			want := ordering.FromInt(int(1 - maxInt64(abs(x), abs(y))))
			require.Equalf(t, want, got, "point (%d,%d)", x, y)
		}
	}
}

func TestContainsDiamondMatchesManhattanDistance(t *testing.T) {
	poly, err := FromConvex(diamond(t))
	require.NoError(t, err)

	for x := int64(-2); x <= 2; x++ {
		for y := int64(-2); y <= 2; y++ {
			pt := mustPoint(t, x, y, 1)
			got := poly.Contains(pt)
			want := ordering.FromInt(int(1 - (abs(x) + abs(y))))
			require.Equalf(t, want, got, "point (%d,%d)", x, y)
		}
	}
}

func TestContainsReturnsLessForPointAtInfinity(t *testing.T) {
	poly, err := FromConvex(square(t))
	require.NoError(t, err)

	pt := mustPoint(t, 1, 0, 0)
	require.Equal(t, ordering.Less, poly.Contains(pt))
}

func TestContainsEmptyPolygonIsAlwaysOutside(t *testing.T) {
	var poly Polygon
	require.Equal(t, ordering.Less, poly.Contains(mustPoint(t, 0, 0, 1)))
}

func TestContainsAgreesWithConvexPolygonContains(t *testing.T) {
	c := square(t)
	poly, err := FromConvex(c)
	require.NoError(t, err)

	for x := int64(-3); x <= 3; x++ {
		for y := int64(-3); y <= 3; y++ {
			pt := mustPoint(t, x, y, 1)
			require.Equal(t, c.Contains(pt), poly.Contains(pt))
		}
	}
}
