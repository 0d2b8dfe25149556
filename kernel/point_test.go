package kernel

import (
	"math"
	"testing"

	"github.com/exactplane/projgeom/ordering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, x, y, z int64) Point {
	t.Helper()
	p, err := NewPoint(x, y, z)
	require.NoError(t, err)
	return p
}

func TestNewPointRejectsDegenerate(t *testing.T) {
	_, err := NewPoint(0, 0, 0)
	assert.ErrorAs(t, err, new(*PointDegenerateError))
}

func TestNewPointRejectsMinInt64(t *testing.T) {
	_, err := NewPoint(math.MinInt64, 0, 1)
	assert.ErrorAs(t, err, new(*PointMinIntError))
}

func TestPointSign(t *testing.T) {
	assert.Equal(t, ordering.Greater, mustPoint(t, 1, 1, 1).Sign())
	assert.Equal(t, ordering.Less, mustPoint(t, 1, 1, -1).Sign())
	assert.Equal(t, ordering.Equal, mustPoint(t, 1, 1, 0).Sign())
}

func TestPointNeg(t *testing.T) {
	p := mustPoint(t, 2, -3, 4)
	assert.Equal(t, Point{X: -2, Y: 3, Z: -4}, p.Neg())
}

func TestPointCmpLine(t *testing.T) {
	// Line x > 0 (a=1,b=0,c=0); point (1,0,1) is at x=1, strictly inside.
	l := mustLine(t, 1, 0, 0)
	inside := mustPoint(t, 1, 0, 1)
	outside := mustPoint(t, -1, 0, 1)
	onBoundary := mustPoint(t, 0, 5, 1)

	assert.Equal(t, ordering.Greater, inside.CmpLine(l))
	assert.Equal(t, ordering.Less, outside.CmpLine(l))
	assert.Equal(t, ordering.Equal, onBoundary.CmpLine(l))
}

func TestPointCmpLineFlipsUnderNegation(t *testing.T) {
	l := mustLine(t, 1, 0, 0)
	p := mustPoint(t, 1, 0, 1)
	assert.Equal(t, p.CmpLine(l).Reverse(), p.Neg().CmpLine(l))
	assert.Equal(t, p.CmpLine(l).Reverse(), p.CmpLine(l.Neg()))
}

func TestPointEqScaledByPositiveScalar(t *testing.T) {
	p := mustPoint(t, 2, 4, 6)
	q := mustPoint(t, 1, 2, 3)
	assert.True(t, p.Eq(q))
}

func TestPointEqRejectsNegativeScalar(t *testing.T) {
	p := mustPoint(t, 1, 2, 3)
	assert.False(t, p.Eq(p.Neg()))
}

func TestPointEqRejectsNonProportional(t *testing.T) {
	p := mustPoint(t, 1, 2, 3)
	q := mustPoint(t, 1, 2, 4)
	assert.False(t, p.Eq(q))
}

func TestPointXCoordOrders(t *testing.T) {
	left := mustPoint(t, -1, 0, 1)
	right := mustPoint(t, 1, 0, 1)
	assert.Equal(t, ordering.Less, left.XCoord().Cmp(right.XCoord()))
}

func TestPointYCoordOrders(t *testing.T) {
	low := mustPoint(t, 0, -1, 1)
	high := mustPoint(t, 0, 1, 1)
	assert.Equal(t, ordering.Less, low.YCoord().Cmp(high.YCoord()))
}
