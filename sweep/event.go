package sweep

import (
	"github.com/exactplane/projgeom/kernel"
	"github.com/exactplane/projgeom/ordering"
)

// EdgeAssignment names a boundary edge and which input polygon (by index)
// it belongs to.
type EdgeAssignment struct {
	Line    kernel.UnorientedLine
	PolyIdx int
}

// canonicalEventPoint normalizes an event point's sign to non-negative:
// queued points are never supposed to be at infinity, and +p and -p denote
// the same location, so the queue only ever needs to remember one of them.
func canonicalEventPoint(p kernel.Point) kernel.Point {
	if p.Sign() == ordering.Less {
		return p.Neg()
	}
	return p
}

func pointKeyCmp(a, b kernel.Point) ordering.Ordering {
	if c := a.YCoord().Cmp(b.YCoord()); c != ordering.Equal {
		return c
	}
	return a.XCoord().Cmp(b.XCoord())
}
