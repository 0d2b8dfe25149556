package polygon

import "fmt"

// InfiniteRegionError reports an attempt to convert an unbounded or
// whole-plane hull.ConvexPolygon into a Polygon.
type InfiniteRegionError struct{}

func (e *InfiniteRegionError) Error() string {
	return "polygon: cannot convert an infinite convex region to a bounded polygon"
}

// DegenerateLoopError reports an edge loop passed to FromEdgeLoops that is
// too short to bound a region, or whose consecutive edges meet at a point
// at infinity instead of an ordinary vertex.
type DegenerateLoopError struct {
	LoopIndex int
	Reason    string
}

func (e *DegenerateLoopError) Error() string {
	return fmt.Sprintf("polygon: loop %d is degenerate: %s", e.LoopIndex, e.Reason)
}
