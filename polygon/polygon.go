package polygon

import (
	"github.com/exactplane/projgeom/hull"
	"github.com/exactplane/projgeom/kernel"
	"github.com/exactplane/projgeom/ordering"
)

// Polygon is a bounded region of the plane whose boundary is made of
// straight edges. It may have multiple disconnected components and holes;
// each component is a closed cycle of at least three UnorientedLines
// recorded in no particular winding order (operations on a Polygon treat
// orientation as insignificant once the boundary is fixed).
type Polygon struct {
	components [][]kernel.UnorientedLine
}

// Components returns p's boundary cycles. The caller must not mutate the
// returned slices.
func (p Polygon) Components() [][]kernel.UnorientedLine {
	return p.components
}

// FromConvex converts a bounded hull.ConvexPolygon into a Polygon,
// reporting InfiniteRegionError if the region is unbounded (an empty edge
// list, or any consecutive pair of edges meeting at an ideal or
// non-positive point).
func FromConvex(c hull.ConvexPolygon) (Polygon, error) {
	edges := c.Edges()
	if len(edges) == 0 {
		return Polygon{}, &InfiniteRegionError{}
	}

	for i := 0; i < len(edges); i++ {
		j := (i + 1) % len(edges)
		if edges[i].Intersect(edges[j]).Sign() != ordering.Greater {
			return Polygon{}, &InfiniteRegionError{}
		}
	}

	loop := make([]kernel.UnorientedLine, len(edges))
	for i, e := range edges {
		loop[i] = kernel.UnorientedLine(e)
	}
	return Polygon{components: [][]kernel.UnorientedLine{loop}}, nil
}

// FromEdgeLoops builds a Polygon directly from raw, directed edge loops,
// rejecting any loop shorter than a triangle or whose consecutive edges
// meet at a point at infinity.
func FromEdgeLoops(loops [][]kernel.Line) (Polygon, error) {
	components := make([][]kernel.UnorientedLine, 0, len(loops))

	for idx, edges := range loops {
		if len(edges) < 3 {
			return Polygon{}, &DegenerateLoopError{LoopIndex: idx, Reason: "fewer than three edges"}
		}

		for i := 0; i < len(edges); i++ {
			j := (i + 1) % len(edges)
			if edges[i].Intersect(edges[j]).Z == 0 {
				return Polygon{}, &DegenerateLoopError{LoopIndex: idx, Reason: "consecutive edges meet at infinity"}
			}
		}

		loop := make([]kernel.UnorientedLine, len(edges))
		for i, e := range edges {
			loop[i] = kernel.UnorientedLine(e)
		}
		components = append(components, loop)
	}

	return Polygon{components: components}, nil
}
