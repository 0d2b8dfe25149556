package polygon

import (
	"github.com/exactplane/projgeom/kernel"
	"github.com/exactplane/projgeom/ordering"
)

// Contains decides pt's position relative to p by ray casting: Greater if
// pt is strictly inside, Less if strictly outside, Equal if pt lies on the
// boundary.
//
// Grounded on original_source/src/polygon/contains.rs, ported edge for
// edge: each boundary edge is canonicalized to a non-negative b coefficient,
// so that its positive side faces +y, and a vertical ray from pt toward +y
// is tested for crossing it: pt must lie strictly below the edge, and the
// x-coordinates of the edge's two endpoints must straddle pt's.
func (p Polygon) Contains(pt kernel.Point) ordering.Ordering {
	if pt.Sign() == ordering.Equal {
		return ordering.Less
	}

	inside := false

	for _, comp := range p.components {
		n := len(comp)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			k := (i + 2) % n

			edge := kernel.Line(comp[j])
			if edge.B < 0 {
				edge = edge.Neg()
			}

			pt1 := comp[i].Intersect(comp[j])
			pt2 := comp[j].Intersect(comp[k])

			switch pt.CmpLine(edge) {
			case ordering.Less:
				x1, x2, x3 := pt1.XCoord(), pt.XCoord(), pt2.XCoord()
				if (x1.Cmp(x2) == ordering.Less) != (x3.Cmp(x2) == ordering.Less) {
					inside = !inside
				}

			case ordering.Equal:
				lineI := kernel.Line(comp[i])
				o1 := pt.CmpLine(lineI)
				switch {
				case o1 == ordering.Equal:
					return ordering.Equal
				case o1 != pt2.CmpLine(lineI):
					continue
				}

				lineK := kernel.Line(comp[k])
				o2 := pt.CmpLine(lineK)
				switch {
				case o2 == ordering.Equal:
					return ordering.Equal
				case o2 != pt1.CmpLine(lineK):
					continue
				}

				return ordering.Equal

			case ordering.Greater:
			}
		}
	}

	if inside {
		return ordering.Greater
	}
	return ordering.Less
}
