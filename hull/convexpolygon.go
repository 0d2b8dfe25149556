package hull

import (
	"fmt"
	"slices"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/exactplane/projgeom/kernel"
	"github.com/exactplane/projgeom/ordering"
)

// ConvexPolygon is a convex region of the plane, stored as its boundary
// edges in clockwise order. It may be unbounded (a single half-plane, or an
// infinite wedge), but it is never empty: FromBoundaries reports
// EmptyRegionError instead of ever constructing one.
//
// A ConvexPolygon with no edges at all denotes the entire plane.
type ConvexPolygon struct {
	edges []kernel.Line
}

// Edges returns c's boundary, in clockwise order. The caller must not
// mutate the returned slice.
func (c ConvexPolygon) Edges() []kernel.Line {
	return c.edges
}

// Contains reports pt's position relative to c: Greater if pt is strictly
// inside every edge, Less if it is strictly outside at least one, Equal if
// it is on the boundary of at least one edge and inside (or on) every
// other.
func (c ConvexPolygon) Contains(pt kernel.Point) ordering.Ordering {
	result := ordering.Greater
	for _, e := range c.edges {
		if cmp := pt.CmpLine(e); cmp < result {
			result = cmp
		}
	}
	return result
}

// AssertValid reports whether every vertex of c (the intersection of each
// pair of consecutive edges) lies strictly inside every other edge. A
// correctly reduced ConvexPolygon always satisfies this; AssertValid exists
// for tests to check that FromBoundaries held up its end of the bargain.
func (c ConvexPolygon) AssertValid() error {
	n := len(c.edges)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vertex := c.edges[i].Intersect(c.edges[j])

		worst := ordering.Greater
		for k, edge := range c.edges {
			if k == i || k == j {
				continue
			}
			if cmp := vertex.CmpLine(edge); cmp < worst {
				worst = cmp
			}
		}
		if worst != ordering.Greater {
			return fmt.Errorf("hull: vertex %d, the intersection of edges %d and %d, is not strictly inside the region bounded by the remaining edges", i, i, j)
		}
	}
	return nil
}

// isMiddleLineRemovable reports whether l2 contributes nothing to the
// boundary formed by l1, l2, l3 in sequence: this holds exactly when l1 and
// l3 cross at a real point (not at infinity, and not behind the surface)
// that already satisfies l2.
//
//	\     /
//	 \   /   -> false: l2's vertex is needed
//	--\-/--
//
//	 \   /
//	  \ /
//	   X    -> true: l1 and l3 already cross past l2
//	--/-\--
func isMiddleLineRemovable(l1, l2, l3 kernel.Line) bool {
	p := l1.Intersect(l3)
	return p.Sign() == ordering.Greater && p.CmpLine(l2) != ordering.Less
}

// oppositeOverlapping reports whether l1 and l2 face directly opposite
// directions and l1's half-plane lies within the complement of l2's (l1 is
// contained in l2.Neg()), so that no point satisfies both: the two
// half-planes do not overlap and their intersection is empty.
func oppositeOverlapping(l1, l2 kernel.Line) bool {
	neg := l2.Neg()
	return l1.Slope().Eq(neg.Slope()) && l1.Distance().Cmp(neg.Distance()) != ordering.Greater
}

// sortedBySlopeThenDistance returns lines ordered ascending by (Slope,
// Distance), the order step 2 of spec.md's §4.2 reduction needs before
// dedup-by-slope can keep the tightest line per slope class.
//
// Backed by github.com/emirpasic/gods' red-black tree rather than
// slices.SortFunc: unlike the sweep-line's active-edge order (sweep/doc.go),
// a Line's (Slope, Distance) pair never changes once computed, so an
// ordered tree is a sound fit here, not just a faster one — lines compile
// cleanly into Put calls with no continuous re-keying concern.
func sortedBySlopeThenDistance(lines []kernel.Line) []kernel.Line {
	tree := rbt.NewWith(func(a, b interface{}) int {
		la, lb := a.(kernel.Line), b.(kernel.Line)
		if c := la.Slope().Cmp(lb.Slope()); c != ordering.Equal {
			return int(c)
		}
		return int(la.Distance().Cmp(lb.Distance()))
	})
	for _, l := range lines {
		tree.Put(l, nil)
	}

	out := make([]kernel.Line, 0, tree.Size())
	for _, k := range tree.Keys() {
		out = append(out, k.(kernel.Line))
	}
	return out
}

// FromBoundaries reduces a collection of half-planes to the convex polygon
// that is their intersection.
//
// Returns EmptyRegionError if the intersection is provably empty (one of
// the boundaries is the empty line-at-infinity, or the reduced edge set
// fails one of the small-count overlap checks below).
func FromBoundaries(boundaries []kernel.Line) (ConvexPolygon, error) {
	filtered := make([]kernel.Line, 0, len(boundaries))
	for _, l := range boundaries {
		if l.IsInfinity() != kernel.Universe {
			filtered = append(filtered, l)
		}
	}
	for _, l := range filtered {
		if l.IsInfinity() != kernel.NotInfinity {
			return ConvexPolygon{}, &EmptyRegionError{}
		}
	}

	filtered = sortedBySlopeThenDistance(filtered)
	filtered = slices.CompactFunc(filtered, func(a, b kernel.Line) bool {
		return a.Slope().Eq(b.Slope())
	})

	if len(filtered) == 0 {
		return ConvexPolygon{}, nil
	}

	here := filtered[0]

	// The remaining boundaries, with here appended again at the end to
	// close the sequence into a circle.
	seq := make([]kernel.Line, 0, len(filtered))
	seq = append(seq, filtered[1:]...)
	seq = append(seq, here)

	var out []kernel.Line
	l2 := seq[0]
	for _, l3 := range seq[1:] {
		push := true
		for {
			l1 := here
			if n := len(out); n > 0 {
				l1 = out[n-1]
			}
			if !isMiddleLineRemovable(l1, l2, l3) {
				break
			}
			if n := len(out); n > 0 {
				l2 = out[n-1]
				out = out[:n-1]
			} else {
				push = false
				break
			}
		}
		if push {
			out = append(out, l2)
		}
		l2 = l3
	}

	// here sits, conceptually, between out's back and out's front; the
	// linear scan above never got to check removability across that seam.
	for len(out) > 0 {
		back, front := out[len(out)-1], out[0]
		if !isMiddleLineRemovable(back, here, front) {
			break
		}
		here = out[0]
		out = out[1:]
		for len(out) > 0 {
			if !isMiddleLineRemovable(back, here, out[0]) {
				break
			}
			here = out[0]
			out = out[1:]
		}
		out = append([]kernel.Line{here}, out...)
		here = out[len(out)-1]
		out = out[:len(out)-1]
	}
	out = append(out, here)

	switch len(out) {
	case 2:
		if oppositeOverlapping(out[0], out[1]) {
			return ConvexPolygon{}, &EmptyRegionError{}
		}
	case 3:
		p := out[0].Intersect(out[1])
		switch p.Sign() {
		case ordering.Greater:
			if p.CmpLine(out[2]) != ordering.Greater {
				return ConvexPolygon{}, &EmptyRegionError{}
			}
		case ordering.Equal:
			if out[1].Intersect(out[2]).CmpLine(out[0]) != ordering.Greater {
				return ConvexPolygon{}, &EmptyRegionError{}
			}
		}
	case 4:
		if oppositeOverlapping(out[0], out[2]) || oppositeOverlapping(out[1], out[3]) {
			return ConvexPolygon{}, &EmptyRegionError{}
		}
	}

	return ConvexPolygon{edges: out}, nil
}
