package sweep

import (
	"sort"

	"github.com/exactplane/projgeom/kernel"
	"github.com/exactplane/projgeom/ordering"
)

type edgeEntry struct {
	line        kernel.UnorientedLine
	polys       []bool
	outChainEnd *chainEnd
}

func clonePolys(p []bool) []bool {
	out := make([]bool, len(p))
	copy(out, p)
	return out
}

func polysNone(p []bool) bool {
	for _, b := range p {
		if b {
			return false
		}
	}
	return true
}

// SweepLine tracks which boundary edges currently cross the sweep, in
// left-to-right order, and the region membership bitset in each gap
// between them. It accumulates finished output polygon boundaries as the
// sweep proceeds.
//
// Grounded on original_source/src/polygon/operations/sweep_line.rs.
// num_polys' bit_vec::BitVec becomes a plain []bool here: none of the
// example dependency set retrieved alongside this one offers a bitset
// type, and region counts are small enough that the packing bit_vec buys
// in Rust isn't worth reaching outside that set for.
type SweepLine struct {
	edges    []edgeEntry
	regions  [][]bool
	inside   func([]bool) bool
	out      [][]kernel.UnorientedLine
	numPolys int
}

// NewSweepLine starts an empty sweep over numPolys input polygons. inside
// decides, given the membership bitset of a region, whether that region
// belongs to the result.
func NewSweepLine(numPolys int, inside func([]bool) bool) *SweepLine {
	return &SweepLine{
		regions:  [][]bool{make([]bool, numPolys)},
		inside:   inside,
		numPolys: numPolys,
	}
}

// Out returns the finished output polygon boundaries accumulated so far.
func (sl *SweepLine) Out() [][]kernel.UnorientedLine {
	return sl.out
}

// searchKey orders active edges by their position at the current sweep
// point: each edge is canonicalized to point toward negative x so that
// cmp_line against pt gives a consistent left-to-right comparison; a
// perfectly horizontal edge (a==0) can't be ordered this way; and, by the
// sweep's invariant, one can only be exactly at this point.
func searchKey(pt kernel.Point, e edgeEntry) ordering.Ordering {
	line := kernel.Line(e.line)
	switch {
	case line.A > 0:
		line = line.Neg()
	case line.A == 0:
		return ordering.Equal
	}
	return pt.CmpLine(line)
}

func (sl *SweepLine) rangeAt(pt kernel.Point) (start, end int) {
	n := len(sl.edges)
	idx := sort.Search(n, func(i int) bool {
		return searchKey(pt, sl.edges[i]) != ordering.Less
	})
	if idx == n || searchKey(pt, sl.edges[idx]) != ordering.Equal {
		return idx, idx
	}
	start, end = idx, idx
	for start > 0 && searchKey(pt, sl.edges[start-1]) == ordering.Equal {
		start--
	}
	for end+1 < n && searchKey(pt, sl.edges[end+1]) == ordering.Equal {
		end++
	}
	return start, end + 1
}

// Section is the slice of the sweep-line status affected by a single event
// point: every active edge whose canonicalized line passes exactly through
// it. Call Insert for each edge toggling at this point, then
// BoundaryIntersections to discover new crossings, then Finish to fold the
// section back into the sweep line.
type Section struct {
	sweepLine *SweepLine
	start     int
	origLen   int
	relevant  []edgeEntry
	connector *chainEndConnector
}

// RelevantSectionReversed opens the section of the sweep line passing
// through pt.
func (sl *SweepLine) RelevantSectionReversed(pt kernel.Point) *Section {
	start, end := sl.rangeAt(pt)
	logDebugf("section at %s: slab [%d, %d) of %d active edge(s)", pt, start, end, len(sl.edges))

	relevant := make([]edgeEntry, end-start)
	for i := start; i < end; i++ {
		relevant[end-1-i] = sl.edges[i]
	}
	sl.edges = append(sl.edges[:start:start], sl.edges[end:]...)

	connector := &chainEndConnector{}
	for i := range relevant {
		if relevant[i].outChainEnd != nil {
			connector.end(&sl.out, *relevant[i].outChainEnd)
			relevant[i].outChainEnd = nil
		}
	}

	return &Section{
		sweepLine: sl,
		start:     start,
		origLen:   end - start,
		relevant:  relevant,
		connector: connector,
	}
}

// Insert toggles line's membership in polyIdx within this section: an edge
// that already appears here with the same assignment is removed (two
// coincident boundaries from the same polygon cancel), and one left with no
// remaining polygon membership is dropped entirely.
func (s *Section) Insert(line kernel.UnorientedLine, polyIdx int) {
	key := line.AngleFromHorizontal()

	// relevant is kept sorted by descending angle (i.e. ascending by the
	// angle's reverse), matching the left-to-right order lines through a
	// shared point fall into.
	idx := sort.Search(len(s.relevant), func(i int) bool {
		return s.relevant[i].line.AngleFromHorizontal().Cmp(key) != ordering.Greater
	})

	if idx < len(s.relevant) && s.relevant[idx].line.AngleFromHorizontal().Eq(key) {
		s.relevant[idx].polys[polyIdx] = !s.relevant[idx].polys[polyIdx]
		if polysNone(s.relevant[idx].polys) {
			s.relevant = append(s.relevant[:idx], s.relevant[idx+1:]...)
		}
		return
	}

	polys := make([]bool, s.sweepLine.numPolys)
	polys[polyIdx] = true
	s.relevant = append(s.relevant, edgeEntry{})
	copy(s.relevant[idx+1:], s.relevant[idx:])
	s.relevant[idx] = edgeEntry{line: line, polys: polys}
}

// BoundaryIntersections returns the points where this section's outermost
// edges cross their neighbors still active outside the section, newly
// discoverable now that this section's content has changed.
func (s *Section) BoundaryIntersections() []kernel.Point {
	n := s.start
	var left, right *edgeEntry
	if n > 0 {
		left = &s.sweepLine.edges[n-1]
	}
	if n < len(s.sweepLine.edges) {
		right = &s.sweepLine.edges[n]
	}

	var pts []kernel.Point
	if len(s.relevant) > 0 {
		inner0 := s.relevant[0]
		innerN := s.relevant[len(s.relevant)-1]
		if left != nil {
			pts = append(pts, left.line.Intersect(inner0.line))
		}
		if right != nil {
			pts = append(pts, right.line.Intersect(innerN.line))
		}
	} else if left != nil && right != nil {
		pts = append(pts, left.line.Intersect(right.line))
	}
	return pts
}

// Finish computes which of this section's edges are genuine boundaries of
// the result (where the "inside" membership toggles across them), extends
// or closes output chains accordingly, and folds the section's edges and
// region bitsets back into the sweep line.
func (s *Section) Finish() {
	// The extracted edges bounded origLen+1 gaps, from the gap left of the
	// first edge to the gap right of the last. Only the leftmost,
	// sweepLine.regions[s.start], is carried over as is; all origLen+1 are
	// replaced by one gap per surviving relevant edge plus one, each
	// computed from its left neighbour by toggling that edge's memberships.
	region := clonePolys(s.sweepLine.regions[s.start])
	regions := make([][]bool, 0, len(s.relevant)+1)
	regions = append(regions, clonePolys(region))

	for i := range s.relevant {
		before := s.sweepLine.inside(region)
		for k, b := range s.relevant[i].polys {
			if b {
				region[k] = !region[k]
			}
		}
		after := s.sweepLine.inside(region)

		if before != after {
			front, back := newChainEnd(s.relevant[i].line)
			s.connector.end(&s.sweepLine.out, front)
			s.relevant[i].outChainEnd = &back
		}

		regions = append(regions, clonePolys(region))
	}

	newRegions := make([][]bool, 0, len(s.sweepLine.regions)-(s.origLen+1)+len(regions))
	newRegions = append(newRegions, s.sweepLine.regions[:s.start]...)
	newRegions = append(newRegions, regions...)
	newRegions = append(newRegions, s.sweepLine.regions[s.start+s.origLen+1:]...)
	s.sweepLine.regions = newRegions

	newEdges := make([]edgeEntry, 0, len(s.sweepLine.edges)+len(s.relevant))
	newEdges = append(newEdges, s.sweepLine.edges[:s.start]...)
	newEdges = append(newEdges, s.relevant...)
	newEdges = append(newEdges, s.sweepLine.edges[s.start:]...)
	s.sweepLine.edges = newEdges

	logDebugf("section finished: %d edge(s) survive at slab start %d, %d output chain(s) so far", len(s.relevant), s.start, len(s.sweepLine.out))
}
