package polygon

import (
	"github.com/exactplane/projgeom/sweep"
)

// Operation combines polygons according to inside, which is handed the
// membership bitset of a region (indexed by each polygon's position in
// polygons) and decides whether that region belongs to the result.
//
// Grounded on original_source/src/polygon/operations.rs's
// Polygon::operation: it seeds the event queue with every component's
// adjacent-edge-pair vertices, then drains the queue one shared point at a
// time, feeding each point's edges into the sweep line and re-queuing any
// intersection it discovers.
func Operation(polygons []Polygon, inside func([]bool) bool) Polygon {
	queue := sweep.NewEventQueue()

	for polyIdx, poly := range polygons {
		for _, comp := range poly.components {
			n := len(comp)
			for i := 0; i < n; i++ {
				j := (i + 1) % n
				vertex := comp[i].Intersect(comp[j])
				queue.PushVertex(vertex,
					sweep.EdgeAssignment{Line: comp[i], PolyIdx: polyIdx},
					sweep.EdgeAssignment{Line: comp[j], PolyIdx: polyIdx},
				)
			}
		}
	}

	line := sweep.NewSweepLine(len(polygons), inside)

	for {
		point, lineEndings, ok := queue.NextEvent()
		if !ok {
			break
		}

		section := line.RelevantSectionReversed(point)

		for _, e := range lineEndings {
			section.Insert(e.Line, e.PolyIdx)
		}

		for _, pt := range section.BoundaryIntersections() {
			if pt.Z != 0 {
				queue.PushIntersection(pt)
			}
		}

		section.Finish()
	}

	return Polygon{components: line.Out()}
}

// Union returns the region covered by at least one of polygons.
func Union(polygons []Polygon) Polygon {
	return Operation(polygons, func(region []bool) bool {
		for _, b := range region {
			if b {
				return true
			}
		}
		return false
	})
}

// Intersection returns the region covered by every one of polygons.
func Intersection(polygons []Polygon) Polygon {
	return Operation(polygons, func(region []bool) bool {
		for _, b := range region {
			if !b {
				return false
			}
		}
		return true
	})
}

// Difference subtracts clip from self: the result is the region inside self
// and outside every polygon in clip.
func Difference(self Polygon, clip []Polygon) Polygon {
	polygons := make([]Polygon, 0, len(clip)+1)
	polygons = append(polygons, self)
	polygons = append(polygons, clip...)

	return Operation(polygons, func(region []bool) bool {
		if !region[0] {
			return false
		}
		for _, b := range region[1:] {
			if b {
				return false
			}
		}
		return true
	})
}
