package sweep

import (
	"github.com/exactplane/projgeom/kernel"
	"github.com/exactplane/projgeom/ordering"
	"github.com/google/btree"
)

// queuedEvent is one entry in the event tree. seq breaks ties between
// distinct events sharing a point, so the tree can hold all of them as a
// multiset instead of collapsing them together.
type queuedEvent struct {
	point kernel.Point
	edges []EdgeAssignment
	seq   int64
}

func lessEvent(a, b queuedEvent) bool {
	if c := pointKeyCmp(a.point, b.point); c != ordering.Equal {
		return c == ordering.Less
	}
	return a.seq < b.seq
}

// EventQueue orders pending sweep events by (y, x), ascending: the point the
// sweep reaches first sorts least. Pushing a point at or before the most
// recently popped one is silently dropped, since the sweep has already
// finished everything there.
//
// Grounded on original_source/src/polygon/operations/queue.rs, which uses a
// std::collections::BinaryHeap under a reversed-priority Ord. Modeled here
// with github.com/google/btree instead: the queue needs to both push
// individual events and drain every event sharing the next point in one
// pass, which an ordered tree supports directly via its ascending iteration
// (BinaryHeap doesn't expose "peek the next several in order" cleanly).
type EventQueue struct {
	tree    *btree.BTreeG[queuedEvent]
	seq     int64
	hasPast bool
	past    kernel.Point
}

// NewEventQueue returns an empty EventQueue.
func NewEventQueue() *EventQueue {
	return &EventQueue{tree: btree.NewG(32, lessEvent)}
}

func (q *EventQueue) push(point kernel.Point, edges []EdgeAssignment) {
	point = canonicalEventPoint(point)
	if q.hasPast && pointKeyCmp(point, q.past) != ordering.Greater {
		return
	}
	q.seq++
	q.tree.ReplaceOrInsert(queuedEvent{point: point, edges: edges, seq: q.seq})
}

// PushVertex queues the point where two polygon boundary edges meet, along
// with which polygon each belongs to.
func (q *EventQueue) PushVertex(point kernel.Point, e1, e2 EdgeAssignment) {
	q.push(point, []EdgeAssignment{e1, e2})
}

// PushIntersection queues a point discovered where two active edges cross,
// carrying no edge assignments of its own (the crossing edges are already
// tracked by the sweep-line status structure).
func (q *EventQueue) PushIntersection(point kernel.Point) {
	q.push(point, nil)
}

// NextEvent pops every queued event at the least remaining point and
// returns that point along with the edge assignments of every vertex event
// found there. Returns ok=false once the queue is empty.
func (q *EventQueue) NextEvent() (point kernel.Point, lineEndings []EdgeAssignment, ok bool) {
	min, found := q.tree.Min()
	if !found {
		return kernel.Point{}, nil, false
	}
	for {
		cur, found := q.tree.Min()
		if !found || pointKeyCmp(cur.point, min.point) != ordering.Equal {
			break
		}
		q.tree.Delete(cur)
		lineEndings = append(lineEndings, cur.edges...)
	}
	q.hasPast = true
	q.past = min.point
	logDebugf("next event at %s: %d line ending(s), %d remaining in queue", min.point, len(lineEndings), q.tree.Len())
	return min.point, lineEndings, true
}
