package sweep

import (
	"testing"

	"github.com/exactplane/projgeom/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUnorientedLine(t *testing.T, a, b, c int32) kernel.UnorientedLine {
	t.Helper()
	l, err := kernel.NewUnorientedLine(a, b, c)
	require.NoError(t, err)
	return l
}

func TestEventQueueDrainsInAscendingOrder(t *testing.T) {
	q := NewEventQueue()
	q.PushVertex(mustPoint(t, 0, 2, 1), EdgeAssignment{PolyIdx: 0}, EdgeAssignment{PolyIdx: 1})
	q.PushVertex(mustPoint(t, 0, 0, 1), EdgeAssignment{PolyIdx: 0}, EdgeAssignment{PolyIdx: 1})
	q.PushVertex(mustPoint(t, 0, 1, 1), EdgeAssignment{PolyIdx: 0}, EdgeAssignment{PolyIdx: 1})

	var ys []int64
	for {
		p, _, ok := q.NextEvent()
		if !ok {
			break
		}
		ys = append(ys, p.Y)
	}
	assert.Equal(t, []int64{0, 1, 2}, ys)
}

func TestEventQueueCollectsAllEdgesAtSharedPoint(t *testing.T) {
	q := NewEventQueue()
	line := mustUnorientedLine(t, 1, 0, 0)
	q.PushVertex(mustPoint(t, 0, 0, 1), EdgeAssignment{Line: line, PolyIdx: 0}, EdgeAssignment{Line: line, PolyIdx: 1})
	q.PushVertex(mustPoint(t, 0, 0, 1), EdgeAssignment{Line: line, PolyIdx: 2}, EdgeAssignment{Line: line, PolyIdx: 3})

	_, edges, ok := q.NextEvent()
	require.True(t, ok)
	assert.Len(t, edges, 4)

	_, _, ok = q.NextEvent()
	assert.False(t, ok)
}

func TestEventQueueDropsPushesAtOrBeforePastPoint(t *testing.T) {
	q := NewEventQueue()
	q.PushVertex(mustPoint(t, 0, 1, 1), EdgeAssignment{PolyIdx: 0}, EdgeAssignment{PolyIdx: 1})
	_, _, ok := q.NextEvent()
	require.True(t, ok)

	q.PushIntersection(mustPoint(t, 0, 1, 1))
	q.PushIntersection(mustPoint(t, 0, 0, 1))
	_, _, ok = q.NextEvent()
	assert.False(t, ok)
}

func TestEventQueueCanonicalizesAntipodalPushes(t *testing.T) {
	q := NewEventQueue()
	line := mustUnorientedLine(t, 1, 0, 0)
	q.PushVertex(mustPoint(t, 1, 1, -1), EdgeAssignment{Line: line, PolyIdx: 0}, EdgeAssignment{Line: line, PolyIdx: 1})
	q.PushVertex(mustPoint(t, -1, -1, 1), EdgeAssignment{Line: line, PolyIdx: 2}, EdgeAssignment{Line: line, PolyIdx: 3})

	p, edges, ok := q.NextEvent()
	require.True(t, ok)
	assert.True(t, p.Eq(mustPoint(t, -1, -1, 1)))
	assert.Len(t, edges, 4)
}
