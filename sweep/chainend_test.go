package sweep

import (
	"testing"

	"github.com/exactplane/projgeom/kernel"
	"github.com/stretchr/testify/assert"
)

func TestConnectJoinsTwoFragmentsWithoutClosing(t *testing.T) {
	e1 := mustUnorientedLine(t, 1, 0, 0)
	e2 := mustUnorientedLine(t, 0, 1, 0)
	_, b1 := newChainEnd(e1)
	f2, _ := newChainEnd(e2)

	edges, closed := connect(b1, f2)
	assert.False(t, closed)
	assert.Nil(t, edges)
}

func TestConnectClosesATriangleInCyclicOrder(t *testing.T) {
	e1 := mustUnorientedLine(t, 1, 0, 0)
	e2 := mustUnorientedLine(t, 0, 1, 0)
	e3 := mustUnorientedLine(t, 1, 1, 0)

	f1, b1 := newChainEnd(e1)
	f2, b2 := newChainEnd(e2)
	f3, b3 := newChainEnd(e3)

	edges, closed := connect(b1, f2)
	assert.False(t, closed)
	edges, closed = connect(b2, f3)
	assert.False(t, closed)
	edges, closed = connect(b3, f1)
	assert.True(t, closed)
	assert.Len(t, edges, 3)

	seen := map[string]bool{}
	for _, e := range edges {
		seen[e.String()] = true
	}
	assert.True(t, seen[e1.String()])
	assert.True(t, seen[e2.String()])
	assert.True(t, seen[e3.String()])
}

func TestConnectClosesABigon(t *testing.T) {
	e1 := mustUnorientedLine(t, 1, 0, 0)
	e2 := mustUnorientedLine(t, 0, 1, 0)
	f1, b1 := newChainEnd(e1)
	f2, b2 := newChainEnd(e2)

	_, closed := connect(b1, f2)
	assert.False(t, closed)
	edges, closed := connect(b2, f1)
	assert.True(t, closed)
	assert.Len(t, edges, 2)
}

func TestChainEndConnectorDropsWraparoundTrimmedBigon(t *testing.T) {
	// e1 - e2 - e1 closes into a loop whose wrap-around trim leaves only
	// two distinct edges (e1, e2): spec.md §4.5 drops closed cycles with
	// fewer than three distinct edges rather than emitting a degenerate
	// bigon.
	e1 := mustUnorientedLine(t, 1, 0, 0)
	e2 := mustUnorientedLine(t, 0, 1, 0)

	f1a, b1a := newChainEnd(e1)
	f2, b2 := newChainEnd(e2)
	f1b, b1b := newChainEnd(e1)

	c := &chainEndConnector{}
	var out [][]kernel.UnorientedLine

	c.end(&out, b1a)
	c.end(&out, f2)
	c.end(&out, b2)
	c.end(&out, f1b)
	c.end(&out, b1b)
	c.end(&out, f1a)

	assert.Empty(t, out)
}

func TestChainEndConnectorHoldsFirstEndPending(t *testing.T) {
	e1 := mustUnorientedLine(t, 1, 0, 0)
	f1, _ := newChainEnd(e1)
	c := &chainEndConnector{}
	var out [][]kernel.UnorientedLine

	c.end(&out, f1)
	assert.NotNil(t, c.pending)
	assert.Empty(t, out)
}
