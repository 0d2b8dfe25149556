package sweep

import "github.com/exactplane/projgeom/kernel"

// chainNode is one link of a partially-assembled output boundary. A node
// with a nil prev or nil next is open on that side; newChainEnd produces a
// single node open on both sides.
type chainNode struct {
	edge       kernel.UnorientedLine
	prev, next *chainNode
}

// chainEnd is a handle to one open side of a chain fragment. Each handle is
// meant to be consumed exactly once, by either chainEndConnector.end or
// connect.
type chainEnd struct {
	node    *chainNode
	atFront bool
}

// newChainEnd starts a new one-edge chain fragment and returns handles to
// both of its (currently open) ends.
func newChainEnd(edge kernel.UnorientedLine) (front, back chainEnd) {
	n := &chainNode{edge: edge}
	return chainEnd{node: n, atFront: true}, chainEnd{node: n, atFront: false}
}

// connect joins two chain ends. If they belonged to the same fragment, the
// join closes it into a loop, and connect returns its edges in order
// (closed=true). Otherwise the two fragments are spliced into one longer
// open fragment, whose two remaining open ends are already held by
// whichever other chainEnd handles were handed out when those fragments
// were built; connect itself has no further bookkeeping to do for them.
func connect(a, b chainEnd) (edges []kernel.UnorientedLine, closed bool) {
	closed = a.node == b.node || walkReaches(a, b.node)

	if a.atFront {
		a.node.prev = b.node
	} else {
		a.node.next = b.node
	}
	if b.atFront {
		b.node.prev = a.node
	} else {
		b.node.next = a.node
	}

	if !closed {
		return nil, false
	}

	cur := a.node
	var prevNode *chainNode
	for {
		edges = append(edges, cur.edge)

		var next *chainNode
		switch {
		case prevNode == nil:
			if cur.next != nil {
				next = cur.next
			} else {
				next = cur.prev
			}
		case cur.next == prevNode:
			next = cur.prev
		default:
			next = cur.next
		}

		if next == a.node {
			break
		}
		prevNode, cur = cur, next
	}
	return edges, true
}

// walkReaches reports whether target is already reachable from a.node by
// following the links already established on the non-open side of a.
func walkReaches(a chainEnd, target *chainNode) bool {
	cur := a.node
	viaNext := a.atFront
	for {
		var next *chainNode
		if viaNext {
			next = cur.next
		} else {
			next = cur.prev
		}
		if next == nil {
			return false
		}
		if next == target {
			return true
		}
		viaNext = next.prev == cur
		cur = next
	}
}

// chainEndConnector accumulates chain ends encountered in a single pass
// (left to right across one sweep-line section), pairing each one with the
// previous unpaired end. Whenever a pairing closes a loop, the finished
// polygon boundary is pushed to out.
type chainEndConnector struct {
	pending *chainEnd
}

func (c *chainEndConnector) end(out *[][]kernel.UnorientedLine, e chainEnd) {
	if c.pending == nil {
		pending := e
		c.pending = &pending
		return
	}
	prev := *c.pending
	c.pending = nil

	edges, closed := connect(e, prev)
	if !closed {
		return
	}

	poly := make([]kernel.UnorientedLine, 0, len(edges))
	for _, edge := range edges {
		if len(poly) == 0 || !poly[len(poly)-1].Eq(edge) {
			poly = append(poly, edge)
		}
	}
	for len(poly) > 1 && poly[0].Eq(poly[len(poly)-1]) {
		poly = poly[:len(poly)-1]
	}
	if len(poly) >= 3 {
		*out = append(*out, poly)
	}
}
