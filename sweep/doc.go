// Package sweep implements the sweep-line engine that turns a set of
// polygons into the Boolean combination described by an "inside" predicate:
// an event queue that yields points in ascending (y, x) order, least point
// first (it does not emit the greatest point first), an
// active-edge status structure keyed by position along the sweep, and a
// chain assembler that stitches the surviving boundary fragments back into
// closed loops.
//
// Grounded on original_source/src/polygon/operations/{queue,sweep_line}.rs
// and its chain_end_connector.rs. The active-edge structure here is kept as
// a plain ordered slice, exactly as the original does with Vec::splice:
// the binary-search invariant it relies on (no two active edges cross
// except exactly at an event point already in the queue) does not hold
// still if edges are keyed by a value that changes continuously between
// events, which rules out a balanced search tree keyed the usual way.
package sweep
