// Package hull reduces an arbitrary collection of directed half-planes
// (kernel.Line values) to the convex polygon that is their intersection,
// discarding every edge that contributes nothing to the boundary.
//
// Grounded on original_source/src/convex_polygon.rs: ConvexPolygon is kept
// as a slice of kernel.Line in clockwise order, reduced by the same
// deque-based "is the middle line removable" sweep, and validated the same
// way afterward (the reduced edge count of 0, 1, 2, 3, 4, or 5+ edges each
// need a different emptiness check, since fewer than five edges isn't
// enough for the general removability argument to rule out an empty or
// unbounded-in-the-wrong-way result on its own).
package hull
