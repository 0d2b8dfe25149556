// Package polygon defines the Polygon entity — a list of closed edge
// cycles — and the operations invoked on it: construction from a convex
// region or from raw edge loops, point containment, and the Boolean
// combinators (Union, Intersection, Difference) built on package sweep.
//
// Grounded on original_source/src/polygon.rs and its operations.rs and
// contains.rs siblings.
package polygon
