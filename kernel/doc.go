// Package kernel implements the exact projective-plane geometry primitives
// that every other package in this module is built on: directed Lines,
// signed homogeneous Points, orientation-free UnorientedLines, and the
// ratio comparator that lets slope, distance, and x-coordinate be compared
// without ever dividing.
//
// # Exactness without big integers
//
// Line coefficients are int32, Point coordinates are int64, and neither type
// ever holds its minimum value (NewLine and NewPoint reject it). That single
// exclusion is what lets every predicate here widen by exactly one integer
// level — int32 to int64 for Line-on-Line arithmetic, int64 to
// [github.com/exactplane/projgeom/numeric.Int128] for Point-against-Line
// arithmetic — and be certain the widened value cannot overflow. See
// numeric.Int128's doc comment for why that is sufficient in place of
// math/big.
//
// # Homogeneous coordinates and sign
//
// A Point carries a sign in its z coordinate: z>0 is an ordinary point at
// (x/z, y/z), z<0 is its antipode (which compares oppositely against every
// Line), and z==0 is a point at infinity (a direction, not a location).
// Negating a Point or a Line flips every comparison against it — that
// symmetry holds throughout this package by construction, not by a special
// case.
package kernel
