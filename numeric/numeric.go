// Package numeric provides the widening integer arithmetic the kernel needs
// to decide exact geometric predicates without ever overflowing.
//
// # Overview
//
// Every coordinate in this module is a bounded signed integer (int32 for
// Line coefficients, int64 for Point coordinates), with the single minimum
// value of each type excluded by construction. That exclusion is what makes
// widening arithmetic sufficient in place of arbitrary-precision integers:
// every product of two such values fits in the next integer width up, and
// every sum of a bounded number of such products fits in Int128. This
// package provides that one additional width (Int128), plus Abs, the only
// other numeric primitive the kernel needs.
//
// # No big integers
//
// This package deliberately does not use math/big: introducing arbitrary
// precision would change projgeom's failure model from "provably cannot
// overflow" to "allocates," which is not the contract the kernel promises.
package numeric
