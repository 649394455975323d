// Package matrix offers a small dense float64 matrix type and its arithmetic.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix over a single flat buffer, plus the Matrix
//     interface every operation accepts.
//   - Constructors: NewFromRows (literal rows, validated rectangular),
//     NewZeros, NewRandom (uniform [0,1), optional WithSeed), NewIdentity.
//   - Element-wise Add, Sub and Hadamard; the matrix product Mul (and the
//     bit-identical row-parallel MulParallel); Transpose and Map.
//
// Every operation returns a fresh *Dense and never mutates its operands.
// Shape violations are returned as errors (ErrDimensionMismatch,
// ErrIncompatibleProduct, ErrMalformedInput) and matched with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
