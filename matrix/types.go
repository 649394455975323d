// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the public Matrix contract and the scalar transform
// type. Errors and options live in dedicated files (errors.go, options.go).
package matrix

// MapFunc is a pure scalar transform applied element by element by Map.
// It must not depend on call order; Map still calls it row-major, left to right.
type MapFunc func(v float64) float64

// Matrix represents a two-dimensional array of float64 values.
// Every operation in this package accepts Matrix and returns a freshly
// allocated *Dense; operands are read-only for the duration of the call.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
// MulParallel calls At from several goroutines at once, so implementations
// passed to it must tolerate concurrent reads.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
