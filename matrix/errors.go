// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped at the detection site as "<Op>: <shapes>: matrix: ..." so the
// human-readable text names the operation and the offending dimensions while
// errors.Is keeps matching the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> negative/malformed shape -> dimension mismatch -> index.

var (
	// ErrDimensionMismatch indicates that two operands of an element-wise
	// operation (Add, Sub, Hadamard, Equal, AllClose) differ in rows or cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrIncompatibleProduct indicates that a product A×B was requested with
	// A.Cols() != B.Rows().
	ErrIncompatibleProduct = errors.New("matrix: incompatible shapes for product")

	// ErrMalformedInput is returned by NewFromRows for an empty outer slice or
	// for jagged rows (row lengths disagree with the first row).
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilFunc indicates that Map was called without a transform.
	ErrNilFunc = errors.New("matrix: nil function")

	// ErrNaNInf signals a NaN or ±Inf value where a finite one is required
	// (tolerances in AllClose).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
