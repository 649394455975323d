// SPDX-License-Identifier: MIT

// Package matrix - constructors for Dense.
//
// Purpose:
//   - Build matrices from literal rows, zeros, uniform random draws and identity.
//   - Validate shapes up front; never return a Dense whose rows/cols disagree
//     with its storage.
//
// Determinism:
//   - NewFromRows, NewZeros and NewIdentity are pure.
//   - NewRandom is deterministic only under WithSeed/WithRand.

package matrix

const (
	ctxFromRows = "NewFromRows"
	ctxZeros    = "NewZeros"
	ctxRandom   = "NewRandom"
	ctxIdentity = "NewIdentity"
)

// NewFromRows wraps literal row data into a Dense.
// MAIN DESCRIPTION:
//   - rows = len(data), cols = len(data[0]).
//
// Implementation:
//   - Stage 1: ValidateRectangular(data) (non-empty, non-jagged).
//   - Stage 2: copy rows into one flat row-major buffer.
//
// Behavior highlights:
//   - data is deep-copied; later edits by the caller do not leak in.
//   - [][]float64{{}, {}} is a valid 2×0 matrix.
//
// Errors:
//   - ErrMalformedInput (empty outer slice, or a row length differs from row 0).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(data [][]float64) (*Dense, error) {
	if err := ValidateRectangular(data); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	rows, cols := len(data), len(data[0])
	res := newDenseUnchecked(rows, cols)
	for i, row := range data {
		copy(res.data[i*cols:(i+1)*cols], row)
	}

	return res, nil
}

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Either dimension may be zero.
//
// Errors: ErrInvalidDimensions for negative rows or cols, or when rows*cols overflows int.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(ctxZeros, err)
	}

	return newDenseUnchecked(rows, cols), nil
}

// NewRandom returns a rows×cols Dense whose elements are independent uniform
// draws from [0.0, 1.0), filled row-major.
//
// Options:
//   - none: process-local auto-seeded source (not reproducible).
//   - WithSeed(s): fresh deterministic source seeded with s.
//   - WithRand(r): draws from r (caller owns it; advances its state).
//
// Errors: ErrInvalidDimensions for negative rows or cols, or when rows*cols overflows int.
// Complexity: O(r*c).
func NewRandom(rows, cols int, opts ...Option) (*Dense, error) {
	if err := validateDims(rows, cols); err != nil {
		return nil, matrixErrorf(ctxRandom, err)
	}

	next := gatherOptions(opts...).uniform()
	res := newDenseUnchecked(rows, cols)
	for idx := range res.data {
		res.data[idx] = next()
	}

	return res, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	if err := validateDims(n, n); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}

	I := newDenseUnchecked(n, n)
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}
