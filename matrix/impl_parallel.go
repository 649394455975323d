// SPDX-License-Identifier: MIT

// Package matrix - row-parallel product.
//
// MulParallel splits the output rows into contiguous bands and runs mulRows
// on each band in its own goroutine. Bands never overlap, so no two
// goroutines write the same cell, and the per-cell k order is the same as in
// Mul: results are bit-identical.

package matrix

import "golang.org/x/sync/errgroup"

// MulParallel computes A × B like Mul, spreading output rows across workers.
//
// Concurrency:
//   - When an operand is not a *Dense, its At is called from several
//     goroutines at once and must be safe for concurrent reads.
//
// Options:
//   - WithWorkers(n): at most n bands (default runtime.GOMAXPROCS(0)).
//
// Errors:
//   - ErrNilMatrix, ErrIncompatibleProduct (same as Mul).
//
// Complexity:
//   - Time O(r*n*c / workers) wall clock, Space O(r*c).
func MulParallel(a, b Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	rows := a.Rows()
	res := newDenseUnchecked(rows, b.Cols())
	workers := gatherOptions(opts...).workers
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		if err := mulRows(res, a, b, 0, rows); err != nil {
			return nil, matrixErrorf(opMulParallel, err)
		}

		return res, nil
	}

	var g errgroup.Group
	band := (rows + workers - 1) / workers
	for lo := 0; lo < rows; lo += band {
		lo, hi := lo, min(lo+band, rows)
		g.Go(func() error {
			return mulRows(res, a, b, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return res, nil
}
