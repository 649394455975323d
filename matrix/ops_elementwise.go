// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison of two matrices (exact and tolerance-based).
//   - Keep all loops deterministic with Dense fast-paths over the flat buffer.

package matrix

import "math"

// Equal reports whether a and b have identical elements (==, so NaN never
// equals NaN and +0 equals -0). Shapes must match.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Time: O(r*c). Space: O(1).
func Equal(a, b Matrix) (bool, error) {
	return ewCompare(a, b, opEqual, func(x, y float64) bool { return x == y })
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Policy:
//   - rtol, atol must be finite; they are treated as |rtol|, |atol|.
//
// Errors: ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
// Time: O(r*c). Space: O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	return ewCompare(a, b, opAllClose, func(x, y float64) bool {
		if x == y { // covers equal infinities
			return true
		}
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	})
}

// ewCompare walks a and b in the same order and stops at the first pair
// for which same returns false.
func ewCompare(a, b Matrix, opTag string, same func(x, y float64) bool) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opTag, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx, av := range da.data {
				if !same(av, db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := a.Rows(), a.Cols()
	var (
		av, bv float64
		err    error
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opTag, err)
			}
			if !same(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
