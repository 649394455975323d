// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction and product, matrix multiplication,
// transpose and element-wise map. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback with the same i→j (or i→j→k) order.
//   - Results are always freshly allocated; operands are never mutated.

package matrix

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ZeroSum is the initial accumulator of every product cell.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opHadamard    = "Hadamard"
	opMul         = "Mul"
	opMulParallel = "MulParallel"
	opTranspose   = "Transpose"
	opMap         = "Map"
	opEqual       = "Equal"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Notes:
//   - sign*b is exact for ±1, so a + (-1)*b is bit-identical to a - b.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseUnchecked(rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Both inputs must be non-nil and have identical shapes; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate Dense(rows, cols).
//   - Stage 2: Fast-path if both *Dense: vecmath.MulBlock over the flat buffers.
//     Else At/Set with i→j loops.
//
// Behavior highlights:
//   - One IEEE multiply per cell, so the vectorized path and the scalar
//     fallback produce identical bits.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseUnchecked(rows, cols)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			if len(res.data) > 0 {
				vecmath.MulBlock(res.data, da.data, db.data)
			}

			return res, nil
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible (not nil, A.Cols == B.Rows).
//   - Stage 2: mulRows over [0, A.Rows).
//
// Behavior highlights:
//   - Every C[i,j] starts at 0.0 and accumulates A[i,k]*B[k,j] for k ascending.
//     No zero skipping, so NaN/Inf propagate like the plain triple loop.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIncompatibleProduct (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newDenseUnchecked(a.Rows(), b.Cols())
	if err := mulRows(res, a, b, 0, a.Rows()); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// mulRows fills rows [lo, hi) of res with (a×b). Shapes are pre-validated.
// Rows are independent, so disjoint [lo,hi) bands may run concurrently.
//
// Determinism:
//   - Dense fast path runs i→k→j; each res[i,j] still receives its k terms in
//     ascending order, starting from the zeroed buffer.
//   - Fallback runs i→j→k with a scalar accumulator.
//   - Each product is rounded before the add (explicit float64 conversion),
//     which rules out fused multiply-add on arm64/ppc64le/s390x.
func mulRows(res *Dense, a, b Matrix, lo, hi int) error {
	aCols, bCols := a.Cols(), b.Cols()
	var (
		i, j, k int
		av, bv  float64
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = lo; i < hi; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += float64(av * db.data[rowOffsetB+j])
					}
				}
			}

			return nil
		}
	}

	var (
		current float64
		err     error
	)
	for i = lo; i < hi; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				current += float64(av * bv)
			}
			res.data[i*bCols+j] = current
		}
	}

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Fast-path delegates to (*Dense).Transpose; fallback uses At with i→j order.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.Transpose(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseUnchecked(cols, rows)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Map applies f to every element of m and returns a new matrix of the same shape.
// f is called row-major, left to right, exactly once per element.
//
// Errors:
//   - ErrNilMatrix, ErrNilFunc.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func Map(m Matrix, f MapFunc) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	if f == nil {
		return nil, matrixErrorf(opMap, ErrNilFunc)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.Map(f), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseUnchecked(rows, cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMap, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = f(v)
		}
	}

	return res, nil
}
