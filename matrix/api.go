// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points under the names callers search for
//     (From/Zeros/Random, Multiply/Subtract/DotMultiply, Sum/Diff/Product, T).
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric behavior of the underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// From is an alias for NewFromRows.
func From(data [][]float64) (*Dense, error) { return NewFromRows(data) }

// Zeros is an alias for NewZeros.
func Zeros(rows, cols int) (*Dense, error) { return NewZeros(rows, cols) }

// Random is an alias for NewRandom.
func Random(rows, cols int, opts ...Option) (*Dense, error) { return NewRandom(rows, cols, opts...) }

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(rc).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros(m.Rows(), m.Cols())
}

// ToRows returns the elements of m as a [][]float64 grid (rows × cols).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Data(), nil
	}

	grid := make([][]float64, m.Rows())
	var err error
	for i := range grid {
		grid[i] = make([]float64, m.Cols())
		for j := range grid[i] {
			if grid[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
		}
	}

	return grid, nil
}

// ---------- Arithmetic aliases (1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Subtract is an alias for Sub.
func Subtract(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// DotMultiply is an alias for Hadamard: element-wise a ⊙ b.
func DotMultiply(a, b Matrix) (Matrix, error) { return Hadamard(a, b) }

// HadamardProd is an alias for Hadamard.
func HadamardProd(a, b Matrix) (Matrix, error) { return Hadamard(a, b) }

// Multiply is an alias for Mul: matrix product a × b.
func Multiply(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// Product is an alias for Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }
