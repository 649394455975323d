// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Messages carry both operand shapes so a failure names the offending sizes.
//
// Determinism & Performance:
//  - Shape checks are O(1); ValidateRectangular is O(rows).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch naming both shapes.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("ValidateSameShape: left %d×%d, right %d×%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("left operand", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("right operand", err)
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible is the composite NotNil(a) → NotNil(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrIncompatibleProduct.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("left operand", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("right operand", err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("ValidateMulCompatible: left %d×%d, right %d×%d: left cols %d must equal right rows %d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), a.Cols(), b.Rows(), ErrIncompatibleProduct)
	}

	return nil
}

// ValidateRectangular checks literal row data: non-empty outer slice and
// every row with the same length as row 0.
//
// Errors: ErrMalformedInput.
// Complexity: O(rows).
func ValidateRectangular(rows [][]float64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRectangular: no rows", ErrMalformedInput)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return fmt.Errorf("ValidateRectangular: row %d has %d values, row 0 has %d: %w",
				i, len(rows[i]), cols, ErrMalformedInput)
		}
	}

	return nil
}

// maxElems bounds rows*cols so the backing []float64 length and its byte
// size both fit in an int.
const maxElems = math.MaxInt / 8

// validateDims rejects negative shapes and shapes whose element count
// exceeds maxElems.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 || (rows > 0 && cols > maxElems/rows) {
		return fmt.Errorf("shape %d×%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}
