// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and nil checks.
//  - Keep kernels minimal by delegating validation here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own operation tag on top.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateRows checks the constructor input for I2 (non-empty) and I1
// (rectangular). The first row fixes the column count.
// Complexity: O(r).
func validateRows[T Scalar](rows [][]T) error {
	if len(rows) == 0 {
		return validatorErrorf("validateRows: no rows", ErrBadShape)
	}
	c := len(rows[0])
	if c == 0 {
		return validatorErrorf("validateRows: no columns", ErrBadShape)
	}
	for i, row := range rows {
		if len(row) != c {
			return validatorErrorf(fmt.Sprintf("validateRows: row %d has %d columns, want %d", i, len(row), c), ErrBadShape)
		}
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil and was built by a
// constructor. The zero value Matrix[T]{} has shape 0x0 and is rejected.
//
// Returns ErrNilMatrix if m == nil, ErrBadShape if either dimension is < 1.
// Complexity: O(1).
func ValidateNotNil[T Scalar](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.r < 1 || m.c < 1 {
		return validatorErrorf(fmt.Sprintf("ValidateNotNil: shape %dx%d", m.r, m.c), ErrBadShape)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Use for Add/Sub compatibility guards.
// Complexity: O(1).
func ValidateSameShape[T Scalar](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.ColCount() == b.RowCount(), inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Scalar](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures two vectors have the same length.
// Time: O(1). Space: O(1).
func ValidateVecLen[T Scalar](x, y []T) error {
	if len(x) != len(y) {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: %d vs %d", len(x), len(y)), ErrDimensionMismatch)
	}

	return nil
}
