// SPDX-License-Identifier: MIT
// Package matrix provides the algebra over Matrix values: dot product,
// element-wise addition and subtraction, matrix multiplication, transpose,
// scalar scaling and mapping. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Validation failures are returned (kind ErrInvalidArgument). Failures of
//     accesses that validation already proved safe panic with
//     ErrBadInternalState instead.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/internal/parallel"
)

// Operation name constants for unified error wrapping.
const (
	opDot       = "Dot"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMap       = "Map"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dot returns Σ lhs[i]*rhs[i].
// Accumulation starts from T's zero value and runs left to right; overflow
// and rounding follow T's native arithmetic.
//
// Errors:
//   - ErrDimensionMismatch when len(lhs) != len(rhs).
//
// Complexity: O(n).
func Dot[T Scalar](lhs, rhs []T) (T, error) {
	if err := ValidateVecLen(lhs, rhs); err != nil {
		var zero T
		return zero, matrixErrorf(opDot, err)
	}

	return dot(lhs, rhs), nil
}

// dot is the unchecked kernel behind Dot; callers guarantee equal lengths.
func dot[T Scalar](lhs, rhs []T) T {
	var sum T
	for i := range lhs {
		sum += lhs[i] * rhs[i]
	}

	return sum
}

// elementwise computes out[k] = f(a[k], b[k]) for same-shape operands.
func elementwise[T Scalar](a, b *Matrix[T], opTag string, f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := newZero[T](a.r, a.c)
	for k := range out.data {
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out, nil
}

// Add returns the element-wise sum a + b.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when shapes differ.
//
// Complexity: Time O(r*c), Space O(r*c).
func Add[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference a - b. Same rules as Add.
func Sub[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	return elementwise(a, b, opSub, func(x, y T) T { return x - y })
}

// mustRow extracts row i after the caller has validated the index.
func mustRow[T Scalar](m *Matrix[T], i int) []T {
	row, ok := m.Row(i)
	if !ok {
		internalStateFault(opMul, "row %d missing from %dx%d matrix", i, m.r, m.c)
	}

	return row
}

// mustCol extracts column j after the caller has validated the index.
func mustCol[T Scalar](m *Matrix[T], j int) []T {
	col, ok := m.Col(j)
	if !ok {
		internalStateFault(opMul, "column %d missing from %dx%d matrix", j, m.r, m.c)
	}

	return col
}

// Mul returns the matrix product a·b.
// Result shape is (a.RowCount(), b.ColCount()) and element (i,j) is
// Dot(a.Row(i), b.Col(j)).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: extract every column of b once.
//   - Stage 3: for each output row, take a.Row(i) and dot it with each column.
//     Rows are distributed over goroutines when WithWorkers/WithParallel ask
//     for it; each goroutine writes a disjoint block of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Panics:
//   - with ErrBadInternalState if a row or column that validation proved to
//     exist cannot be extracted.
//
// Complexity:
//   - Time O(r*c*k), Space O(r*k + c*k).
func Mul[T Scalar](a, b *Matrix[T], opts ...Option) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	o := gatherOptions(opts...)

	aRows, bCols := a.r, b.c
	cols := make([][]T, bCols)
	for j := range cols {
		cols[j] = mustCol(b, j)
	}

	res := newZero[T](aRows, bCols)
	parallel.For(aRows, func(i int) {
		row := mustRow(a, i)
		out := res.data[i*bCols : (i+1)*bCols]
		for j, col := range cols {
			out[j] = dot(row, col)
		}
	}, o.parallelConfig())

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Scalar](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newZero[T](m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Scale returns alpha*m.
// Complexity: Time O(r*c), Space O(r*c).
func Scale[T Scalar](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := newZero[T](m.r, m.c)
	for k, v := range m.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// Map returns a same-shape matrix whose element (i,j) is f(i, j, m(i,j)).
// f is called in row-major order.
func Map[T Scalar](m *Matrix[T], f func(i, j int, v T) T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	out := newZero[T](m.r, m.c)
	for k, v := range m.data {
		out.data[k] = f(k/m.c, k%m.c, v)
	}

	return out, nil
}

// Add is the method form of the package-level Add.
func (m *Matrix[T]) Add(rhs *Matrix[T]) (*Matrix[T], error) { return Add(m, rhs) }

// Sub is the method form of the package-level Sub.
func (m *Matrix[T]) Sub(rhs *Matrix[T]) (*Matrix[T], error) { return Sub(m, rhs) }

// Mul is the method form of the package-level Mul.
func (m *Matrix[T]) Mul(rhs *Matrix[T], opts ...Option) (*Matrix[T], error) {
	return Mul(m, rhs, opts...)
}

