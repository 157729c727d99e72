// SPDX-License-Identifier: MIT

// Package matrix - generic row-major storage & safe accessors.
//
// Purpose:
//   - Provide an immutable, shape-checked R×C table over any Scalar type.
//   - Keep a cache-friendly flat buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors report absence with a
//     bool instead of panicking, constructors return sentinel errors.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; Row: O(c); Col: O(r); Val: O(1); ToRows: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew     = "New"
	ctxMustNew = "MustNew"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an immutable rectangular table of T values.
//   - r,c hold dimensions (both >= 1 for every constructed value).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Matrix owns its buffer exclusively: constructors copy their input and
// every operation allocates a fresh result.
type Matrix[T Scalar] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New builds a Matrix from a table of rows.
//
// Implementation:
//   - Stage 1: validate the table (non-empty, first row non-empty, rectangular).
//   - Stage 2: copy every row into a fresh flat buffer, preserving order.
//
// Errors:
//   - ErrBadShape (kind ErrInvalidArgument) for empty or ragged input.
//     Nothing is ever padded or truncated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Scalar](rows [][]T) (*Matrix[T], error) {
	if err := validateRows(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNew, err)
	}

	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return &Matrix[T]{r: r, c: c, data: buf}, nil
}

// MustNew is like New but panics on invalid input.
// Intended for literals in tests and examples.
func MustNew[T Scalar](rows [][]T) *Matrix[T] {
	m, err := New(rows)
	if err != nil {
		panic(fmt.Sprintf("matrix.%s: %v", ctxMustNew, err))
	}

	return m
}

// newZero allocates an r×c matrix of zero values.
// Callers guarantee r,c >= 1 (they derive them from valid operands).
func newZero[T Scalar](r, c int) *Matrix[T] {
	if r < 1 || c < 1 {
		internalStateFault("newZero", "shape %dx%d", r, c)
	}

	return &Matrix[T]{r: r, c: c, data: make([]T, r*c)}
}

// RowCount returns the number of rows.
// Complexity: O(1).
func (m *Matrix[T]) RowCount() int { return m.r }

// ColCount returns the number of columns.
// Complexity: O(1).
func (m *Matrix[T]) ColCount() int { return m.c }

// Shape packs RowCount() and ColCount() into a single call.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns RowCount()*ColCount(), the length of a full iteration.
func (m *Matrix[T]) Len() int { return len(m.data) }

// offset computes the row-major offset, reporting false when out of range.
func (m *Matrix[T]) offset(row, col int) (int, bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// Row returns a copy of row i, or false when i is out of range.
// Complexity: O(c).
func (m *Matrix[T]) Row(i int) ([]T, bool) {
	if i < 0 || i >= m.r {
		return nil, false
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, true
}

// Col returns a copy of column j in row order, or false when j is out of range.
// Complexity: O(r).
func (m *Matrix[T]) Col(j int) ([]T, bool) {
	if j < 0 || j >= m.c {
		return nil, false
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, true
}

// Val returns the element at (i, j), or false when either index is out of range.
// Complexity: O(1).
func (m *Matrix[T]) Val(i, j int) (T, bool) {
	off, ok := m.offset(i, j)
	if !ok {
		var zero T
		return zero, false
	}

	return m.data[off], true
}

// ToRows returns a deep copy of the table as a slice of rows.
// The result can be fed back to New to obtain an equal matrix.
func (m *Matrix[T]) ToRows() [][]T {
	rows := make([][]T, m.r)
	for i := range rows {
		rows[i], _ = m.Row(i)
	}

	return rows
}

// Equal reports whether m and other have the same shape and identical
// elements at every position (compared with ==).
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		if v != other.data[k] {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging.
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
