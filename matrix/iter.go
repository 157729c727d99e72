// SPDX-License-Identifier: MIT

package matrix

import "iter"

// All returns a row-major sequence over every element of m.
// Position k of the sequence is element (k / ColCount(), k % ColCount()).
// The sequence is finite (exactly RowCount()*ColCount() values) and each call
// to All, or each range over the returned value, starts from the beginning.
//
//	for v := range m.All() { ... }
func (m *Matrix[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Cells is All with coordinates attached.
func (m *Matrix[T]) Cells() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		for k, v := range m.data {
			if !yield(Cell{Row: k / m.c, Col: k % m.c}, v) {
				return
			}
		}
	}
}

// Rows yields a copy of each row in order.
func (m *Matrix[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; i < m.r; i++ {
			row, _ := m.Row(i)
			if !yield(i, row) {
				return
			}
		}
	}
}

// At returns the element at row-major position k.
// It reports false once k is past the end (or negative), which is the
// end-of-sequence condition of All rather than an error.
func (m *Matrix[T]) At(k int) (T, bool) {
	if k < 0 || k >= len(m.data) {
		var zero T
		return zero, false
	}

	return m.data[k], true
}
