// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for construction, shape queries,
// accessors and equality of Matrix.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNew_PreservesShapeAndValues checks that rectangular input round-trips.
func TestNew_PreservesShapeAndValues(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]int
	}{
		{"1x1", [][]int{{7}}},
		{"1x4", [][]int{{1, 2, 3, 4}}},
		{"4x1", [][]int{{1}, {2}, {3}, {4}}},
		{"3x4", matrixA().ToRows()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.rows)
			require.NoError(t, err)
			require.Equal(t, len(tc.rows), m.RowCount())
			require.Equal(t, len(tc.rows[0]), m.ColCount())
			require.Equal(t, tc.rows, m.ToRows())
		})
	}
}

// TestNew_RejectsBadShape ensures empty and ragged tables are rejected, never padded.
func TestNew_RejectsBadShape(t *testing.T) {
	for _, tc := range []struct {
		name string
		rows [][]float64
	}{
		{"nil", nil},
		{"no rows", [][]float64{}},
		{"empty first row", [][]float64{{}}},
		{"empty rows", [][]float64{{}, {}}},
		{"short second row", [][]float64{{1, 2}, {3}}},
		{"long second row", [][]float64{{1, 2}, {3, 4, 5}}},
		{"ragged tail", [][]float64{{1}, {2}, {}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.rows)
			require.Nil(t, m)
			require.ErrorIs(t, err, matrix.ErrBadShape)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
			require.NotErrorIs(t, err, matrix.ErrBadInternalState)
		})
	}
}

// TestNew_CopiesInput verifies the matrix does not alias the caller's slices.
func TestNew_CopiesInput(t *testing.T) {
	rows := [][]int{{1, 2}, {3, 4}}
	m := MustNew(t, rows)

	rows[0][0] = 99 // mutate the source after construction

	v, ok := m.Val(0, 0)
	require.True(t, ok)
	require.Equal(t, 1, v)
}

// TestMustNew_Panics ensures MustNew panics on invalid input.
func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { matrix.MustNew([][]int{{1}, {2, 3}}) })
	require.NotPanics(t, func() { matrix.MustNew([][]int{{1}}) })
}

// TestShape verifies RowCount, ColCount, Shape and Len.
func TestShape(t *testing.T) {
	a := matrixA()
	require.Equal(t, 3, a.RowCount())
	require.Equal(t, 4, a.ColCount())

	r, c := a.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 12, a.Len())
}

// TestAccessors checks Row, Col and Val against known values.
func TestAccessors(t *testing.T) {
	a := matrixA()

	row, ok := a.Row(0)
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3, 4}, row)

	col, ok := a.Col(0)
	require.True(t, ok)
	require.Equal(t, []int{1, 4, 1}, col)

	v, ok := a.Val(1, 2)
	require.True(t, ok)
	require.Equal(t, 2, v)

	last, ok := a.Val(2, 3)
	require.True(t, ok)
	require.Equal(t, 1, last)
}

// TestAccessors_OutOfRange ensures out-of-range requests report absence without panicking.
func TestAccessors_OutOfRange(t *testing.T) {
	a := matrixA()

	for _, i := range []int{-1, 3, 100} {
		row, ok := a.Row(i)
		require.False(t, ok, "Row(%d)", i)
		require.Nil(t, row)
	}
	for _, j := range []int{-1, 4} {
		col, ok := a.Col(j)
		require.False(t, ok, "Col(%d)", j)
		require.Nil(t, col)
	}
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}} {
		v, ok := a.Val(ij[0], ij[1])
		require.False(t, ok, "Val(%d,%d)", ij[0], ij[1])
		require.Zero(t, v)
	}
}

// TestAccessors_ReturnCopies ensures mutating returned slices does not touch the matrix.
func TestAccessors_ReturnCopies(t *testing.T) {
	a := matrixA()
	snapshot := matrixA()

	row, _ := a.Row(1)
	row[0] = -1
	col, _ := a.Col(2)
	col[0] = -1
	rows := a.ToRows()
	rows[2][3] = -1

	require.True(t, a.Equal(snapshot))
}

// TestEqual covers reconstruction, single-element changes and shape changes.
func TestEqual(t *testing.T) {
	a := matrixA()

	t.Run("reconstructed copy", func(t *testing.T) {
		require.True(t, a.Equal(MustNew(t, a.ToRows())))
		require.True(t, a.Equal(a))
	})

	t.Run("single element differs", func(t *testing.T) {
		rows := a.ToRows()
		rows[2][1]++
		require.False(t, a.Equal(MustNew(t, rows)))
	})

	t.Run("shape differs", func(t *testing.T) {
		require.False(t, a.Equal(matrixB()))
		// same element count, different shape
		flat := MustNew(t, [][]int{{1, 2, 3, 4, 4, 2}, {2, 1, 1, 1, 1, 1}})
		require.False(t, a.Equal(flat))
	})

	t.Run("nil", func(t *testing.T) {
		var n *matrix.Matrix[int]
		require.True(t, n.Equal(nil))
		require.False(t, n.Equal(a))
		require.False(t, a.Equal(nil))
	})
}

// TestEqual_FloatExact documents that equality is exact, not approximate.
func TestEqual_FloatExact(t *testing.T) {
	a, b := 0.1, 0.2 // runtime sum, not a constant expression
	x := MustNew(t, [][]float64{{a + b}})
	y := MustNew(t, [][]float64{{0.3}})
	require.False(t, x.Equal(y))
	require.True(t, x.Equal(MustNew(t, [][]float64{{a + b}})))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())

	var n *matrix.Matrix[float64]
	require.Equal(t, "<nil>", n.String())
}

// TestComplexScalar verifies the container works with complex element types.
func TestComplexScalar(t *testing.T) {
	m := MustNew(t, [][]complex128{{1 + 1i, 2}, {0, 1i}})
	v, ok := m.Val(1, 1)
	require.True(t, ok)
	require.Equal(t, 1i, v)
}
