// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the matrix tests.
//   - Keep literals in one place so product/sum expectations stay consistent.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// matrixA is the 3×4 left operand used across the algebra tests.
func matrixA() *matrix.Matrix[int] {
	return matrix.MustNew([][]int{
		{1, 2, 3, 4},
		{4, 2, 2, 1},
		{1, 1, 1, 1},
	})
}

// matrixB is the 4×3 right operand for multiplication.
func matrixB() *matrix.Matrix[int] {
	return matrix.MustNew([][]int{
		{1, 4, 1},
		{2, 3, 1},
		{3, 2, 1},
		{4, 1, 1},
	})
}

// matrixC has the shape of matrixA and is used for addition.
func matrixC() *matrix.Matrix[int] {
	return matrix.MustNew([][]int{
		{1, 1, 3, 4},
		{2, 2, 4, 1},
		{1, 2, 1, 2},
	})
}

// matrixProduct is matrixA·matrixB.
func matrixProduct() *matrix.Matrix[int] {
	return matrix.MustNew([][]int{
		{30, 20, 10},
		{18, 27, 9},
		{10, 10, 4},
	})
}

// matrixSum is matrixA+matrixC.
func matrixSum() *matrix.Matrix[int] {
	return matrix.MustNew([][]int{
		{2, 3, 6, 8},
		{6, 4, 6, 2},
		{2, 3, 2, 3},
	})
}

// MustNew builds a matrix or fails the test (fatal on error).
func MustNew[T matrix.Scalar](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// randomRows returns an r×c table of small integers from a seeded source.
// Small values keep float64 products exact so results can be compared with ==.
func randomRows(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(21) - 10)
		}
	}

	return rows
}

// collect drains a row-major iteration into a slice.
func collect[T matrix.Scalar](m *matrix.Matrix[T]) []T {
	var out []T
	for v := range m.All() {
		out = append(out, v)
	}

	return out
}
