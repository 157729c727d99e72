// SPDX-License-Identifier: MIT

// Package interop converts between lvmatrix values and gonum's mat package.
//
// Conversion is always a copy: neither side aliases the other's storage.
// Only real element kinds convert, since mat.Dense holds float64.
package interop

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/nn"
	"gonum.org/v1/gonum/mat"
)

const (
	opToDense    = "interop.ToDense"
	opFromMatrix = "interop.FromMatrix"
	opForward    = "interop.Forward"
)

// ErrEmptyDense is returned when a gonum matrix has a zero dimension.
var ErrEmptyDense = fmt.Errorf("%w: interop: empty gonum matrix", matrix.ErrInvalidArgument)

// ToDense copies m into a new *mat.Dense, converting every element to float64.
// Integer values beyond 2^53 lose precision.
func ToDense[T matrix.Real](m *matrix.Matrix[T]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opToDense, err)
	}
	r, c := m.Shape()
	buf := make([]float64, 0, r*c)
	for v := range m.All() {
		buf = append(buf, float64(v))
	}

	return mat.NewDense(r, c, buf), nil
}

// FromMatrix copies any gonum matrix into a float64 Matrix.
func FromMatrix(src mat.Matrix) (*matrix.Matrix[float64], error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", opFromMatrix, matrix.ErrNilMatrix)
	}
	r, c := src.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opFromMatrix, r, c, ErrEmptyDense)
	}
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = src.At(i, j)
		}
	}

	return matrix.New(rows)
}

// Forward evaluates net with gonum's BLAS-backed Mul and Add, applying
// ReLU where the layer asks for it. It serves as an independent reference
// for nn.Network.Forward.
func Forward(net *nn.Network[float64], input *matrix.Matrix[float64]) (*matrix.Matrix[float64], error) {
	if net == nil {
		return nil, fmt.Errorf("%s: nil network: %w", opForward, matrix.ErrInvalidArgument)
	}
	a, err := ToDense(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opForward, err)
	}
	for i, l := range net.Layers() {
		w, err := ToDense(l.Weights)
		if err != nil {
			return nil, fmt.Errorf("%s: layer %d: weights: %w", opForward, i, err)
		}
		b, err := ToDense(l.Biases)
		if err != nil {
			return nil, fmt.Errorf("%s: layer %d: biases: %w", opForward, i, err)
		}
		wr, wc := w.Dims()
		ar, ac := a.Dims()
		br, bc := b.Dims()
		if wc != ar || br != wr || bc != ac {
			return nil, fmt.Errorf("%s: layer %d: W %dx%d, a %dx%d, b %dx%d: %w",
				opForward, i, wr, wc, ar, ac, br, bc, matrix.ErrDimensionMismatch)
		}

		var z mat.Dense
		z.Mul(w, a)
		z.Add(&z, b)
		if l.ReLU {
			z.Apply(func(_, _ int, v float64) float64 { return nn.Relu(v) }, &z)
		}
		a = &z
	}

	return FromMatrix(a)
}
