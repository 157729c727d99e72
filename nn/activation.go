// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Real is the element constraint of a Network: ReLU needs an ordering.
type Real = matrix.Real

// Relu is the scalar rectifier max(x, 0).
func Relu[T Real](x T) T {
	if x > 0 {
		return x
	}

	return 0
}

// ReLU applies Relu to every element of m and rebuilds a matrix of the same
// shape through matrix.New.
//
// Errors:
//   - matrix.ErrNilMatrix or matrix.ErrBadShape for a nil or zero-value m.
//
// Once m is validated the rebuild cannot fail because the shape is preserved;
// if it does, the invariant is broken and ReLU panics with
// matrix.ErrBadInternalState.
func ReLU[T Real](m *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("nn: ReLU: %w", err)
	}
	rows := m.ToRows()
	for _, row := range rows {
		for j, v := range row {
			row[j] = Relu(v)
		}
	}

	out, err := matrix.New(rows)
	if err != nil {
		panic(fmt.Errorf("nn: ReLU: %w: rebuild of %dx%d failed: %v",
			matrix.ErrBadInternalState, m.RowCount(), m.ColCount(), err))
	}

	return out, nil
}
