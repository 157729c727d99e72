// SPDX-License-Identifier: MIT
package fixture_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/fixture"
	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/katalvlaran/lvmatrix/nn"
	"github.com/stretchr/testify/require"
)

// identityCase passes a 2-vector through an identity layer.
func identityCase(output [][]float64) fixture.Case {
	return fixture.Case{
		Line:    7,
		Weights: []*matrix.Matrix[float64]{matrix.MustNew([][]float64{{1, 0}, {0, 1}})},
		Biases:  []*matrix.Matrix[float64]{matrix.MustNew([][]float64{{0}, {0}})},
		ReLU:    []bool{false},
		Input:   matrix.MustNew([][]float64{{1}, {-2}}),
		Output:  matrix.MustNew(output),
	}
}

func TestCase_Check(t *testing.T) {
	require.NoError(t, identityCase([][]float64{{1}, {-2}}).Check())
}

func TestCase_CheckValueMismatch(t *testing.T) {
	err := identityCase([][]float64{{1}, {2}}).Check()
	require.ErrorIs(t, err, fixture.ErrOutputMismatch)
	require.ErrorContains(t, err, "(1,0) = -2, want 2")
	require.ErrorContains(t, err, "line 7")
}

func TestCase_CheckShapeMismatch(t *testing.T) {
	err := identityCase([][]float64{{1, -2}}).Check()
	require.ErrorIs(t, err, fixture.ErrOutputMismatch)
	require.ErrorContains(t, err, "shape 2x1, want 1x2")
}

func TestCase_BadNetwork(t *testing.T) {
	c := identityCase([][]float64{{1}, {-2}})
	c.ReLU = nil
	_, err := c.Run()
	require.ErrorIs(t, err, nn.ErrLayerCountMismatch)

	c = identityCase([][]float64{{1}, {-2}})
	c.Input = matrix.MustNew([][]float64{{1}})
	err = c.Check()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
