// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Operation tags used in error wrapping.
const (
	opNew        = "nn.New"
	opFromSlices = "nn.FromSlices"
	opForward    = "nn.Forward"
)

// Layer is one fully connected step: a = W·a + b, then optionally ReLU.
//   - Weights has shape [out, in].
//   - Biases has out rows and one column per input column.
type Layer[T Real] struct {
	Weights *matrix.Matrix[T]
	Biases  *matrix.Matrix[T]
	ReLU    bool
}

// In returns the number of inputs the layer consumes.
func (l Layer[T]) In() int { return l.Weights.ColCount() }

// Out returns the number of outputs the layer produces.
func (l Layer[T]) Out() int { return l.Weights.RowCount() }

// Network is an immutable chain of layers.
type Network[T Real] struct {
	layers []Layer[T]
}

// New validates and assembles a network.
//
// Validation:
//   - at least one layer (ErrEmptyNetwork);
//   - non-nil weights and biases (ErrNilLayer), built by a constructor
//     (matrix.ErrBadShape for the zero value);
//   - Biases.RowCount() == Weights.RowCount() (ErrLayerShape);
//   - Weights.ColCount() of layer l equals Weights.RowCount() of layer l-1
//     (ErrLayerShape).
//
// The bias column count is checked at Forward time, since it must match the
// number of input columns.
func New[T Real](layers ...Layer[T]) (*Network[T], error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrEmptyNetwork)
	}
	for i, l := range layers {
		if l.Weights == nil || l.Biases == nil {
			return nil, layerErrorf(opNew, i, ErrNilLayer)
		}
		if err := matrix.ValidateNotNil(l.Weights); err != nil {
			return nil, layerErrorf(opNew, i, err)
		}
		if err := matrix.ValidateNotNil(l.Biases); err != nil {
			return nil, layerErrorf(opNew, i, err)
		}
		if l.Biases.RowCount() != l.Weights.RowCount() {
			return nil, layerErrorf(opNew, i, fmt.Errorf("bias rows %d, weight rows %d: %w",
				l.Biases.RowCount(), l.Weights.RowCount(), ErrLayerShape))
		}
		if i > 0 && l.In() != layers[i-1].Out() {
			return nil, layerErrorf(opNew, i, fmt.Errorf("takes %d inputs, previous layer yields %d: %w",
				l.In(), layers[i-1].Out(), ErrLayerShape))
		}
	}

	own := make([]Layer[T], len(layers))
	copy(own, layers)

	return &Network[T]{layers: own}, nil
}

// FromSlices builds a network from three parallel slices, one entry per layer.
func FromSlices[T Real](useReLU []bool, weights, biases []*matrix.Matrix[T]) (*Network[T], error) {
	if len(useReLU) != len(weights) || len(weights) != len(biases) {
		return nil, fmt.Errorf("%s: relu=%d weights=%d biases=%d: %w",
			opFromSlices, len(useReLU), len(weights), len(biases), ErrLayerCountMismatch)
	}
	layers := make([]Layer[T], len(weights))
	for i := range layers {
		layers[i] = Layer[T]{Weights: weights[i], Biases: biases[i], ReLU: useReLU[i]}
	}

	return New(layers...)
}

// Layers returns a copy of the layer list.
func (n *Network[T]) Layers() []Layer[T] {
	out := make([]Layer[T], len(n.layers))
	copy(out, n.layers)

	return out
}

// Depth returns the number of layers.
func (n *Network[T]) Depth() int { return len(n.layers) }

// InputSize is the number of rows Forward expects.
func (n *Network[T]) InputSize() int { return n.layers[0].In() }

// OutputSize is the number of rows Forward returns.
func (n *Network[T]) OutputSize() int { return n.layers[len(n.layers)-1].Out() }

// Forward evaluates the network on input and returns the last activation.
// opts are passed to every matrix.Mul call.
//
// Errors:
//   - matrix.ErrNilMatrix when input is nil.
//   - matrix.ErrDimensionMismatch when input rows do not match InputSize(),
//     or a bias does not have the activation's column count. Errors are
//     wrapped with the failing layer index.
func (n *Network[T]) Forward(input *matrix.Matrix[T], opts ...matrix.Option) (*matrix.Matrix[T], error) {
	trace, err := n.Trace(input, opts...)
	if err != nil {
		return nil, err
	}

	return trace[len(trace)-1], nil
}

// Trace is Forward that also returns every intermediate activation:
// element 0 is the input, element l+1 the output of layer l.
func (n *Network[T]) Trace(input *matrix.Matrix[T], opts ...matrix.Option) ([]*matrix.Matrix[T], error) {
	if err := matrix.ValidateNotNil(input); err != nil {
		return nil, fmt.Errorf("%s: %w", opForward, err)
	}

	trace := make([]*matrix.Matrix[T], 0, len(n.layers)+1)
	trace = append(trace, input)
	a := input
	for i, l := range n.layers {
		z, err := l.Weights.Mul(a, opts...)
		if err != nil {
			return nil, layerErrorf(opForward, i, err)
		}
		z, err = z.Add(l.Biases)
		if err != nil {
			return nil, layerErrorf(opForward, i, err)
		}
		if l.ReLU {
			if z, err = ReLU(z); err != nil {
				return nil, layerErrorf(opForward, i, err)
			}
		}
		a = z
		trace = append(trace, a)
	}

	return trace, nil
}
