// SPDX-License-Identifier: MIT

package nn

import (
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

var (
	// ErrEmptyNetwork is returned when a network is built without layers.
	ErrEmptyNetwork = fmt.Errorf("nn: network has no layers: %w", matrix.ErrInvalidArgument)

	// ErrLayerCountMismatch is returned by FromSlices when the activation
	// flags, weights and biases do not have the same length.
	ErrLayerCountMismatch = fmt.Errorf("nn: layer count mismatch: %w", matrix.ErrInvalidArgument)

	// ErrLayerShape is returned when a layer's weights and biases do not fit
	// together or do not chain onto the previous layer.
	ErrLayerShape = fmt.Errorf("nn: incompatible layer shape: %w", matrix.ErrInvalidArgument)

	// ErrNilLayer is returned when a layer carries a nil weight or bias matrix.
	ErrNilLayer = fmt.Errorf("nn: layer has nil weights or biases: %w", matrix.ErrInvalidArgument)
)

// layerErrorf attaches the layer index to err.
func layerErrorf(op string, layer int, err error) error {
	return fmt.Errorf("%s: layer %d: %w", op, layer, err)
}
