// SPDX-License-Identifier: MIT

// Package nn evaluates small feed-forward networks on top of package matrix.
//
// A Network is an ordered list of fully connected layers. For an input
// column (or block of columns) x, every layer computes
//
//	a = W·a + b
//	a = relu(a)   // only when the layer has ReLU enabled
//
// with W of shape [out, in] and b of shape [out, k], where k is the number
// of input columns. There is no broadcasting: the bias must already have the
// activation's shape.
//
// Example:
//
//	net, err := nn.New(
//	    nn.Layer[float64]{Weights: w1, Biases: b1, ReLU: true},
//	    nn.Layer[float64]{Weights: w2, Biases: b2},
//	)
//	out, err := net.Forward(x)
package nn
