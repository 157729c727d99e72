// SPDX-License-Identifier: MIT

// Package fixture loads network test fixtures from a small text format.
//
// A fixture file is a list of cases separated by blank lines. Every line of a
// case is "Key[ N]: value":
//
//	Weights 1: [[1, -1], [2, 0]]
//	Biases 1: [[0], [1]]
//	Relu 1: true
//	Example_Input: [[1], [3]]
//	Example_Output: [[0], [3]]
//
// Weights, Biases and Relu lines are collected in file order, one entry per
// layer; the numeric suffix is informational. Unknown keys are ignored.
// Matrices are written as bracketed rows of comma-separated floats.
package fixture
