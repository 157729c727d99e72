// Package lvmatrix is a small toolkit for dense generic matrices and the
// feed-forward networks built on top of them.
//
// 🚀 What is lvmatrix?
//
//	A typed, immutable matrix core plus the pieces needed to run and check
//	fully connected ReLU networks:
//		• Matrix[T]: shape-checked construction, safe accessors, iterators
//		• Linear algebra: Dot, Add, Sub, Mul (optionally row-parallel), Transpose
//		• Networks: layers of W·a + b with optional ReLU, Forward and Trace
//		• Fixtures: a plain-text format of networks with expected outputs
//		• Interop: copies to and from gonum's mat.Dense
//
// ✨ Why choose lvmatrix?
//
//   - Generic over every Go integer, float and complex kind
//   - Errors you can match with errors.Is; accessors never panic
//   - Deterministic: parallel Mul yields bit-identical results
//
// Packages:
//
//	matrix/         Matrix[T], validators, options and linear algebra
//	nn/             Layer, Network, ReLU
//	fixture/        parser and checker for network fixture files
//	interop/        gonum bridge, also used as a reference in tests
//	cmd/lvmatrix/   CLI: mul, eval, sweep, info
//
// Quick example:
//
//	[1 2 3 4]   [1 4 1]   [30 20 10]
//	[4 2 2 1] · [2 3 1] = [18 27  9]
//	[1 1 1 1]   [3 2 1]   [10 10  4]
//	            [4 1 1]
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
