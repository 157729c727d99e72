// Package matrix offers a small, generic, shape-checked dense matrix.
//
// The matrix package provides:
//
//   - Matrix[T], an immutable R×C table over any Go integer, float or
//     complex kind, built only through the validating New constructor.
//   - Safe accessors (Row, Col, Val, At) that report absence with a bool
//     rather than panicking.
//   - Row-major iteration through the standard iter package (All, Cells, Rows).
//   - Algebra that always allocates a fresh result: Dot, Add, Sub, Mul,
//     Transpose, Scale, Map.
//
// Errors come in two kinds. Every validation failure matches
// errors.Is(err, ErrInvalidArgument); the more specific ErrBadShape,
// ErrDimensionMismatch and ErrNilMatrix wrap it. ErrBadInternalState is
// never returned: it is the panic value raised when an access that
// validation already proved safe fails anyway.
//
// Mul accepts functional options. WithWorkers and WithParallel distribute
// output rows over goroutines; results are identical to the sequential path.
//
//	a := matrix.MustNew([][]int{{1, 2}, {3, 4}})
//	b := matrix.MustNew([][]int{{5}, {6}})
//	p, err := a.Mul(b) // [[17], [39]]
package matrix
