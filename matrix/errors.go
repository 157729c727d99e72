// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public operations return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// caller-supplied input; panics are reserved for broken internal invariants.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON KINDS
// -------------
// There are exactly two error kinds:
//   - ErrInvalidArgument: a shape precondition was violated by the caller.
//     Every specific validation sentinel below wraps it, so
//     errors.Is(err, ErrInvalidArgument) holds for all of them.
//   - ErrBadInternalState: an invariant the package itself proved was found
//     broken. It is never returned; it is only carried by a panic value.
//
// Every message is prefixed with "matrix: ..." for easy grepping.

var (
	// ErrInvalidArgument is the root of every caller-facing validation failure.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrBadInternalState marks a violated internal invariant (fatal).
	ErrBadInternalState = errors.New("matrix: bad internal state")
)

var (
	// ErrBadShape is returned by New when the input table is empty or ragged.
	ErrBadShape = fmt.Errorf("%w: invalid shape", ErrInvalidArgument)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, Mul where a.ColCount != b.RowCount,
	// or Dot over slices of different length.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidArgument)
)

// internalStateFault panics with a value wrapping ErrBadInternalState.
// Only called after a precondition check already proved the access valid.
func internalStateFault(op, format string, args ...any) {
	panic(fmt.Errorf("%s: %w: %s", op, ErrBadInternalState, fmt.Sprintf(format, args...)))
}
