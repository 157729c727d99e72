// SPDX-License-Identifier: MIT

// Package matrix: element constraints and small value types.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Integer is the set of Go integer kinds a Matrix may hold.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of Go floating-point kinds a Matrix may hold.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of Go complex kinds a Matrix may hold.
type Complex interface {
	~complex64 | ~complex128
}

// Real is every ordered numeric kind (integers and floats).
type Real interface {
	Integer | Float
}

// Scalar is the element constraint of Matrix.
// Every kind in the set has a zero value, supports + and *, is copied by
// assignment and is comparable with ==.
type Scalar interface {
	Integer | Float | Complex
}

// Cell addresses one element by zero-based row and column.
type Cell struct {
	Row int // row index
	Col int // column index
}
