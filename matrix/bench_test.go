// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[float64]
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustNew(b, randomRows(n, n, 1337))
			B := MustNew(b, randomRows(n, n, 4242))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := MustNew(b, randomRows(n, n, 11))
		B := MustNew(b, randomRows(n, n, 22))
		b.Run(fmt.Sprintf("seq/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
		b.Run(fmt.Sprintf("par/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B, matrix.WithParallel())
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	rows := randomRows(2, 4096, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d, err := matrix.Dot(rows[0], rows[1])
		if err != nil {
			b.Fatal(err)
		}
		sinkF = d
	}
}
