// SPDX-License-Identifier: MIT

// Package parallel provides the bounded fan-out used by row-parallel kernels.
//
// Purpose:
//   - Split an index range [0, n) into contiguous chunks and run them on a
//     fixed number of goroutines.
//   - Fall back to a plain loop when parallelism is disabled or the range is
//     too small to amortize goroutine start-up.
//
// Determinism:
//   - Each index is visited exactly once; chunks are disjoint, so callers that
//     write only to slot i get the same result as the sequential loop.
package parallel

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// DefaultMinChunk is the smallest number of indices handed to one goroutine.
const DefaultMinChunk = 8

// Config controls parallel execution behavior.
type Config struct {
	Workers  int // number of goroutines; <=1 means sequential
	MinChunk int // minimum indices per goroutine
}

// Sequential returns a Config that never spawns goroutines.
func Sequential() Config {
	return Config{Workers: 1, MinChunk: DefaultMinChunk}
}

// DefaultConfig sizes the pool from the host's logical cores.
func DefaultConfig() Config {
	return Config{Workers: HostWorkers(), MinChunk: DefaultMinChunk}
}

// HostWorkers reports the logical core count detected by cpuid.
// runtime.NumCPU is used when cpuid cannot identify the processor
// (non-x86 hosts report zero cores).
func HostWorkers() int {
	n := cpuid.CPU.LogicalCores
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}

	return n
}

// Enabled reports whether cfg would fan out a range of n indices.
func (cfg Config) Enabled(n int) bool {
	minChunk := max(cfg.MinChunk, 1)

	return cfg.Workers > 1 && n >= 2*minChunk
}

// For executes f(i) for every i in [0, n).
// It blocks until all calls have returned.
//
// Complexity: O(n) calls to f; at most cfg.Workers goroutines.
func For(n int, f func(i int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled(n) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	minChunk := max(cfg.MinChunk, 1)
	chunk := max((n+cfg.Workers-1)/cfg.Workers, minChunk)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
