// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiplication kernel.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: parallel and sequential paths produce identical
//     results because each output row is owned by exactly one goroutine.
//   - No global state: every call resolves its own Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "github.com/katalvlaran/lvmatrix/internal/parallel"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers keeps Mul sequential unless a caller opts in.
	DefaultWorkers = 1

	// DefaultMinRowsPerWorker is the smallest share of output rows worth a goroutine.
	DefaultMinRowsPerWorker = parallel.DefaultMinChunk
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"
	panicMinRowsInvalid = "matrix: WithMinRowsPerWorker: n must be >= 1"
)

// Option mutates internal options. Applying the same Option twice is harmless;
// when options conflict the last one wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers int // goroutines used by Mul; 1 means sequential
	minRows int // minimum output rows per goroutine
}

// WithWorkers splits the output rows of Mul across up to n goroutines.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallel sizes the worker pool from the host's logical cores.
func WithParallel() Option {
	n := parallel.HostWorkers()

	return func(o *Options) { o.workers = n }
}

// WithMinRowsPerWorker sets how many output rows a goroutine must receive
// before Mul fans out. Panics when n < 1.
func WithMinRowsPerWorker(n int) Option {
	if n < 1 {
		panic(panicMinRowsInvalid)
	}

	return func(o *Options) { o.minRows = n }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		workers: DefaultWorkers,
		minRows: DefaultMinRowsPerWorker,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// parallelConfig converts resolved options into a worker-pool configuration.
func (o Options) parallelConfig() parallel.Config {
	return parallel.Config{Workers: o.workers, MinChunk: o.minRows}
}
