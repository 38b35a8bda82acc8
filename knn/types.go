// Package knn: configuration options and sentinel errors.
//
// Errors (sentinel):
//
//   - ErrBadShape      — slice lengths disagree with the declared n, m, k.
//   - ErrRowUnderflow  — FinalizeHeap produced fewer than k entries for a
//     row, which indicates duplicate columns upstream.
//   - ErrShapeMismatch — Reduce's write cursor did not land exactly on the
//     end of the input, so the d/k stride contract was violated.
//   - ErrBadWorkers    — WithWorkers was given a non-positive count.

package knn

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by the knn kernels.
var (
	// ErrBadShape indicates that slice lengths or shape parameters violate
	// the per-row block or triplet contracts.
	ErrBadShape = errors.New("knn: invalid shape")

	// ErrRowUnderflow indicates that a finalized row kept fewer than k
	// neighbors. This only happens when the accumulated list carries the
	// self column more than once, i.e. upstream duplicate columns.
	ErrRowUnderflow = errors.New("knn: fewer than k neighbors after finalize")

	// ErrShapeMismatch indicates that Reduce's read cursor did not advance
	// through exactly the whole input.
	ErrShapeMismatch = errors.New("knn: reduce cursor mismatch")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("knn: worker count must be positive")
)

// Options configures the parallel kernels of this package.
//
// Workers — number of goroutines the row loop fans out over. Rows are
// independent, so any positive count is correct; the default is
// runtime.NumCPU().
type Options struct {
	Workers int // number of parallel workers for the row loop
}

// Option represents a functional option for the knn kernels.
type Option func(*Options)

// WithWorkers sets the worker count for the parallel row loops.
// Must be positive; non-positive counts cause ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns the Options the kernels start from before applying
// functional options.
//
// Defaults:
//   - Workers: runtime.NumCPU().
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}
