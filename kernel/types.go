// Package kernel: configuration options and sentinel errors.

package kernel

import (
	"errors"
	"runtime"
)

// epsFloor keeps reciprocal degrees and bandwidth denominators finite when a
// node has a zero scale or zero degree.
const epsFloor = 1e-12

// Sentinel errors returned by the kernel transforms.
var (
	// ErrBadShape indicates that slice lengths disagree with the CSR
	// contract (len(rowPtr) < 2, data/colInd/sdist shorter than nnz).
	ErrBadShape = errors.New("kernel: invalid shape")

	// ErrIndexRange indicates a stored column index outside [0, nrows).
	ErrIndexRange = errors.New("kernel: column index out of range")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("kernel: worker count must be positive")
)

// Options configures the parallel passes of this package.
//
// Workers — number of goroutines the nonzero/row loops fan out over.
// Default is runtime.NumCPU().
type Options struct {
	Workers int // number of parallel workers
}

// Option represents a functional option for the kernel transforms.
type Option func(*Options)

// WithWorkers sets the worker count for the parallel passes.
// Must be positive; non-positive counts cause ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// DefaultOptions returns the Options the transforms start from before
// applying functional options.
//
// Defaults:
//   - Workers: runtime.NumCPU().
func DefaultOptions() Options {
	return Options{Workers: runtime.NumCPU()}
}
