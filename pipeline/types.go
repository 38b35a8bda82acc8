// Package pipeline: configuration options and sentinel errors.

package pipeline

import (
	"errors"
	"runtime"
)

// Sentinel errors returned by Build and SquaredDistances.
var (
	// ErrTooFewPoints indicates fewer points than the requested
	// neighborhood size (k neighbors per row include the point itself).
	ErrTooFewPoints = errors.New("pipeline: need at least k points")

	// ErrBadNeighbors indicates k < 2 — one slot holds the self edge, so at
	// least one real neighbor is required.
	ErrBadNeighbors = errors.New("pipeline: k must be at least 2")

	// ErrRaggedPoints indicates that the input rows do not share one
	// dimensionality.
	ErrRaggedPoints = errors.New("pipeline: points must share one dimensionality")

	// ErrBadShape indicates that flattened buffers disagree with the
	// declared row counts and dimensionality.
	ErrBadShape = errors.New("pipeline: invalid shape")

	// ErrBadBlockSize indicates a non-positive block size.
	ErrBadBlockSize = errors.New("pipeline: block size must be positive")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("pipeline: worker count must be positive")
)

// Options configures Build.
//
// Workers   — worker count handed down to the knn and kernel stages.
// BlockSize — width of the candidate column blocks streamed through
// PushHeap. Any positive value yields the same graph; small values exercise
// the accumulation path, large values amortize the BLAS calls.
type Options struct {
	Workers   int // parallel workers for the row loops
	BlockSize int // candidate columns per distance block
}

// Option represents a functional option for Build.
type Option func(*Options)

// WithWorkers sets the worker count for the parallel stages.
// Must be positive; non-positive counts cause ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithBlockSize sets the candidate block width for the distance streaming.
// Must be positive; non-positive sizes cause ErrBadBlockSize.
func WithBlockSize(m int) Option {
	return func(o *Options) {
		if m <= 0 {
			panic(ErrBadBlockSize.Error())
		}
		o.BlockSize = m
	}
}

// DefaultOptions returns the Options Build starts from before applying
// functional options.
//
// Defaults:
//   - Workers:   runtime.NumCPU().
//   - BlockSize: 1024 candidate columns per block.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.NumCPU(),
		BlockSize: 1024,
	}
}
