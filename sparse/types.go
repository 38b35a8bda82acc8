// Package sparse: shared constraints and sentinel errors.
// All kernels in this module are generic over one value type and one index
// type. The index type MUST be signed: the mutual-neighbor symmetrizer marks
// visited slots in place via the encoding v -> -(v+1), which needs the full
// negative range and keeps a marked zero distinguishable from an unmarked
// zero.

package sparse

import "errors"

// Float is the value type of every kernel: squared distances on input,
// affinities on output. Single and double precision are both supported; the
// BLAS adapter in package gemm dispatches per precision.
type Float interface {
	~float32 | ~float64
}

// Index is the signed integer type used for column and row indices.
// It must be able to hold 2*maxIndex+1 so that the -(v+1) mark encoding of
// knn.Mutual never overflows.
type Index interface {
	~int32 | ~int64
}

// Sentinel errors returned by the sparse package.
var (
	// ErrBadShape is returned when slice lengths or shape parameters violate
	// the documented array contracts (e.g. len(rowPtr) < 2, nnz mismatch).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrIndexRange is returned when a selected row or a stored column index
	// falls outside [0, nrows).
	ErrIndexRange = errors.New("sparse: index out of range")
)
