package pipeline

import (
	"fmt"

	"github.com/katalvlaran/manifold/gemm"
	"github.com/katalvlaran/manifold/kernel"
	"github.com/katalvlaran/manifold/knn"
)

// SquaredDistances fills dist2 (n1 x n2, row-major) with the squared
// Euclidean distances between the rows of a (n1 x dims, flattened) and the
// rows of b (n2 x dims, flattened), using the expansion
//
//	‖a−b‖² = ‖a‖² + ‖b‖² − 2·a·b
//
// with the cross term computed by gemm.CrossTerm64. Floating-point
// cancellation can push near-zero results slightly negative; those are
// clamped to 0 so downstream kernels always see non-negative distances.
//
// Errors: ErrBadShape if a, b or dist2 is shorter than its declared shape.
func SquaredDistances(a []float64, n1 int, b []float64, n2, dims int, dist2 []float64) error {
	// 1) Validate the flattened shapes.
	if n1 <= 0 || n2 <= 0 || dims <= 0 {
		return fmt.Errorf("n1=%d n2=%d dims=%d: %w", n1, n2, dims, ErrBadShape)
	}
	if len(a) < n1*dims || len(b) < n2*dims || len(dist2) < n1*n2 {
		return fmt.Errorf("flattened buffers shorter than declared shapes: %w", ErrBadShape)
	}

	// 2) Cross term: dist2 <- -2*A*Bᵀ.
	gemm.CrossTerm64(a, n1, dims, b, n2, dist2)

	// 3) Row and column norm-squared terms.
	na := rowNorms(a, n1, dims)
	nb := rowNorms(b, n2, dims)
	for r := 0; r < n1; r++ {
		base := r * n2
		for c := 0; c < n2; c++ {
			d := dist2[base+c] + na[r] + nb[c]
			if d < 0 {
				d = 0
			}
			dist2[base+c] = d
		}
	}

	return nil
}

// rowNorms returns the squared L2 norm of each row of the flattened n x dims
// matrix.
func rowNorms(x []float64, n, dims int) []float64 {
	norms := make([]float64, n)
	for r := 0; r < n; r++ {
		var s float64
		for _, v := range x[r*dims : (r+1)*dims] {
			s += v * v
		}
		norms[r] = s
	}

	return norms
}

// Build constructs the normalized self-tuning affinity graph of a point
// cloud. k is the neighborhood size per point including the point itself, so
// k=3 keeps each point's two nearest real neighbors before mutual filtering.
//
// The candidate axis streams through PushHeap in blocks of
// Options.BlockSize columns; the resulting graph is independent of the block
// partitioning.
//
// Steps: squared-distance blocks → PushHeap → FinalizeHeap → Reduce (drop
// self edges) → Mutual (keep mutual pairs, both directions) → CSR assembly
// → SelfTuningGaussian → Normalize.
//
// Errors:
//
//   - ErrBadNeighbors if k < 2.
//   - ErrTooFewPoints if len(points) < k.
//   - ErrRaggedPoints if the rows differ in length.
//
// Kernel-stage failures (underflow, shape mismatches) propagate unwrapped so
// callers can errors.Is against the knn and kernel sentinels.
func Build(points [][]float64, k int, opts ...Option) (*Graph, error) {
	// 1) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the cloud.
	n := len(points)
	if k < 2 {
		return nil, ErrBadNeighbors
	}
	if n < k {
		return nil, fmt.Errorf("%d points for k=%d: %w", n, k, ErrTooFewPoints)
	}
	dims := len(points[0])
	if dims == 0 {
		return nil, ErrRaggedPoints
	}
	flat := make([]float64, n*dims)
	for r, p := range points {
		if len(p) != dims {
			return nil, fmt.Errorf("row %d has %d dims, row 0 has %d: %w", r, len(p), dims, ErrRaggedPoints)
		}
		copy(flat[r*dims:(r+1)*dims], p)
	}

	// 3) Stream candidate blocks through the per-row heaps.
	data := make([]float64, n*k)
	colInd := make([]int64, n*k)
	blockBuf := make([]float64, n*min(cfg.BlockSize, n))
	for offset := 0; offset < n; offset += cfg.BlockSize {
		m := min(cfg.BlockSize, n-offset)
		dist2 := blockBuf[:n*m]
		if err := SquaredDistances(flat, n, flat[offset*dims:(offset+m)*dims], m, dims, dist2); err != nil {
			return nil, err
		}
		if err := knn.PushHeap(dist2, n, m, data, colInd, offset, k, knn.WithWorkers(cfg.Workers)); err != nil {
			return nil, err
		}
	}

	// 4) Sort rows, pin the self edge, then drop it.
	if err := knn.FinalizeHeap(data, colInd, 0, k, knn.WithWorkers(cfg.Workers)); err != nil {
		return nil, err
	}
	rowInd := make([]int64, n*k)
	for r := 0; r < n; r++ {
		for i := 0; i < k; i++ {
			rowInd[r*k+i] = int64(r)
		}
	}
	kk := k - 1
	sdata := make([]float64, n*kk)
	scolInd := make([]int64, n*kk)
	srowInd := make([]int64, n*kk)
	if err := knn.Reduce(data[1:], colInd[1:], rowInd[1:], sdata, scolInd, srowInd, 1, kk); err != nil {
		return nil, err
	}

	// 5) Mutual-neighbor symmetrization.
	cnt, err := knn.Mutual(sdata, scolInd, srowInd, kk)
	if err != nil {
		return nil, err
	}

	// 6) CSR assembly. Mutual preserves the row-contiguous order, so
	//    counting per row and prefix-summing is enough.
	rowPtr := make([]int64, n+1)
	for i := 0; i < cnt; i++ {
		rowPtr[srowInd[i]+1]++
	}
	for r := 1; r <= n; r++ {
		rowPtr[r] += rowPtr[r-1]
	}
	csrData := append([]float64(nil), sdata[:cnt]...)
	csrCol := append([]int64(nil), scolInd[:cnt]...)

	// 7) Affinities and symmetric normalization.
	aff := make([]float64, cnt)
	if err = kernel.SelfTuningGaussian(aff, csrData, csrCol, rowPtr, kernel.WithWorkers(cfg.Workers)); err != nil {
		return nil, err
	}
	out := make([]float64, cnt)
	if err = kernel.Normalize(out, aff, csrCol, rowPtr, kernel.WithWorkers(cfg.Workers)); err != nil {
		return nil, err
	}

	return &Graph{Data: out, ColInd: csrCol, RowPtr: rowPtr}, nil
}
