package kernel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/manifold/sparse"
)

// SelfTuningGaussian converts a CSR matrix of squared distances into
// self-tuning Gaussian affinities, writing them to sdist (which may alias
// data).
//
// The per-node scale σ_j² is the largest distance incident to column j over
// the whole matrix — for a kNN graph, the farthest retained neighbor. Each
// nonzero (r, c, d) becomes
//
//	exp(−d / (√σ_r²·√σ_c² + 1e-12))
//
// falling back to exp(−d) when both scales vanish. Distances must be
// non-negative, so every affinity lands in (0, 1], and a symmetric distance
// matrix yields a symmetric affinity matrix.
//
// Scratch: a node-scale vector of size nrows and a row-index expansion of
// size nnz, both released on return. The scale pass is sequential; the
// row-index and affinity passes fan out over Options.Workers.
//
// Complexity:
//
//   - Time:  O(nrows + nnz)
//   - Space: O(nrows + nnz) scratch
//
// Errors:
//
//   - ErrBadShape   if rowPtr has fewer than two entries or sdist/data/
//     colInd are shorter than rowPtr[nrows].
//   - ErrIndexRange if a stored column index is outside [0, nrows).
func SelfTuningGaussian[T sparse.Float, I sparse.Index](sdist, data []T, colInd, rowPtr []I, opts ...Option) error {
	// 1) Apply options and validate the CSR shape.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	nrows, nnz, err := csrShape(len(sdist), len(data), len(colInd), rowPtr)
	if err != nil {
		return err
	}

	// 2) Per-node scales: max incident distance per column.
	ndist := make([]T, nrows)
	for i := 0; i < nnz; i++ {
		c := colInd[i]
		if c < 0 || int(c) >= nrows {
			return fmt.Errorf("column %d at nonzero %d outside [0,%d): %w", c, i, nrows, ErrIndexRange)
		}
		if ndist[c] < data[i] {
			ndist[c] = data[i]
		}
	}

	// 3) Row-index expansion so the affinity pass can run flat over
	//    nonzeros.
	rowInd := expandRows[I](rowPtr, nrows, nnz, cfg.Workers)

	// 4) Affinity pass.
	return forEachRange(nnz, cfg.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			den := math.Sqrt(float64(ndist[rowInd[i]])) * math.Sqrt(float64(ndist[colInd[i]]))
			if den != 0 {
				sdist[i] = T(math.Exp(-float64(data[i]) / (den + epsFloor)))
			} else {
				sdist[i] = T(math.Exp(-float64(data[i])))
			}
		}

		return nil
	})
}

// csrShape validates the common CSR contract of this package and returns
// (nrows, nnz).
func csrShape[I sparse.Index](ns, nd, nc int, rowPtr []I) (int, int, error) {
	if len(rowPtr) < 2 {
		return 0, 0, fmt.Errorf("rowPtr needs nrows+1 entries: %w", ErrBadShape)
	}
	nrows := len(rowPtr) - 1
	nnz := int(rowPtr[nrows])
	if nnz < 0 || nd < nnz || nc < nnz || ns < nnz {
		return 0, 0, fmt.Errorf("sdist/data/colInd shorter than rowPtr[%d]=%d: %w", nrows, nnz, ErrBadShape)
	}

	return nrows, nnz, nil
}

// expandRows materializes the row index of every nonzero from rowPtr.
// Each worker fills the slots of a disjoint row range.
func expandRows[I sparse.Index](rowPtr []I, nrows, nnz, workers int) []I {
	rowInd := make([]I, nnz)
	// Row fills never fail; the error return of forEachRange is vestigial
	// here.
	_ = forEachRange(nrows, workers, func(lo, hi int) error {
		for r := lo; r < hi; r++ {
			for j := rowPtr[r]; j < rowPtr[r+1]; j++ {
				rowInd[j] = I(r)
			}
		}

		return nil
	})

	return rowInd
}
