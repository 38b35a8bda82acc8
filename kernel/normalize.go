package kernel

import (
	"fmt"

	"github.com/katalvlaran/manifold/sparse"
)

// Normalize applies the symmetric degree normalization W -> D⁻¹·W·D⁻¹ to a
// CSR affinity matrix, writing the result to sdist (which may alias data).
//
// Degrees are accumulated per column, ndist[c] = Σ data[i] over nonzeros
// with colInd[i] == c, then inverted with a 1e-12 floor, and every nonzero
// becomes data[i]·ndist[row(i)]·ndist[col(i)]. On a symmetric input the
// column degrees equal the row degrees and the result is the symmetrically
// normalized Markov operator of the diffusion process.
//
// Scratch: a degree vector of size nrows and a row-index expansion of size
// nnz, released on return. Accumulation is sequential; the reciprocal,
// row-index and rescale passes fan out over Options.Workers.
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
func Normalize[T sparse.Float, I sparse.Index](sdist, data []T, colInd, rowPtr []I, opts ...Option) error {
	// 1) Apply options and validate the CSR shape.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	nrows, nnz, err := csrShape(len(sdist), len(data), len(colInd), rowPtr)
	if err != nil {
		return err
	}

	// 2) Column degrees.
	ndist := make([]T, nrows)
	for i := 0; i < nnz; i++ {
		c := colInd[i]
		if c < 0 || int(c) >= nrows {
			return fmt.Errorf("column %d at nonzero %d outside [0,%d): %w", c, i, nrows, ErrIndexRange)
		}
		ndist[c] += data[i]
	}

	// 3) Floored reciprocals.
	if err = forEachRange(nrows, cfg.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			ndist[i] = T(1.0) / (ndist[i] + epsFloor)
		}

		return nil
	}); err != nil {
		return err
	}

	// 4) Row-index expansion and the rescale pass.
	rowInd := expandRows(rowPtr, nrows, nnz, cfg.Workers)

	return forEachRange(nnz, cfg.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			sdist[i] = data[i] * ndist[rowInd[i]] * ndist[colInd[i]]
		}

		return nil
	})
}
