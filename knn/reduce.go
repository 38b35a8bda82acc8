package knn

import (
	"fmt"

	"github.com/katalvlaran/manifold/sparse"
)

// Reduce compacts finalized per-row neighbor blocks from k+d entries per row
// down to k, dropping the d leading entries of every row. With d=1 this
// removes the self edge that FinalizeHeap pinned at each row head.
//
// The input triplets must be passed already advanced past row 0's dropped
// prefix: for the usual d=1 case the caller hands data[1:], colInd[1:],
// rowInd[1:] of the finalized arrays, so data[0] is row 0's first real
// neighbor. The outputs must be sized to rows*k; the read cursor has to land
// exactly on len(data) or the stride contract was violated.
//
// Complexity: O(rows*k) time, no scratch.
//
// Errors:
//
//   - ErrBadShape      if d < 0, k <= 0, or the output slices disagree in
//     length.
//   - ErrShapeMismatch if the cursor leaves the input early or lands short,
//     i.e. the input is not rows*(k+d)-1 entries long.
func Reduce[T sparse.Float, I sparse.Index](data []T, colInd, rowInd []I, sdata []T, scolInd, srowInd []I, d, k int) error {
	// 1) Validate triplet shapes.
	if d < 0 || k <= 0 {
		return fmt.Errorf("d=%d k=%d: %w", d, k, ErrBadShape)
	}
	if len(colInd) < len(data) || len(rowInd) < len(data) {
		return fmt.Errorf("colInd/rowInd shorter than data: %w", ErrBadShape)
	}
	snd := len(sdata)
	if len(scolInd) != snd || len(srowInd) != snd {
		return fmt.Errorf("output triplet lengths disagree: %w", ErrBadShape)
	}

	// 2) Copy row 0's first kept entry, then stride through the rest,
	//    skipping d input entries at every row boundary.
	if snd > 0 {
		if len(data) == 0 {
			return fmt.Errorf("empty input with %d outputs: %w", snd, ErrShapeMismatch)
		}
		sdata[0] = data[0]
		scolInd[0] = colInd[0]
		srowInd[0] = rowInd[0]
	}
	j := 1
	for r := 1; r < snd; r, j = r+1, j+1 {
		if r%k == 0 {
			j += d
		}
		if j >= len(data) {
			return fmt.Errorf("cursor %d beyond input %d at output %d: %w", j, len(data), r, ErrShapeMismatch)
		}
		sdata[r] = data[j]
		scolInd[r] = colInd[j]
		srowInd[r] = rowInd[j]
	}

	// 3) The cursor must have consumed the whole input.
	if j != len(data) {
		return fmt.Errorf("cursor %d != input length %d: %w", j, len(data), ErrShapeMismatch)
	}

	return nil
}

// ReduceEps compacts a triplet list, retaining exactly the entries whose
// value is strictly less than eps, in their original order. It returns the
// retained count.
//
// The outputs must be at least as long as the input; entries past the
// returned count are untouched.
//
// Errors: ErrBadShape if the parallel slices disagree in length or the
// outputs are shorter than the input.
func ReduceEps[T sparse.Float, I sparse.Index](data []T, colInd, rowInd []I, sdata []T, scolInd, srowInd []I, eps T) (int, error) {
	if err := validateEpsShapes(len(data), len(colInd), len(rowInd), len(sdata), len(scolInd), len(srowInd)); err != nil {
		return 0, err
	}

	j := 0
	for r := range data {
		if data[r] < eps {
			sdata[j] = data[r]
			scolInd[j] = colInd[r]
			srowInd[j] = rowInd[r]
			j++
		}
	}

	return j, nil
}

// ReduceEpsCmp is ReduceEps with the threshold test applied to a sibling
// comparison array cmp instead of the copied values: entry r is retained iff
// cmp[r] < eps. Useful when filtering affinities by their pre-kernel
// distances.
func ReduceEpsCmp[T sparse.Float, I sparse.Index](data []T, colInd, rowInd []I, sdata []T, scolInd, srowInd []I, cmp []T, eps T) (int, error) {
	if err := validateEpsShapes(len(data), len(colInd), len(rowInd), len(sdata), len(scolInd), len(srowInd)); err != nil {
		return 0, err
	}
	if len(cmp) < len(data) {
		return 0, fmt.Errorf("cmp shorter than data: %w", ErrBadShape)
	}

	j := 0
	for r := range data {
		if cmp[r] < eps {
			sdata[j] = data[r]
			scolInd[j] = colInd[r]
			srowInd[j] = rowInd[r]
			j++
		}
	}

	return j, nil
}

// validateEpsShapes checks the parallel-slice contract of the eps variants.
func validateEpsShapes(nd, nc, nr, snd, snc, snr int) error {
	if nc < nd || nr < nd {
		return fmt.Errorf("colInd/rowInd shorter than data: %w", ErrBadShape)
	}
	if snd < nd || snc < nd || snr < nd {
		return fmt.Errorf("outputs shorter than input: %w", ErrBadShape)
	}

	return nil
}
