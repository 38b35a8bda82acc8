package knn

import (
	"fmt"

	"github.com/katalvlaran/manifold/sparse"
)

// Mutual compacts a directed k-neighbor triplet list into the mutual-nearest
// edge list, in place. Entry (r, c, w) survives only when the reverse edge
// (c, r) is present within row c's k-neighborhood; both directions of a
// mutual pair are emitted, each with its own weight, so the result is a
// symmetric edge list. Self edges (c == r) are emitted with weight zero.
//
// The input must hold exactly k neighbors per row in row-contiguous order
// (the layout Reduce produces), with len(data) == rows*k. The surviving
// triplets are compacted into the prefix of data/colInd/rowInd; the emitted
// count is returned.
//
// The sweep is single-pass: when row r finds its reverse edge in row c's
// slice (c > r), the matched slot is marked in place with the encoding
// v -> -(v+1), which keeps the original value recoverable and a marked zero
// distinct from an unmarked zero. When the sweep later reaches that slot
// (now c < r and negative), the mark is consumed: the edge is emitted with
// the column restored. Running Mutual again on its own output is therefore a
// no-op — every mark was consumed by the first pass.
//
// Complexity: O(rows*k*k) time, no scratch.
//
// Errors: ErrBadShape if the slices disagree, len(data) is not a multiple
// of k, or a column index points past the last row's slice.
func Mutual[T sparse.Float, I sparse.Index](data []T, colInd, rowInd []I, k int) (int, error) {
	// 1) Validate the row-contiguous triplet shape.
	if k <= 0 {
		return 0, fmt.Errorf("k=%d: %w", k, ErrBadShape)
	}
	nr := len(data)
	if len(colInd) < nr || len(rowInd) < nr {
		return 0, fmt.Errorf("colInd/rowInd shorter than data: %w", ErrBadShape)
	}
	if nr%k != 0 {
		return 0, fmt.Errorf("len(data)=%d not a multiple of k=%d: %w", nr, k, ErrBadShape)
	}

	// 2) Single compacting sweep. j only ever trails r, so the prefix writes
	//    never clobber an unread entry; the only in-place mutation ahead of
	//    the cursor is the -(v+1) mark inside a later row's slice.
	j := 0
	for r := 0; r < nr; r++ {
		switch {
		case colInd[r] > rowInd[r]:
			// 2a) Forward direction: search row c's neighborhood for the
			//     reverse edge and mark it when found.
			c := colInd[r]
			base := int(c) * k
			if base+k > nr {
				return 0, fmt.Errorf("column %d has no row slice (rows=%d): %w", c, nr/k, ErrBadShape)
			}
			mc := -1
			for i := base; i < base+k; i++ {
				if colInd[i] == rowInd[r] {
					mc = i
					break
				}
			}
			if mc >= 0 {
				colInd[mc] = -(colInd[mc] + 1)
				data[j] = data[r]
				colInd[j] = colInd[r]
				rowInd[j] = rowInd[r]
				j++
			}
		case colInd[r] < rowInd[r]:
			// 2b) Reverse direction: emit only if the forward pass marked
			//     this slot, restoring the column index.
			if colInd[r] < 0 {
				data[j] = data[r]
				colInd[j] = -(colInd[r] + 1)
				rowInd[j] = rowInd[r]
				j++
			}
		default:
			// 2c) Self edge: keep with zero distance.
			data[j] = 0
			colInd[j] = colInd[r]
			rowInd[j] = rowInd[r]
			j++
		}
	}

	return j, nil
}
