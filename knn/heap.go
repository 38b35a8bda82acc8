package knn

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/manifold/sparse"
)

// pair is one (squared distance, absolute column) neighbor candidate.
// Ordering is the pair order: distance first, column index as tie-break.
type pair[T sparse.Float, I sparse.Index] struct {
	dist T
	col  I
}

// pairLess reports whether a orders before b under the (dist, col) pair
// order. The tie-break on col is what keeps the kernels deterministic when
// several candidates share a distance.
func pairLess[T sparse.Float, I sparse.Index](a, b pair[T, I]) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.col < b.col
}

// siftDown restores the max-heap property of h below index i.
// The root h[0] holds the pair-order maximum: the current worst-of-best.
func siftDown[T sparse.Float, I sparse.Index](h []pair[T, I], i int) {
	n := len(h)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		largest := l
		if r := l + 1; r < n && pairLess(h[largest], h[r]) {
			largest = r
		}
		if !pairLess(h[i], h[largest]) {
			return
		}
		h[i], h[largest] = h[largest], h[i]
		i = largest
	}
}

// heapify builds the max-heap in place.
func heapify[T sparse.Float, I sparse.Index](h []pair[T, I]) {
	for i := len(h)/2 - 1; i >= 0; i-- {
		siftDown(h, i)
	}
}

// PushHeap folds one squared-distance block into the per-row best-k lists.
//
// dist2 is an n x m block: dist2[r*m+c] is the squared distance from query
// row r to candidate column offset+c. data and colInd are the accumulated
// n x k per-row blocks (sparse per-row block layout); offset is the absolute
// column index of the block's first candidate and tells PushHeap how many
// accumulated entries each row already carries (min(k, offset)).
//
// After the call, row r's slots hold the k pair-order smallest
// (distance, column) candidates seen across all previous blocks and this
// one, in heap order (unsorted). Feed the blocks in column order, then call
// FinalizeHeap once to sort and enforce the self-edge invariant.
//
// Algorithm, per row:
//  1. Seed the k-slot heap with the min(k, offset) accumulated entries,
//     then with leading block candidates until full; heapify once full.
//  2. For each remaining candidate with d < current worst-of-best, replace
//     the root and sift down.
//  3. Write the heap back to data/colInd in heap order.
//
// Rows fan out over Options.Workers goroutines; each worker owns a disjoint
// k-slot scratch.
//
// Complexity:
//
//   - Time:  O(n*m*log k)
//   - Space: O(workers*k) scratch
//
// Errors:
//
//   - ErrBadShape if n, m or k is non-positive, offset is negative, or the
//     slices are shorter than n*m / n*k.
func PushHeap[T sparse.Float, I sparse.Index](dist2 []T, n, m int, data []T, colInd []I, offset, k int, opts ...Option) error {
	// 1) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the block and accumulator shapes.
	if n <= 0 || m <= 0 || k <= 0 || offset < 0 {
		return fmt.Errorf("n=%d m=%d k=%d offset=%d: %w", n, m, k, offset, ErrBadShape)
	}
	if len(dist2) < n*m {
		return fmt.Errorf("dist2 len %d < n*m=%d: %w", len(dist2), n*m, ErrBadShape)
	}
	if len(data) < n*k || len(colInd) < n*k {
		return fmt.Errorf("data/colInd len %d/%d < n*k=%d: %w", len(data), len(colInd), n*k, ErrBadShape)
	}

	// 3) Accumulated entries per row: everything before this block, capped
	//    at the heap capacity.
	seed := min(k, offset)

	// 4) Fan rows out over workers; each chunk owns one k-slot scratch heap.
	return forEachRange(n, cfg.Workers, func(lo, hi int) error {
		scratch := make([]pair[T, I], 0, k)
		for r := lo; r < hi; r++ {
			rm := r * m
			rk := r * k
			h := scratch[:0]

			// 4a) Seed from the accumulated best-so-far, then from the block.
			for i := 0; i < seed; i++ {
				h = append(h, pair[T, I]{dist: data[rk+i], col: colInd[rk+i]})
			}
			c := 0
			for ; len(h) < k && c < m; c++ {
				h = append(h, pair[T, I]{dist: dist2[rm+c], col: I(offset + c)})
			}
			if len(h) == k {
				heapify(h)
			}

			// 4b) Stream the rest of the block through the full heap.
			for ; c < m; c++ {
				d := dist2[rm+c]
				if d < h[0].dist {
					h[0] = pair[T, I]{dist: d, col: I(offset + c)}
					siftDown(h, 0)
				}
			}

			// 4c) Write back in heap order.
			for i, p := range h {
				data[rk+i] = p.dist
				colInd[rk+i] = p.col
			}
		}

		return nil
	})
}

// FinalizeHeap sorts each accumulated row ascending by (distance, column)
// and enforces the self-edge invariant: row r's first entry must be
// (0, r+offset). If the nearest neighbor is not the row itself, a synthetic
// zero-distance self edge is prepended and the farthest neighbor dropped, so
// every row keeps exactly k entries.
//
// data and colInd hold len(data)/k rows in the per-row block layout; offset
// is the absolute index of row 0 (the same offset handed to PushHeap for the
// query rows).
//
// Rows fan out over Options.Workers goroutines with disjoint k-slot
// scratches.
//
// Complexity:
//
//   - Time:  O(rows * k log k)
//   - Space: O(workers*k) scratch
//
// Errors:
//
//   - ErrBadShape     if k is non-positive or len(colInd) < len(data).
//   - ErrRowUnderflow if a row keeps fewer than k entries, naming the row.
//     That means the self column appeared more than once upstream; the row
//     content is left partially written and must be considered invalid.
func FinalizeHeap[T sparse.Float, I sparse.Index](data []T, colInd []I, offset, k int, opts ...Option) error {
	// 1) Apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the block shape.
	if k <= 0 || offset < 0 {
		return fmt.Errorf("k=%d offset=%d: %w", k, offset, ErrBadShape)
	}
	if len(colInd) < len(data) || len(data)%k != 0 {
		return fmt.Errorf("data len %d, colInd len %d, k=%d: %w", len(data), len(colInd), k, ErrBadShape)
	}
	rows := len(data) / k

	// 3) Sort and rewrite each row.
	return forEachRange(rows, cfg.Workers, func(lo, hi int) error {
		scratch := make([]pair[T, I], k)
		for r := lo; r < hi; r++ {
			rk := r * k
			self := I(r + offset)

			// 3a) Copy the heap-ordered row out and sort it ascending.
			for i := 0; i < k; i++ {
				scratch[i] = pair[T, I]{dist: data[rk+i], col: colInd[rk+i]}
			}
			sort.Slice(scratch, func(i, j int) bool { return pairLess(scratch[i], scratch[j]) })

			// 3b) The first neighbor must be the row itself; synthesize the
			//     self edge when the heap never saw it (or saw it beaten).
			c := 0
			if scratch[0].col != self {
				data[rk] = 0
				colInd[rk] = self
				c = 1
			}

			// 3c) Keep neighbors in ascending order, skipping any non-leading
			//     occurrence of the self column, until the row is full again.
			for _, p := range scratch {
				if p.col != self || c == 0 {
					data[rk+c] = p.dist
					colInd[rk+c] = p.col
					c++
					if c == k {
						break
					}
				}
			}
			if c != k {
				return fmt.Errorf("row %d kept %d of %d neighbors: %w", r+offset, c, k, ErrRowUnderflow)
			}
		}

		return nil
	})
}
