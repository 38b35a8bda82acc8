package sparse

import "fmt"

// SelectSubset restricts a CSR graph in place to the rows listed in selected
// and, within each kept row, to the columns that are themselves selected.
// Columns are renumbered to their position in the selection list, so the
// result is a valid CSR graph over len(selected) nodes.
//
// selected must be strictly increasing. The input arrays are overwritten:
// surviving entries are compacted into the prefix of data/colInd, and
// rowPtr[0..len(selected)] is rewritten to delimit the new rows (rowPtr[0]
// is left untouched and must be 0 on entry). The returned value is the new
// nonzero count.
//
// A scratch index map of size nrows is allocated for the duration of the
// call: indexMap[old] == new position for selected rows, -1 otherwise.
//
// Complexity:
//
//   - Time:  O(nrows + nnz)
//   - Space: O(nrows) scratch
//
// Errors:
//
//   - ErrBadShape   if rowPtr has fewer than two entries, data/colInd are
//     shorter than rowPtr[nrows], or selected is not strictly increasing.
//   - ErrIndexRange if a selected row or a stored column index is outside
//     [0, nrows).
func SelectSubset[T Float, I Index](data []T, colInd []I, rowPtr []I, selected []I) (I, error) {
	// 1) Validate the CSR shape contract.
	if len(rowPtr) < 2 {
		return 0, fmt.Errorf("rowPtr needs nrows+1 entries: %w", ErrBadShape)
	}
	nrows := len(rowPtr) - 1
	nnz := int(rowPtr[nrows])
	if len(data) < nnz || len(colInd) < nnz {
		return 0, fmt.Errorf("data/colInd shorter than rowPtr[%d]=%d: %w", nrows, nnz, ErrBadShape)
	}

	// 2) Build the old->new index map; -1 marks rows outside the selection.
	indexMap := make([]I, nrows)
	for i := range indexMap {
		indexMap[i] = -1
	}
	for i, r := range selected {
		if r < 0 || int(r) >= nrows {
			return 0, fmt.Errorf("selected row %d outside [0,%d): %w", r, nrows, ErrIndexRange)
		}
		if i > 0 && r <= selected[i-1] {
			return 0, fmt.Errorf("selected rows must be strictly increasing: %w", ErrBadShape)
		}
		indexMap[r] = I(i)
	}

	// 3) Walk the selected rows in order, compacting surviving entries into
	//    the prefix and rewriting rowPtr as we go. When the selection is an
	//    identity prefix, rowPtr[r] was already rewritten at step s-1; the
	//    original bound is the previous row's end, carried in prevEnd.
	var cnt I
	prevEnd := rowPtr[0]
	for s, r := range selected {
		start := rowPtr[r]
		if int(r) == s {
			start = prevEnd
		}
		end := rowPtr[r+1]
		for j := start; j < end; j++ {
			c := colInd[j]
			if c < 0 || int(c) >= nrows {
				return 0, fmt.Errorf("column %d of row %d outside [0,%d): %w", c, r, nrows, ErrIndexRange)
			}
			if indexMap[c] != -1 {
				data[cnt] = data[j]
				colInd[cnt] = indexMap[c]
				cnt++
			}
		}
		rowPtr[s+1] = cnt
		prevEnd = end
	}

	return cnt, nil
}
