package pipeline

// Graph is a row-normalized affinity graph in CSR form, the end product of
// Build. Data[j] is the affinity of the edge (row, ColInd[j]) for j in
// [RowPtr[row], RowPtr[row+1]).
type Graph struct {
	Data   []float64 // normalized affinities, one per retained edge
	ColInd []int64   // column index per retained edge
	RowPtr []int64   // len nrows+1; RowPtr[nrows] == len(Data)
}

// Rows returns the number of nodes in the graph.
func (g *Graph) Rows() int { return len(g.RowPtr) - 1 }

// NNZ returns the number of retained directed edges.
func (g *Graph) NNZ() int { return len(g.Data) }

// At returns the affinity of edge (r, c), or 0 when the edge was not
// retained. Linear in the row length.
func (g *Graph) At(r, c int) float64 {
	for j := g.RowPtr[r]; j < g.RowPtr[r+1]; j++ {
		if g.ColInd[j] == int64(c) {
			return g.Data[j]
		}
	}

	return 0
}
