// Package knn builds bounded k-nearest-neighbor lists from streaming
// squared-distance blocks and symmetrizes them into mutual-neighbor edge
// lists.
//
// The package provides four stages of the affinity-graph pipeline:
//
//   - PushHeap     — accumulate the per-row top-k (distance, column) pairs
//     over a sequence of column blocks, using a bounded max-heap per row.
//   - FinalizeHeap — sort each row ascending and enforce the "self is first
//     neighbor" invariant: row r always starts with (0, r+offset).
//   - Reduce / ReduceEps / ReduceEpsCmp — compact the per-row blocks by
//     dropping the leading self edge (stride variant) or by filtering on a
//     distance threshold (epsilon variants).
//   - Mutual       — keep only mutually-nearest pairs, marking matched slots
//     in place with the sign encoding v -> -(v+1) so the sweep needs no
//     auxiliary map and emits no duplicates.
//
// Layouts follow package sparse: PushHeap and FinalizeHeap use the per-row
// block layout (row implicit in the stride k); Reduce and Mutual use
// COO-like triplets.
//
// Determinism: the heap comparator orders pairs by (distance, column), so
// ties on distance resolve toward the smaller column index and the output is
// a deterministic function of the input, block partitioning included.
//
// Rows are independent; PushHeap and FinalizeHeap fan out over worker
// goroutines (WithWorkers, default runtime.NumCPU()), each worker owning a
// disjoint k-slot heap scratch.
package knn
