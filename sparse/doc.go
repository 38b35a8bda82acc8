// Package sparse defines the array contracts shared by the manifold kernels
// and the CSR subset selector.
//
// The sparse package provides:
//
//   - Float and Index constraints shared by every generic kernel in the
//     module (knn, kernel, pipeline).
//   - The COO-like triplet and CSR shape contracts the kernels operate on.
//   - SelectSubset for restricting a CSR graph to a chosen row subset with
//     column renumbering.
//
// Representations:
//
//   - COO-like triplets: three parallel slices (data, colInd, rowInd) of
//     equal logical length; entry i denotes an edge (rowInd[i], colInd[i])
//     with value data[i]. Entries of a row are contiguous and, after the kNN
//     finalizer, sorted by ascending value.
//   - Per-row blocks: data[r*k+i] and colInd[r*k+i] hold the i-th of k
//     neighbors of row r; the row index is implicit in the stride k.
//   - CSR: data[nnz], colInd[nnz], rowPtr[nrows+1] with
//     rowPtr[r] <= rowPtr[r+1] and rowPtr[nrows] == nnz; the columns of row
//     r occupy [rowPtr[r], rowPtr[r+1]).
//
// All buffers are caller-owned. Kernels write in place or into
// caller-allocated outputs; scratch arrays live only for a single call.
package sparse
