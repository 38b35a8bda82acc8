// Package manifold provides the numeric kernels for diffusion-style
// manifold learning: streaming k-nearest-neighbor selection, mutual-neighbor
// symmetrization, and self-tuning Gaussian affinity graphs in CSR form.
//
// 🚀 What is manifold?
//
//	A small, allocation-conscious kernel library that brings together:
//		• gemm/     — BLAS-backed A·Bᵀ products for squared-distance blocks
//		• knn/      — streaming bounded top-k heaps, row finalization,
//		              self-edge compaction and mutual-neighbor filtering
//		• kernel/   — self-tuning Gaussian affinities and symmetric
//		              D⁻¹WD⁻¹ normalization over CSR graphs
//		• sparse/   — CSR subset selection with column renumbering
//		• pipeline/ — the composed chain, point cloud in, normalized
//		              affinity graph out
//
// ✨ Why choose manifold?
//
//   - Caller-owned buffers – every kernel writes into slices you allocate,
//     so out-of-core and streaming callers stay in control of memory
//   - Generic over precision – float32 or float64 data, int32 or int64
//     indices, one implementation
//   - Explicit contracts – sentinel errors, no panics on data-dependent
//     conditions, documented complexity per operation
//
// The kernels compose in a fixed order. PushHeap accumulates the k nearest
// candidates per row across column blocks; FinalizeHeap sorts each row and
// pins the self edge first; Reduce drops the self edges; Mutual keeps only
// pairs that selected each other; SelfTuningGaussian turns distances into
// affinities scaled by each point's local neighborhood; Normalize makes the
// operator symmetric and row-balanced. pipeline.Build runs the whole chain
// for the common in-memory case.
//
// Quick example:
//
//	g, err := pipeline.Build(points, 8)
//	if err != nil { ... }
//	// g.Data, g.ColInd, g.RowPtr — CSR, ready for an eigensolver.
//
// Each subpackage documents its own shape contracts and error conditions.
package manifold
