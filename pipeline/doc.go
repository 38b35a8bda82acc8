// Package pipeline composes the manifold kernels into the full affinity
// graph construction:
//
//	sample blocks → squared distances (gemm cross term + norms)
//	             → streaming top-k heaps (knn.PushHeap)
//	             → sorted rows with self edge (knn.FinalizeHeap)
//	             → self edge dropped (knn.Reduce)
//	             → mutual-neighbor symmetrization (knn.Mutual)
//	             → CSR assembly
//	             → self-tuning Gaussian affinities (kernel.SelfTuningGaussian)
//	             → symmetric normalization (kernel.Normalize)
//
// Build runs the whole chain over an in-memory point cloud and returns the
// normalized affinity graph in CSR form, ready for eigen-decomposition by a
// downstream solver. The candidate axis is processed in column blocks
// (WithBlockSize) so distance blocks never exceed n x blockSize — the same
// streaming regime an out-of-core caller would use, driving PushHeap's
// offset path.
//
// The package is a convenience layer: every step is equally callable on its
// own with caller-owned buffers.
package pipeline
