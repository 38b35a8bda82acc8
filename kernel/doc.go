// Package kernel turns CSR distance graphs into normalized affinity graphs.
//
// Two transforms, both over the CSR layout of package sparse:
//
//   - SelfTuningGaussian — Zelnik-Manor/Perona affinities
//     exp(−d(r,c) / (σ_r·σ_c)), where the per-node scale σ_j² is the
//     farthest retained neighbor distance of node j. Distances in, values in
//     (0, 1] out.
//   - Normalize — symmetric degree normalization W -> D⁻¹·W·D⁻¹, forming
//     the Markov operator of the diffusion process.
//
// Both kernels write into a caller-owned output array, may alias it with the
// input, and handle degenerate denominators with a 1e-12 floor (zero scales
// fall back to exp(−d), zero degrees to the floored reciprocal).
//
// The passes over nonzeros are data-parallel and fan out over
// Options.Workers goroutines (default runtime.NumCPU()); a scratch row-index
// array of size nnz is materialized from rowPtr for the duration of each
// call.
package kernel
