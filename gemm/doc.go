// Package gemm is a thin adapter over the BLAS general matrix-matrix
// multiply, configured for the one shape the distance pipeline needs:
//
//	C <- alpha*A*Bᵀ + beta*C
//
// for row-major matrices A (n1 x m1), B (n2 x m1) and C (n1 x n2), with
// leading dimensions m1, m1 and n2. Gemm32 and Gemm64 select the single- and
// double-precision entry points; CrossTerm32 and CrossTerm64 fix
// alpha = -2, beta = 0, producing the cross term of the squared Euclidean
// distance expansion
//
//	‖a−b‖² = ‖a‖² + ‖b‖² − 2·a·b
//
// to which the caller adds the row and column norm-squared terms.
//
// Shape conformance is the caller's responsibility; the adapter performs no
// validation beyond what the underlying BLAS implementation enforces.
package gemm
