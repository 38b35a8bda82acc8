package gemm

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

// Gemm64 computes C <- alpha*A*Bᵀ + beta*C in double precision.
//
// a holds A in row-major order with n1 rows and m1 columns, b holds B with
// n2 rows and m1 columns, and c holds C with n1 rows and n2 columns. The
// leading dimensions are m1, m1 and n2 respectively.
func Gemm64(alpha float64, a []float64, n1, m1 int, b []float64, n2 int, beta float64, c []float64) {
	blas64.Gemm(blas.NoTrans, blas.Trans, alpha,
		blas64.General{Rows: n1, Cols: m1, Stride: m1, Data: a},
		blas64.General{Rows: n2, Cols: m1, Stride: m1, Data: b},
		beta,
		blas64.General{Rows: n1, Cols: n2, Stride: n2, Data: c},
	)
}

// Gemm32 computes C <- alpha*A*Bᵀ + beta*C in single precision.
// Shapes and leading dimensions are as for Gemm64.
func Gemm32(alpha float32, a []float32, n1, m1 int, b []float32, n2 int, beta float32, c []float32) {
	blas32.Gemm(blas.NoTrans, blas.Trans, alpha,
		blas32.General{Rows: n1, Cols: m1, Stride: m1, Data: a},
		blas32.General{Rows: n2, Cols: m1, Stride: m1, Data: b},
		beta,
		blas32.General{Rows: n1, Cols: n2, Stride: n2, Data: c},
	)
}

// CrossTerm64 computes C <- -2*A*Bᵀ, the cross term of the squared Euclidean
// distance expansion, in double precision.
func CrossTerm64(a []float64, n1, m1 int, b []float64, n2 int, c []float64) {
	Gemm64(-2, a, n1, m1, b, n2, 0, c)
}

// CrossTerm32 computes C <- -2*A*Bᵀ in single precision.
func CrossTerm32(a []float32, n1, m1 int, b []float32, n2 int, c []float32) {
	Gemm32(-2, a, n1, m1, b, n2, 0, c)
}
