package knn_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/manifold/knn"
)

// benchmarkPushHeap runs PushHeap over one n x m block with k slots.
// The distance block is filled with deterministic pseudo-random values.
func benchmarkPushHeap(b *testing.B, n, m, k, workers int) {
	rng := rand.New(rand.NewSource(42))
	dist2 := make([]float64, n*m)
	for i := range dist2 {
		dist2[i] = rng.Float64()
	}
	data := make([]float64, n*k)
	colInd := make([]int64, n*k)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := knn.PushHeap(dist2, n, m, data, colInd, 0, k, knn.WithWorkers(workers)); err != nil {
			b.Fatalf("PushHeap failed: %v", err)
		}
	}
}

// BenchmarkPushHeap_1kx1k_Serial benchmarks a 1000x1000 block, k=16, one worker.
func BenchmarkPushHeap_1kx1k_Serial(b *testing.B) {
	benchmarkPushHeap(b, 1000, 1000, 16, 1)
}

// BenchmarkPushHeap_1kx1k_Parallel benchmarks the same block on 8 workers.
func BenchmarkPushHeap_1kx1k_Parallel(b *testing.B) {
	benchmarkPushHeap(b, 1000, 1000, 16, 8)
}

// BenchmarkMutual_10kx16 benchmarks the symmetrizer over a 10k-row triplet
// list with 16 neighbors per row.
func BenchmarkMutual_10kx16(b *testing.B) {
	const (
		n = 10000
		k = 16
	)
	rng := rand.New(rand.NewSource(7))
	baseData := make([]float64, n*k)
	baseCol := make([]int64, n*k)
	baseRow := make([]int64, n*k)
	for r := 0; r < n; r++ {
		for i := 0; i < k; i++ {
			baseData[r*k+i] = rng.Float64()
			baseCol[r*k+i] = int64(rng.Intn(n))
			baseRow[r*k+i] = int64(r)
		}
	}

	data := make([]float64, n*k)
	colInd := make([]int64, n*k)
	rowInd := make([]int64, n*k)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, baseData)
		copy(colInd, baseCol)
		copy(rowInd, baseRow)
		if _, err := knn.Mutual(data, colInd, rowInd, k); err != nil {
			b.Fatalf("Mutual failed: %v", err)
		}
	}
}
