package kernel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/manifold/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// csrAt finds the value at (r, c) in a CSR matrix, or 0 when absent.
func csrAt(data []float64, colInd, rowPtr []int64, r, c int) float64 {
	for j := rowPtr[r]; j < rowPtr[r+1]; j++ {
		if colInd[j] == int64(c) {
			return data[j]
		}
	}

	return 0
}

// TestSelfTuningGaussian_LocalScales checks the bandwidth arithmetic on a
// symmetric 2x2: both node scales resolve to 4, so the affinities are
// exp(-1/4) and exp(-1).
func TestSelfTuningGaussian_LocalScales(t *testing.T) {
	// row 0: (0,0)=1 (0,1)=4 ; row 1: (1,0)=4 (1,1)=1.
	data := []float64{1, 4, 4, 1}
	colInd := []int64{0, 1, 0, 1}
	rowPtr := []int64{0, 2, 4}
	sdist := make([]float64, 4)

	err := kernel.SelfTuningGaussian(sdist, data, colInd, rowPtr, kernel.WithWorkers(1))
	require.NoError(t, err)

	// Scales: ndist[0] = max(1,4) = 4, ndist[1] = max(4,1) = 4; den = 4.
	assert.InDelta(t, math.Exp(-1.0/4.0), sdist[0], 1e-9)
	assert.InDelta(t, math.Exp(-1.0), sdist[1], 1e-9)
	assert.InDelta(t, math.Exp(-1.0), sdist[2], 1e-9)
	assert.InDelta(t, math.Exp(-1.0/4.0), sdist[3], 1e-9)
}

// TestSelfTuningGaussian_SymmetricInOut: a symmetric distance CSR must come
// out as a symmetric affinity CSR, and every affinity must lie in (0, 1].
func TestSelfTuningGaussian_SymmetricInOut(t *testing.T) {
	// 3-node path graph with distances 2 and 8, self loops at 0.
	data := []float64{0, 2, 2, 0, 8, 8, 0}
	colInd := []int64{0, 1, 0, 1, 2, 1, 2}
	rowPtr := []int64{0, 2, 5, 7}
	sdist := make([]float64, len(data))

	err := kernel.SelfTuningGaussian(sdist, data, colInd, rowPtr)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			arc := csrAt(sdist, colInd, rowPtr, r, c)
			acr := csrAt(sdist, colInd, rowPtr, c, r)
			assert.InDelta(t, acr, arc, 1e-12, "affinity must be symmetric")
		}
	}
	for i, a := range sdist {
		assert.Greater(t, a, 0.0, "affinity %d must be positive", i)
		assert.LessOrEqual(t, a, 1.0, "affinity %d must not exceed 1", i)
	}
}

// TestSelfTuningGaussian_ZeroScaleFallback: when both incident scales are
// zero the denominator collapses and the kernel falls back to exp(-d).
func TestSelfTuningGaussian_ZeroScaleFallback(t *testing.T) {
	// Single node, single self loop at distance 0: scale 0, den 0.
	data := []float64{0}
	colInd := []int64{0}
	rowPtr := []int64{0, 1}
	sdist := make([]float64, 1)

	err := kernel.SelfTuningGaussian(sdist, data, colInd, rowPtr)
	require.NoError(t, err)

	assert.Equal(t, 1.0, sdist[0], "exp(-0) on the fallback branch")
}

// TestSelfTuningGaussian_AliasedOutput: sdist may be the data slice itself.
func TestSelfTuningGaussian_AliasedOutput(t *testing.T) {
	data := []float64{1, 4, 4, 1}
	colInd := []int64{0, 1, 0, 1}
	rowPtr := []int64{0, 2, 4}

	err := kernel.SelfTuningGaussian(data, data, colInd, rowPtr)
	require.NoError(t, err)

	assert.InDelta(t, math.Exp(-0.25), data[0], 1e-9)
}

// TestSelfTuningGaussian_Errors exercises the shape sentinels.
func TestSelfTuningGaussian_Errors(t *testing.T) {
	err := kernel.SelfTuningGaussian([]float64{0}, []float64{0}, []int64{0}, []int64{1})
	assert.ErrorIs(t, err, kernel.ErrBadShape, "rowPtr must carry nrows+1 entries")

	err = kernel.SelfTuningGaussian([]float64{0}, []float64{0}, []int64{5}, []int64{0, 1})
	assert.ErrorIs(t, err, kernel.ErrIndexRange, "column beyond nrows must error")
}
