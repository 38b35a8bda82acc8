package kernel_test

import (
	"testing"

	"github.com/katalvlaran/manifold/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_SymmetricDegrees checks D⁻¹·W·D⁻¹ on the 2x2 affinity with
// unit diagonals and 0.5 off-diagonals: column sums 1.5, reciprocals 2/3.
func TestNormalize_SymmetricDegrees(t *testing.T) {
	data := []float64{1, 0.5, 0.5, 1}
	colInd := []int64{0, 1, 0, 1}
	rowPtr := []int64{0, 2, 4}
	sdist := make([]float64, 4)

	err := kernel.Normalize(sdist, data, colInd, rowPtr, kernel.WithWorkers(1))
	require.NoError(t, err)

	r := 1.0 / 1.5
	assert.InDelta(t, 1.0*r*r, sdist[0], 1e-9, "diagonal scaled by both reciprocals")
	assert.InDelta(t, 0.5*r*r, sdist[1], 1e-9, "off-diagonal ≈ 0.222")
	assert.InDelta(t, 0.5*r*r, sdist[2], 1e-9)
	assert.InDelta(t, 1.0*r*r, sdist[3], 1e-9)
}

// TestNormalize_PreservesSymmetry: symmetric input, symmetric output, since
// both factors of every entry are the same pair of reciprocals.
func TestNormalize_PreservesSymmetry(t *testing.T) {
	// 3-node graph, unequal degrees.
	data := []float64{1, 0.2, 0.2, 1, 0.7, 0.7, 1}
	colInd := []int64{0, 1, 0, 1, 2, 1, 2}
	rowPtr := []int64{0, 2, 5, 7}
	sdist := make([]float64, len(data))

	err := kernel.Normalize(sdist, data, colInd, rowPtr)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.InDelta(t,
				csrAt(sdist, colInd, rowPtr, c, r),
				csrAt(sdist, colInd, rowPtr, r, c),
				1e-12)
		}
	}
}

// TestNormalize_ZeroDegreeFloor: a node with no mass keeps a finite
// reciprocal through the 1e-12 floor instead of dividing by zero.
func TestNormalize_ZeroDegreeFloor(t *testing.T) {
	// Node 1 has a single zero-weight loop: its degree is exactly 0.
	data := []float64{1, 0}
	colInd := []int64{0, 1}
	rowPtr := []int64{0, 1, 2}
	sdist := make([]float64, 2)

	err := kernel.Normalize(sdist, data, colInd, rowPtr)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, sdist[0], 1e-9, "unit degree leaves the entry almost unchanged")
	assert.Equal(t, 0.0, sdist[1], "zero entry stays zero, no NaN from the floored degree")
}

// TestNormalize_Errors exercises the shape sentinels.
func TestNormalize_Errors(t *testing.T) {
	err := kernel.Normalize([]float64{}, []float64{}, []int64{}, []int64{0})
	assert.ErrorIs(t, err, kernel.ErrBadShape)

	err = kernel.Normalize([]float64{0}, []float64{0}, []int64{-1}, []int64{0, 1})
	assert.ErrorIs(t, err, kernel.ErrIndexRange)
}
