package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_KnownValues(t *testing.T) {
	s := Describe([]float64{1, 2, 3, 4, 5})

	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 3.0, s.Mean, 1e-12)
	assert.InDelta(t, 1.5811388300841898, s.Std, 1e-12)
	assert.InDelta(t, 1.0, s.Min, 1e-12)
	assert.InDelta(t, 2.0, s.Q25, 1e-12)
	assert.InDelta(t, 3.0, s.Median, 1e-12)
	assert.InDelta(t, 4.0, s.Q75, 1e-12)
	assert.InDelta(t, 5.0, s.Max, 1e-12)
	assert.InDelta(t, 0.0, s.Skew, 1e-12)
	assert.InDelta(t, -1.2, s.Kurtosis, 1e-12)
}

func TestDescribe_SkipsNaN(t *testing.T) {
	s := Describe([]float64{1, math.NaN(), 2, math.NaN(), 3})

	assert.Equal(t, 3, s.Count)
	assert.InDelta(t, 2.0, s.Mean, 1e-12)
}

func TestDescribe_SymmetricSkewIsZero(t *testing.T) {
	s := Describe([]float64{-3, -2, -1, 0, 1, 2, 3})
	assert.InDelta(t, 0.0, s.Skew, 1e-12)
}

func TestDescribe_RightTailSkewIsPositive(t *testing.T) {
	s := Describe([]float64{1, 2, 3, 4, 100})
	assert.Greater(t, s.Skew, 0.0)
}

func TestDescribe_Empty(t *testing.T) {
	s := Describe(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Median))
}

func TestDescribe_SmallSamples(t *testing.T) {
	// Moments that need more observations than available come back NaN.
	one := Describe([]float64{7})
	assert.True(t, math.IsNaN(one.Std))
	assert.InDelta(t, 7.0, one.Median, 1e-12)

	two := Describe([]float64{1, 2})
	assert.False(t, math.IsNaN(two.Std))
	assert.True(t, math.IsNaN(two.Skew))

	three := Describe([]float64{1, 2, 3})
	assert.False(t, math.IsNaN(three.Skew))
	assert.True(t, math.IsNaN(three.Kurtosis))
}

func TestPercentile_Interpolates(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.InDelta(t, 2.5, Percentile(sorted, 0.50), 1e-12)
	assert.InDelta(t, 1.75, Percentile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 3.25, Percentile(sorted, 0.75), 1e-12)
	assert.InDelta(t, 1.0, Percentile(sorted, 0), 1e-12)
	assert.InDelta(t, 4.0, Percentile(sorted, 1), 1e-12)
}

func TestPearson(t *testing.T) {
	assert.InDelta(t, 1.0, Pearson([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-12)
	assert.InDelta(t, -1.0, Pearson([]float64{1, 2, 3}, []float64{3, 2, 1}), 1e-12)
	assert.InDelta(t, 0.0, Pearson([]float64{1, 2, 3, 4}, []float64{1, -1, -1, 1}), 1e-12)
}

func TestPearson_PairwiseComplete(t *testing.T) {
	// The NaN rows drop out; what remains is perfectly correlated.
	x := []float64{1, 2, math.NaN(), 3, 4}
	y := []float64{2, 4, 100, math.NaN(), 8}
	assert.InDelta(t, 1.0, Pearson(x, y), 1e-12)
}

func TestPearson_DegenerateInput(t *testing.T) {
	assert.True(t, math.IsNaN(Pearson([]float64{1}, []float64{2})))
	assert.True(t, math.IsNaN(Pearson([]float64{5, 5, 5}, []float64{1, 2, 3})))
}

func TestSpearman_MonotoneNonlinear(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 4, 9, 16, 25}
	assert.InDelta(t, 1.0, Spearman(x, y), 1e-12)
}

func TestSpearman_TiesGetAverageRanks(t *testing.T) {
	r := ranks([]float64{10, 20, 20, 30})
	assert.Equal(t, []float64{1, 2.5, 2.5, 4}, r)
}

func TestMatrix_SymmetricUnitDiagonal(t *testing.T) {
	cols := [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{4, 3, 2, 1},
	}
	m := Matrix(cols, Pearson)
	require.Len(t, m, 3)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0, m[i][i], 1e-12)
		for j := 0; j < 3; j++ {
			assert.InDelta(t, m[j][i], m[i][j], 1e-12)
		}
	}
	assert.InDelta(t, 1.0, m[0][1], 1e-12)
	assert.InDelta(t, -1.0, m[0][2], 1e-12)
}
