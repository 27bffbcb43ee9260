package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 32},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Mixed", []float64{1, -1, 2}, []float64{1, 1, -2}, -4},
		{"Empty", []float64{}, []float64{}, 0},
		{"Single", []float64{2}, []float64{3}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dot(tt.a, tt.b), 1e-12)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2}, []float64{4, 6}, 25},
		{"Identical", []float64{3, 3, 3}, []float64{3, 3, 3}, 0},
		{"Negative", []float64{-1, -1}, []float64{1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-12)
		})
	}
}

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5, Euclidean([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.InDelta(t, 0, Euclidean([]float64{1, 1}, []float64{1, 1}), 1e-12)
}

func TestCosine(t *testing.T) {
	// Parallel vectors -> distance 0
	assert.InDelta(t, 0, Cosine([]float64{1, 2}, []float64{2, 4}), 1e-12)

	// Orthogonal vectors -> distance 1
	assert.InDelta(t, 1, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)

	// Opposite vectors -> distance 2
	assert.InDelta(t, 2, Cosine([]float64{1, 0}, []float64{-1, 0}), 1e-12)

	// Zero vector -> defined as 1
	assert.InDelta(t, 1, Cosine([]float64{0, 0}, []float64{1, 1}), 1e-12)
}

func TestProvider(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}

	fn, err := Provider(MetricL2)
	require.NoError(t, err)
	assert.InDelta(t, 25, fn(a, b), 1e-12)

	fn, err = Provider(MetricEuclidean)
	require.NoError(t, err)
	assert.InDelta(t, 5, fn(a, b), 1e-12)

	fn, err = Provider(MetricCosine)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(fn(a, b)))

	_, err = Provider(Metric(999))
	assert.Error(t, err)
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "L2", MetricL2.String())
	assert.Equal(t, "Euclidean", MetricEuclidean.String())
	assert.Equal(t, "Cosine", MetricCosine.String())
	assert.Contains(t, Metric(999).String(), "Unknown")
}
