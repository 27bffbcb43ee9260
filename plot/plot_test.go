package plot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clusterkit"
)

func testResult() ([][]float64, *clusterkit.Result) {
	points := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}
	result := &clusterkit.Result{
		Centroids:  [][]float64{{0, 0.5}, {10, 0.5}},
		Labels:     []int{0, 0, 1, 1},
		Converged:  true,
		Iterations: 2,
	}
	return points, result
}

func TestScatter(t *testing.T) {
	points, result := testResult()

	var buf bytes.Buffer
	err := Scatter(points, result, &buf,
		WithTitle("Test Clustering"),
		WithColors([]string{"#1f77b4", "#ff7f0e"}),
	)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Test Clustering")
	assert.Contains(t, html, "Cluster 0")
	assert.Contains(t, html, "Cluster 1")
	assert.Contains(t, html, "Centroids")
}

func TestScatter_Validation(t *testing.T) {
	points, result := testResult()

	var buf bytes.Buffer

	err := Scatter(points, nil, &buf)
	assert.Error(t, err)

	err = Scatter(points[:2], result, &buf)
	assert.Error(t, err)

	err = Scatter(nil, &clusterkit.Result{}, &buf)
	assert.Error(t, err)

	oneD := [][]float64{{1}, {2}}
	err = Scatter(oneD, &clusterkit.Result{
		Centroids: [][]float64{{1.5}},
		Labels:    []int{0, 0},
	}, &buf)
	assert.Error(t, err)
}
