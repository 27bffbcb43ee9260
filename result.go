package clusterkit

import (
	"math"

	"github.com/hupe1980/clusterkit/distance"
)

// Result is the terminal state of a solve: the final partition plus how the
// run ended. It is not modified by the solver after being returned.
type Result struct {
	// Centroids holds the k final cluster centers (k x d).
	Centroids [][]float64

	// Labels maps each input point's index to a cluster index in [0, k).
	// Labels[i] is the nearest centroid to point i under squared L2.
	Labels []int

	// Inertia is the within-cluster sum of squared distances (SSE) of the
	// final partition.
	Inertia float64

	// Iterations is the number of assign/update cycles performed, including
	// the final pass that detected stability.
	Iterations int

	// Converged reports whether the run stopped because assignments
	// stabilized or centroid movement fell below tolerance (true), or
	// because the iteration cap was reached (false).
	Converged bool
}

// Predict assigns a new point to the nearest of the result's centroids,
// using the same distance and tie-break rule as the assignment step.
// It does not mutate the result.
func (r *Result) Predict(point []float64) (int, error) {
	return Assign(r.Centroids, point)
}

// Assign returns the index of the centroid nearest to point under squared
// Euclidean distance, ties broken by lowest index. It is a pure function of
// its arguments.
func Assign(centroids [][]float64, point []float64) (int, error) {
	if len(centroids) == 0 {
		return -1, invalidConfigf("no centroids")
	}

	for i, c := range centroids {
		if len(c) != len(point) {
			return -1, &ErrDimensionMismatch{Expected: len(c), Actual: len(point), Row: i}
		}
	}

	best := 0
	minDist := math.Inf(1)

	for j, c := range centroids {
		if d := distance.SquaredL2(point, c); d < minDist {
			minDist = d
			best = j
		}
	}

	return best, nil
}
