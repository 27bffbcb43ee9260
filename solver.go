package clusterkit

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/hupe1980/clusterkit/distance"
)

// Solve partitions points into k clusters using Lloyd's algorithm.
//
// The loop alternates an assignment step (each point moves to its nearest
// centroid under squared Euclidean distance, ties broken by lowest cluster
// index) with an update step (each centroid becomes the componentwise mean
// of its points). It terminates when assignments stabilize, when total
// squared centroid movement in one update falls below WithTolerance, or when
// WithMaxIterations is reached. Hitting the cap is not an error; inspect
// Result.Converged.
//
// Empty clusters are reseeded to the point currently farthest from its
// assigned centroid (lowest point index on ties), so centroids never become
// undefined. A reseed suppresses the convergence checks for that iteration.
//
// The context is checked once per iteration; cancellation aborts the solve
// with ctx.Err().
func Solve(ctx context.Context, points [][]float64, k int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)

	dim, err := validate(points, k)
	if err != nil {
		return nil, err
	}

	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logger := o.logger.WithK(k).WithDimension(dim).WithCount(len(points))

	centroids, err := initialCentroids(points, k, dim, o)
	if err != nil {
		return nil, err
	}

	n := len(points)

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	sums := newMatrix(k, dim)
	counts := make([]int, k)
	mean := make([]float64, dim)

	iterations := 0
	converged := false

	for iterations < o.maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		iterations++

		// Assignment step
		changed := false
		for i, p := range points {
			best := nearest(centroids, p)
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}

		if !changed {
			converged = true
			break
		}

		// Update step
		for j := range sums {
			for d := range sums[j] {
				sums[j][d] = 0
			}
			counts[j] = 0
		}

		for i, p := range points {
			cluster := labels[i]
			for d, v := range p {
				sums[cluster][d] += v
			}
			counts[cluster]++
		}

		reseeded := false
		movement := 0.0

		for j := range centroids {
			if counts[j] == 0 {
				// Empty cluster: reseed to the point farthest from its
				// assigned centroid. Deterministic, so seeded runs stay
				// reproducible.
				idx := farthestPoint(points, centroids, labels)
				copy(centroids[j], points[idx])
				reseeded = true

				logger.DebugContext(ctx, "empty cluster reseeded",
					"cluster", j,
					"point", idx,
				)

				continue
			}

			scale := 1.0 / float64(counts[j])
			for d := range mean {
				mean[d] = sums[j][d] * scale
			}
			movement += distance.SquaredL2(centroids[j], mean)
			copy(centroids[j], mean)
		}

		logger.DebugContext(ctx, "iteration completed",
			"iteration", iterations,
			"movement", movement,
		)

		// A zero-movement update cannot change any future assignment, so the
		// configuration is already stable.
		if !reseeded && (movement == 0 || (o.tolerance > 0 && movement < o.tolerance)) {
			converged = true
			break
		}
	}

	inertia := 0.0
	for i, p := range points {
		inertia += distance.SquaredL2(p, centroids[labels[i]])
	}

	logger.InfoContext(ctx, "solve completed",
		"iterations", iterations,
		"converged", converged,
		"inertia", inertia,
	)

	return &Result{
		Centroids:  centroids,
		Labels:     labels,
		Inertia:    inertia,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}

// validate checks the dataset and cluster count, returning the shared
// dimensionality.
func validate(points [][]float64, k int) (int, error) {
	if len(points) == 0 {
		return 0, invalidConfigf("points must not be empty")
	}

	if k <= 0 {
		return 0, invalidConfigf("k must be positive, got %d", k)
	}

	if k > len(points) {
		return 0, invalidConfigf("k (%d) exceeds number of points (%d)", k, len(points))
	}

	dim := len(points[0])
	if dim == 0 {
		return 0, invalidConfigf("points must have at least one dimension")
	}

	for i, p := range points {
		if len(p) != dim {
			return 0, &ErrDimensionMismatch{Expected: dim, Actual: len(p), Row: i}
		}
	}

	return dim, nil
}

// nearest returns the index of the centroid closest to p under squared L2.
// The strict < over ascending indices makes ties resolve to the lowest
// cluster index.
func nearest(centroids [][]float64, p []float64) int {
	best := 0
	minDist := math.Inf(1)

	for j, c := range centroids {
		if d := distance.SquaredL2(p, c); d < minDist {
			minDist = d
			best = j
		}
	}

	return best
}

// farthestPoint returns the index of the point with the greatest squared
// distance to its assigned centroid (lowest index on ties).
func farthestPoint(points [][]float64, centroids [][]float64, labels []int) int {
	best := 0
	maxDist := -1.0

	for i, p := range points {
		if d := distance.SquaredL2(p, centroids[labels[i]]); d > maxDist {
			maxDist = d
			best = i
		}
	}

	return best
}

func newMatrix(rows, cols int) [][]float64 {
	backing := make([]float64, rows*cols)
	m := make([][]float64, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols]
	}
	return m
}
