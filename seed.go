package clusterkit

import (
	"math/rand"

	"github.com/hupe1980/clusterkit/distance"
)

// initialCentroids produces the k starting centroids, either from explicit
// seeds or by running the configured seeding policy.
func initialCentroids(points [][]float64, k, dim int, o options) ([][]float64, error) {
	if o.initial != nil {
		return copySeeds(o.initial, k, dim)
	}

	switch o.initPolicy {
	case InitRandom:
		return seedRandom(points, k, dim, o.rng), nil
	case InitKMeansPlusPlus:
		return seedWeighted(points, k, dim, o.rng), nil
	default:
		return nil, invalidConfigf("unknown init policy: %d", o.initPolicy)
	}
}

func copySeeds(initial [][]float64, k, dim int) ([][]float64, error) {
	if len(initial) != k {
		return nil, invalidConfigf("got %d initial centroids, want %d", len(initial), k)
	}

	centroids := newMatrix(k, dim)
	for i, c := range initial {
		if len(c) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(c), Row: i}
		}
		copy(centroids[i], c)
	}

	return centroids, nil
}

// seedRandom draws k distinct dataset rows uniformly at random.
func seedRandom(points [][]float64, k, dim int, rng *rand.Rand) [][]float64 {
	centroids := newMatrix(k, dim)

	perm := rng.Perm(len(points))
	for i := 0; i < k; i++ {
		copy(centroids[i], points[perm[i]])
	}

	return centroids
}

// seedWeighted implements k-means++ seeding: the first centroid is uniform,
// each subsequent one is sampled with probability proportional to its squared
// distance to the nearest already-chosen centroid.
func seedWeighted(points [][]float64, k, dim int, rng *rand.Rand) [][]float64 {
	centroids := newMatrix(k, dim)

	copy(centroids[0], points[rng.Intn(len(points))])

	// minDistSq tracks each point's squared distance to its nearest chosen
	// centroid.
	minDistSq := make([]float64, len(points))
	var sum float64
	for i, p := range points {
		d := distance.SquaredL2(p, centroids[0])
		minDistSq[i] = d
		sum += d
	}

	for c := 1; c < k; c++ {
		if sum == 0 {
			// All remaining mass is on already-chosen positions.
			copy(centroids[c], points[rng.Intn(len(points))])
			continue
		}

		// Sample proportional to squared distance.
		target := rng.Float64() * sum
		var cumsum float64
		chosen := 0
		for i, d := range minDistSq {
			cumsum += d
			if cumsum >= target {
				chosen = i
				break
			}
		}
		copy(centroids[c], points[chosen])

		// Update minDistSq incrementally (O(n) per centroid).
		sum = 0
		for i, p := range points {
			d := distance.SquaredL2(p, centroids[c])
			if d < minDistSq[i] {
				minDistSq[i] = d
			}
			sum += minDistSq[i]
		}
	}

	return centroids
}
