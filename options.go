package clusterkit

import (
	"math/rand"
)

// InitPolicy selects how the initial centroids are seeded.
type InitPolicy int

const (
	// InitKMeansPlusPlus picks the first centroid uniformly at random and
	// each subsequent centroid with probability proportional to its squared
	// distance to the nearest already-chosen centroid (weighted seeding).
	// Recommended default: much less sensitive to poor starting positions.
	InitKMeansPlusPlus InitPolicy = iota

	// InitRandom draws k distinct points uniformly at random from the
	// dataset as the initial centroids.
	InitRandom
)

func (p InitPolicy) String() string {
	switch p {
	case InitKMeansPlusPlus:
		return "kmeans++"
	case InitRandom:
		return "random"
	default:
		return "unknown"
	}
}

const defaultMaxIterations = 100

type options struct {
	maxIterations int
	tolerance     float64
	initPolicy    InitPolicy
	rng           *rand.Rand
	initial       [][]float64
	logger        *Logger
}

// Option configures Solve behavior.
type Option func(*options)

// WithMaxIterations bounds the assign/update loop regardless of convergence.
// Values <= 0 are ignored and the default of 100 is kept.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

// WithTolerance enables centroid-movement termination: the loop stops once
// the total squared distance between old and new centroid positions in one
// update step falls below tol. Zero (the default) disables the check, so
// termination is by assignment stability or the iteration cap only.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithInit selects the centroid seeding policy.
func WithInit(p InitPolicy) Option {
	return func(o *options) {
		o.initPolicy = p
	}
}

// WithRand injects the random source used for centroid seeding, making runs
// reproducible:
//
//	clusterkit.Solve(ctx, points, k, clusterkit.WithRand(rand.New(rand.NewSource(42))))
//
// When omitted, a time-seeded source is used and runs are not reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithInitialCentroids supplies explicit initial centroids, bypassing the
// seeding policy entirely. The slice must contain exactly k vectors of the
// dataset's dimensionality; the vectors are copied before use.
//
// Useful for scripted comparisons and for warm-starting from a previous
// Result's centroids.
func WithInitialCentroids(centroids [][]float64) Option {
	return func(o *options) {
		o.initial = centroids
	}
}

// WithLogger configures structured logging for the solve.
// Pass nil to keep logging disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxIterations: defaultMaxIterations,
		initPolicy:    InitKMeansPlusPlus,
		logger:        NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
