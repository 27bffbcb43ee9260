// Package embed provides distance-preserving low-dimensional embeddings for
// visualizing high-dimensional datasets, backed by the go-tsne implementation
// of t-distributed Stochastic Neighbor Embedding.
package embed

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/mat"
)

type options struct {
	perplexity   float64
	learningRate float64
	maxIter      int
	verbose      bool
}

// Option configures the embedding.
type Option func(*options)

// WithPerplexity sets the t-SNE perplexity (default 30). Rule of thumb:
// keep it well below the number of points.
func WithPerplexity(p float64) Option {
	return func(o *options) {
		if p > 0 {
			o.perplexity = p
		}
	}
}

// WithLearningRate sets the gradient-descent learning rate (default 300).
func WithLearningRate(lr float64) Option {
	return func(o *options) {
		if lr > 0 {
			o.learningRate = lr
		}
	}
}

// WithMaxIter sets the number of gradient-descent iterations (default 300).
func WithMaxIter(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIter = n
		}
	}
}

// WithVerbose enables go-tsne's progress output.
func WithVerbose(v bool) Option {
	return func(o *options) {
		o.verbose = v
	}
}

// TSNE embeds points into outDims dimensions (typically 2 for plotting).
// The returned slice has one row per input point, in input order.
//
// The embedding is stochastic; it preserves neighborhoods, not distances or
// cluster geometry, so use it for visualization rather than as input to
// quantitative analysis.
func TSNE(points [][]float64, outDims int, optFns ...Option) ([][]float64, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("embed: points must not be empty")
	}

	if outDims < 1 {
		return nil, fmt.Errorf("embed: output dimensionality must be positive, got %d", outDims)
	}

	dim := len(points[0])
	if dim == 0 {
		return nil, fmt.Errorf("embed: points must have at least one dimension")
	}

	o := options{
		perplexity:   30,
		learningRate: 300,
		maxIter:      300,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	n := len(points)
	flat := make([]float64, 0, n*dim)
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("embed: row %d has %d dimensions, want %d", i, len(p), dim)
		}
		flat = append(flat, p...)
	}

	t := tsne.NewTSNE(outDims, o.perplexity, o.learningRate, o.maxIter, o.verbose)
	t.EmbedData(mat.NewDense(n, dim, flat), nil)

	rows, cols := t.Y.Dims()
	embedded := make([][]float64, rows)
	for i := range embedded {
		embedded[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			embedded[i][j] = t.Y.At(i, j)
		}
	}

	return embedded, nil
}
