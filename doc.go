// Package clusterkit provides a small clustering toolkit for Go, built
// around a reference implementation of Lloyd's k-means algorithm.
//
// # Quick Start
//
//	ctx := context.Background()
//	points := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}
//
//	result, err := clusterkit.Solve(ctx, points, 2,
//	    clusterkit.WithRand(rand.New(rand.NewSource(42))),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Labels)    // cluster index per point
//	fmt.Println(result.Centroids) // k mean vectors
//	fmt.Println(result.Converged) // false means the iteration cap was hit
//
// New points are assigned to existing clusters with Assign or Result.Predict:
//
//	cluster, _ := result.Predict([]float64{3, 4})
//
// # Initialization
//
// Two seeding policies are available via WithInit:
//
//   - InitKMeansPlusPlus (default): weighted seeding that biases centroid
//     selection toward points far from already-chosen centroids. Less
//     sensitive to unlucky starts.
//   - InitRandom: k distinct points drawn uniformly from the dataset.
//
// Runs are reproducible when a seeded rand.Rand is injected with WithRand.
// WithInitialCentroids bypasses seeding entirely for fully scripted starts.
//
// # Termination
//
// The assign/update loop stops when assignments stabilize, when total
// centroid movement drops below WithTolerance, or when WithMaxIterations is
// reached. Hitting the cap is not an error; Result.Converged reports which
// way the run ended so callers can re-run with a higher cap or accept the
// approximate result.
//
// # Sibling packages
//
//   - distance: shared metric catalog (squared L2, Euclidean, cosine)
//   - embed: t-SNE dimensionality reduction (danaugrs/go-tsne)
//   - sentiment: VADER lexicon polarity scoring (jonreiter/govader)
//   - wordcloud: word-frequency rasterization (psykhi/wordclouds)
//   - plot: cluster scatter plots rendered to HTML (go-echarts)
package clusterkit
