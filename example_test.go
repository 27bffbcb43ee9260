package clusterkit_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/clusterkit"
)

// ExampleSolve clusters four points into two groups from scripted seeds.
func ExampleSolve() {
	ctx := context.Background()

	points := [][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}}

	result, err := clusterkit.Solve(ctx, points, 2,
		clusterkit.WithInitialCentroids([][]float64{{0, 0}, {10, 0}}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Labels)
	fmt.Println(result.Converged)
	// Output:
	// [0 0 1 1]
	// true
}

// ExampleAssign shows nearest-centroid prediction for an unseen point.
func ExampleAssign() {
	centroids := [][]float64{{0, 0.5}, {10, 0.5}}

	cluster, err := clusterkit.Assign(centroids, []float64{3, 4})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(cluster)
	// Output: 0
}
