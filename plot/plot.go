// Package plot renders clustering results as interactive scatter charts
// using go-echarts. Charts are written as self-contained HTML.
package plot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AvraamMavridis/randomcolor"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hupe1980/clusterkit"
)

type options struct {
	title  string
	colors []string
}

// Option configures the chart.
type Option func(*options)

// WithTitle sets the chart title (default "Clustering - Scatter Plot").
func WithTitle(title string) Option {
	return func(o *options) {
		if title != "" {
			o.title = title
		}
	}
}

// WithColors sets a fixed per-cluster color palette (hex strings, cycled
// when shorter than k). When omitted, each cluster gets a random color.
func WithColors(colors []string) Option {
	return func(o *options) {
		if len(colors) > 0 {
			o.colors = colors
		}
	}
}

// Scatter writes an HTML scatter chart of a 2-D clustering to w: one series
// per cluster plus a black centroid series. For higher-dimensional data the
// first two components are plotted (embed.TSNE produces suitable 2-D input);
// data with fewer than two dimensions is rejected.
func Scatter(points [][]float64, result *clusterkit.Result, w io.Writer, optFns ...Option) error {
	if result == nil {
		return fmt.Errorf("plot: result must not be nil")
	}

	if len(points) != len(result.Labels) {
		return fmt.Errorf("plot: got %d points for %d labels", len(points), len(result.Labels))
	}

	if len(points) == 0 {
		return fmt.Errorf("plot: points must not be empty")
	}

	if len(points[0]) < 2 {
		return fmt.Errorf("plot: points must have at least two dimensions, got %d", len(points[0]))
	}

	o := options{
		title: "Clustering - Scatter Plot",
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	es := charts.NewScatter()
	es.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: o.title}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: "{a}: {b}",
		}),
	)

	k := len(result.Centroids)
	series := make([][]opts.ScatterData, k)
	for i, p := range points {
		series[result.Labels[i]] = append(series[result.Labels[i]], opts.ScatterData{
			Name:  strconv.Itoa(i),
			Value: []float64{p[0], p[1]},
		})
	}

	for j, data := range series {
		es.AddSeries(fmt.Sprintf("Cluster %d", j), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: seriesColor(o.colors, j)}),
		)
	}

	dataCentroids := make([]opts.ScatterData, 0, k)
	for _, c := range result.Centroids {
		dataCentroids = append(dataCentroids, opts.ScatterData{
			Value:      []float64{c[0], c[1]},
			SymbolSize: 20,
		})
	}
	es.AddSeries("Centroids", dataCentroids,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "black"}),
	)

	return es.Render(w)
}

func seriesColor(palette []string, i int) string {
	if len(palette) > 0 {
		return palette[i%len(palette)]
	}
	return randomcolor.GetRandomColorInHex()
}
