// Package chart renders throughput tables as grouped bar charts.
package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/weiihann/ycsbplot/results"
)

// Options controls the rendered figure.
type Options struct {
	// Path is the output file. Its extension selects the format.
	Path   string
	Title  string
	XLabel string
	YLabel string
	Width  vg.Length
	Height vg.Length
}

// DefaultOptions returns the settings used for YCSB throughput figures.
func DefaultOptions(path string) Options {
	return Options{
		Path:   path,
		XLabel: "Workload",
		YLabel: "Throughput (Mops/s)",
		Width:  5 * vg.Inch,
		Height: 2.5 * vg.Inch,
	}
}

// Formats returns the supported output extensions.
func Formats() []string {
	return []string{"svg", "png", "pdf", "eps", "html"}
}

// Render draws table as bars grouped by workload, one series per label.
func Render(table results.Table, opts Options) error {
	if len(table) == 0 {
		return fmt.Errorf("no results to plot")
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")

	switch ext {
	case "html":
		return renderHTML(table, opts)
	case "svg", "png", "pdf", "eps":
		return renderImage(table, opts)
	default:
		return fmt.Errorf("unsupported chart format %q", ext)
	}
}

// series returns, for each label, its throughput on every workload. Missing
// pairs are reported through the ok slice.
func series(table results.Table) (labels, workloads []string, values [][]float64, ok [][]bool) {
	labels = table.Labels()
	workloads = table.Workloads()

	values = make([][]float64, len(labels))
	ok = make([][]bool, len(labels))

	for i, label := range labels {
		values[i] = make([]float64, len(workloads))
		ok[i] = make([]bool, len(workloads))

		for j, x := range workloads {
			values[i][j], ok[i][j] = table.Lookup(label, x)
		}
	}

	return labels, workloads, values, ok
}
