// Package report formats throughput tables into comparison tables.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/weiihann/ycsbplot/results"
)

// Generate writes a markdown table with one row per filesystem and one
// column per workload.
func Generate(w io.Writer, table results.Table) error {
	if len(table) == 0 {
		return fmt.Errorf("no results to report")
	}

	labels := table.Labels()
	workloads := table.Workloads()

	fmt.Fprintln(w, "## YCSB Throughput (Mops/s)")
	fmt.Fprintln(w)

	// Table header.
	header := append([]string{"Filesystem"}, workloads...)
	header = append(header, "Best")

	fmt.Fprintln(w, "| "+strings.Join(header, " | ")+" |")
	fmt.Fprintln(w, "|"+strings.Repeat("--------|", len(header)))

	for _, label := range labels {
		cells := []string{label}

		for _, x := range workloads {
			cells = append(cells, formatMops(table.Lookup(label, x)))
		}

		cells = append(cells, bestWorkload(table, label))

		fmt.Fprintln(w, "| "+strings.Join(cells, " | ")+" |")
	}

	fmt.Fprintln(w)

	// Per-workload winners.
	fmt.Fprintln(w, "| Workload | Fastest | Speedup |")
	fmt.Fprintln(w, "|----------|---------|---------|")

	for _, x := range workloads {
		fastest, speedup := fastestOn(table, x)
		fmt.Fprintf(w, "| %s | %s | %.2fx |\n", x, fastest, speedup)
	}

	return nil
}

func formatMops(y float64, ok bool) string {
	if !ok {
		return "-"
	}

	return fmt.Sprintf("%.3f", y)
}

func bestWorkload(table results.Table, label string) string {
	best := ""
	bestY := -1.0

	for _, r := range table {
		if r.Label == label && r.Y > bestY {
			best, bestY = r.X, r.Y
		}
	}

	return best
}

// fastestOn returns the label with the highest throughput on workload x and
// its speedup over the slowest label on x.
func fastestOn(table results.Table, x string) (string, float64) {
	fastest := ""
	maxY, minY := -1.0, -1.0

	for _, r := range table {
		if r.X != x {
			continue
		}

		if r.Y > maxY {
			fastest, maxY = r.Label, r.Y
		}
		if minY < 0 || r.Y < minY {
			minY = r.Y
		}
	}

	if minY <= 0 {
		return fastest, 1.0
	}

	return fastest, maxY / minY
}
