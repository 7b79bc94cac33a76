// Package results locates YCSB result directories and aggregates the
// per-filesystem run logs they contain into a throughput table.
package results

import (
	"sort"

	"github.com/weiihann/ycsbplot/workload"
)

// Benchmark is the benchmark name attached to every row.
const Benchmark = "ycsb"

// Row is the throughput of one filesystem on one workload.
type Row struct {
	X         string  `json:"x"`
	Y         float64 `json:"y"`
	Label     string  `json:"label"`
	Benchmark string  `json:"benchmark"`
}

// Table holds rows in discovery order.
type Table []Row

// Columns lists the exported column names in order.
func Columns() []string {
	return []string{"x", "y", "label", "benchmark"}
}

// Labels returns the distinct row labels in first-seen order.
func (t Table) Labels() []string {
	return distinct(t, func(r Row) string { return r.Label })
}

// Workloads returns the distinct workload labels in A-F order. Labels that
// are not core workloads follow in first-seen order.
func (t Table) Workloads() []string {
	xs := distinct(t, func(r Row) string { return r.X })

	rank := make(map[string]int, len(workload.All()))
	for i, w := range workload.All() {
		rank[w.Label()] = i
	}

	order := func(x string) int {
		if i, ok := rank[x]; ok {
			return i
		}

		return len(rank)
	}

	sort.SliceStable(xs, func(i, j int) bool {
		return order(xs[i]) < order(xs[j])
	})

	return xs
}

// Lookup returns the throughput of label on workload x.
func (t Table) Lookup(label, x string) (float64, bool) {
	for _, r := range t {
		if r.Label == label && r.X == x {
			return r.Y, true
		}
	}

	return 0, false
}

func distinct(t Table, key func(Row) string) []string {
	seen := make(map[string]struct{}, len(t))
	out := make([]string, 0, len(t))

	for _, r := range t {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, k)
	}

	return out
}
