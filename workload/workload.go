// Package workload describes the six core YCSB workloads and extracts
// throughput figures from the run logs a LevelDB YCSB driver writes for each
// of them.
package workload

import (
	"strings"
)

// Workload identifies one of the core YCSB workloads.
type Workload struct {
	Letter      string
	Description string
}

// All returns the core workloads in the order they are plotted.
func All() []Workload {
	return []Workload{
		{Letter: "a", Description: "update heavy (50% read, 50% update)"},
		{Letter: "b", Description: "read mostly (95% read, 5% update)"},
		{Letter: "c", Description: "read only"},
		{Letter: "d", Description: "read latest (95% read, 5% insert)"},
		{Letter: "e", Description: "short ranges (95% scan, 5% insert)"},
		{Letter: "f", Description: "read-modify-write"},
	}
}

// Label is the upper-case letter used on chart axes and in exports.
func (w Workload) Label() string {
	return strings.ToUpper(w.Letter)
}

// RunLog returns the name of the log file recording the run phase of w.
func (w Workload) RunLog() string {
	return w.Letter + "-run.log"
}
