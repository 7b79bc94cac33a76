package workload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoElapsedTime is returned when a log reports no elapsed time, so no
// throughput can be derived from it.
var ErrNoElapsedTime = errors.New("no elapsed time recorded")

var (
	finishedRe = regexp.MustCompile(`Finished (.+?) requests`)
	elapsedRe  = regexp.MustCompile(`Time elapsed: (.+?) us`)
)

// Stats holds the totals extracted from one run log.
type Stats struct {
	Requests  int64
	ElapsedUs float64
}

// Throughput returns requests per microsecond, i.e. Mops/s.
func (s Stats) Throughput() (float64, error) {
	if s.ElapsedUs == 0 {
		return 0, ErrNoElapsedTime
	}

	return float64(s.Requests) / s.ElapsedUs, nil
}

// Parse sums every "Finished N requests" and "Time elapsed: T us" match in r.
// Unrelated lines are ignored.
func Parse(r io.Reader) (Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, fmt.Errorf("read log: %w", err)
	}

	text := string(data)

	var stats Stats

	for _, m := range finishedRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.ParseInt(strings.TrimSpace(m[1]), 10, 64)
		if err != nil {
			return Stats{}, fmt.Errorf("parse request count %q: %w", m[1], err)
		}

		sum := stats.Requests + n
		if (n > 0 && sum < stats.Requests) || (n < 0 && sum > stats.Requests) {
			return Stats{}, fmt.Errorf("request count overflows at %q", m[1])
		}

		stats.Requests = sum
	}

	for _, m := range elapsedRe.FindAllStringSubmatch(text, -1) {
		us, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
		if err != nil {
			return Stats{}, fmt.Errorf("parse elapsed time %q: %w", m[1], err)
		}

		stats.ElapsedUs += us
	}

	return stats, nil
}

// ParseFile returns the throughput in Mops/s recorded by the log at path.
func ParseFile(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	stats, err := Parse(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	mops, err := stats.Throughput()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	return mops, nil
}
