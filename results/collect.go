package results

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/weiihann/ycsbplot/workload"
)

// DefaultSuite is the directory under the results root holding YCSB runs.
const DefaultSuite = "bench_leveldb_ycsb"

// SortedSubdirs returns the immediate subdirectories of dir sorted by name.
func SortedSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	dirs := make([]string, 0, len(entries))

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			// Follow links; dangling ones are not directories.
			info, err := os.Stat(path)
			isDir = err == nil && info.IsDir()
		}

		if isDir {
			dirs = append(dirs, path)
		}
	}

	sort.Strings(dirs)

	return dirs, nil
}

// LatestRun returns the most recent run directory under root. Run
// directories are named by timestamp, so the greatest name wins.
func LatestRun(root string) (string, error) {
	dirs, err := SortedSubdirs(root)
	if err != nil {
		return "", err
	}

	if len(dirs) == 0 {
		return "", fmt.Errorf("no runs found in %s", root)
	}

	return dirs[len(dirs)-1], nil
}

// Collect parses the run log of every workload for every filesystem
// directory under dir. Missing logs are skipped with a warning.
func Collect(ctx context.Context, logger *slog.Logger, dir string) (Table, error) {
	fsDirs, err := SortedSubdirs(dir)
	if err != nil {
		return nil, err
	}

	var table Table

	// Several directory names share a display name (e.g. ulayfs and madfs).
	seen := make(map[[2]string]string)

	for _, fsDir := range fsDirs {
		label := FSName(filepath.Base(fsDir))

		for _, w := range workload.All() {
			logPath := filepath.Join(fsDir, w.RunLog())

			if _, err := os.Stat(logPath); errors.Is(err, os.ErrNotExist) {
				logger.WarnContext(ctx, "run log does not exist",
					slog.String("path", logPath),
				)

				continue
			}

			mops, err := workload.ParseFile(logPath)
			if err != nil {
				return nil, fmt.Errorf("parse %s/%s: %w", label, w.Label(), err)
			}

			logger.DebugContext(ctx, "parsed run log",
				slog.String("fs", label),
				slog.String("workload", w.Label()),
				slog.String("mix", w.Description),
				slog.Float64("mops", mops),
			)

			key := [2]string{label, w.Label()}
			if prev, ok := seen[key]; ok {
				logger.WarnContext(ctx, "duplicate result for filesystem",
					slog.String("fs", label),
					slog.String("workload", w.Label()),
					slog.String("path", logPath),
					slog.String("first", prev),
				)
			} else {
				seen[key] = logPath
			}

			table = append(table, Row{
				X:         w.Label(),
				Y:         mops,
				Label:     label,
				Benchmark: Benchmark,
			})
		}
	}

	return table, nil
}
