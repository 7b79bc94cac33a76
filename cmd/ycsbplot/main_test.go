package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/weiihann/ycsbplot/export"
)

func writeRun(t *testing.T, runDir string) {
	t.Helper()

	logs := map[string]string{
		"nova/a-run.log":  "Finished 1000 requests\nTime elapsed: 500.0 us\n",
		"nova/b-run.log":  "Finished 900 requests\nTime elapsed: 300.0 us\n",
		"madfs/a-run.log": "Finished 4000 requests\nTime elapsed: 1000.0 us\n",
	}

	for name, content := range logs {
		path := filepath.Join(runDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cmd := newRootCmd(logger, new(slog.LevelVar), &stdout)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func TestPlotResultDir(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir)

	out, err := runCmd(t, "--result_dir", dir, "--export", "csv,json", "--summary")
	if err != nil {
		t.Fatalf("ycsbplot failed: %v", err)
	}

	for _, name := range []string{"result.csv", "result.json", "result.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	f, err := os.Open(export.Path(dir, export.FormatCSV))
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	table, err := export.ReadCSV(f)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}

	if len(table) != 3 {
		t.Fatalf("rows = %d, want 3", len(table))
	}

	if table[0].Label != "MadFS" || table[0].X != "A" || table[0].Y != 4.0 {
		t.Errorf("first row = %+v, want MadFS/A 4.0", table[0])
	}

	if !strings.Contains(out, "| NOVA | 2.000 | 3.000 | B |") {
		t.Errorf("summary missing NOVA row\n%s", out)
	}
}

func TestPlotLatestRun(t *testing.T) {
	root := t.TempDir()
	suite := filepath.Join(root, "bench_leveldb_ycsb")

	older := filepath.Join(suite, "2022-01-01-00-00-00")
	latest := filepath.Join(suite, "2022-02-01-00-00-00")

	writeRun(t, older)
	writeRun(t, latest)

	if _, err := runCmd(t, "--results-root", root, "--format", "html"); err != nil {
		t.Fatalf("ycsbplot failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(latest, "result.html")); err != nil {
		t.Errorf("expected chart in latest run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(older, "result.html")); err == nil {
		t.Error("older run should be left untouched")
	}
}

func TestPlotEmptyResultDir(t *testing.T) {
	if _, err := runCmd(t, "--result_dir", t.TempDir()); err == nil {
		t.Error("expected error for result dir without runs")
	}
}

func TestPlotMissingResultsRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	if _, err := runCmd(t, "--results-root", root); err == nil {
		t.Error("expected error when no result dir can be located")
	}
}

func TestPlotUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir)

	if _, err := runCmd(t, "--result_dir", dir, "--format", "gif"); err == nil {
		t.Error("expected error for unsupported chart format")
	}

	if _, err := os.Stat(filepath.Join(dir, "result.csv")); err == nil {
		t.Error("nothing should be exported when the format is rejected")
	}
}

func TestPlotFormatCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir)

	if _, err := runCmd(t, "--result_dir", dir, "--format", "SVG"); err != nil {
		t.Fatalf("ycsbplot failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "result.svg")); err != nil {
		t.Errorf("expected result.svg: %v", err)
	}
}

func TestPlotDefaults(t *testing.T) {
	dir := t.TempDir()
	writeRun(t, dir)

	out, err := runCmd(t, "--result_dir", dir)
	if err != nil {
		t.Fatalf("ycsbplot failed: %v", err)
	}

	for _, name := range []string{"result.csv", "result.svg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	for _, name := range []string{"result.json", "result.xlsx", "result.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			t.Errorf("%s should only be written on request", name)
		}
	}

	if out != "" {
		t.Errorf("stdout should be empty without --summary, got %q", out)
	}
}
