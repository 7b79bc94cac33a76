// Package main provides the CLI entry point for ycsbplot, which compares
// filesystems by the YCSB throughput recorded in their LevelDB run logs.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/weiihann/ycsbplot/chart"
	"github.com/weiihann/ycsbplot/export"
	"github.com/weiihann/ycsbplot/report"
	"github.com/weiihann/ycsbplot/results"
)

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level, os.Stdout)
	if err := root.Execute(); err != nil {
		logger.Error("ycsbplot failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type plotConfig struct {
	resultDir   string
	resultsRoot string
	format      string
	exports     []string
	summary     bool
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar, stdout io.Writer) *cobra.Command {
	var (
		cfg     plotConfig
		verbose bool
	)

	root := &cobra.Command{
		Use:   "ycsbplot",
		Short: "Plot YCSB throughput across filesystems",
		Long: `Ycsbplot scans a YCSB result directory holding one subdirectory per
filesystem, extracts the throughput of workloads A-F from each run log,
exports the table and renders a grouped bar chart next to the results.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				level.Set(slog.LevelDebug)
			}

			return plotYCSB(cmd.Context(), logger, stdout, cfg)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfg.resultDir, "result_dir", "",
		"Directory with results (default: latest run under <results-root>/"+
			results.DefaultSuite+")")
	flags.StringVar(&cfg.resultsRoot, "results-root", "results",
		"Root directory holding benchmark suites")
	flags.StringVar(&cfg.format, "format", "svg",
		"Chart format: svg, png, pdf, eps, html")
	flags.StringSliceVar(&cfg.exports, "export", []string{export.FormatCSV},
		"Table export formats: csv, json, xlsx")
	flags.BoolVar(&cfg.summary, "summary", false,
		"Print a markdown summary table to stdout")
	flags.BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	return root
}

func plotYCSB(
	ctx context.Context,
	logger *slog.Logger,
	stdout io.Writer,
	cfg plotConfig,
) error {
	format := strings.ToLower(cfg.format)
	if !slices.Contains(chart.Formats(), format) {
		return fmt.Errorf("unsupported chart format %q", cfg.format)
	}

	resultDir := cfg.resultDir
	if resultDir == "" {
		var err error

		resultDir, err = results.LatestRun(
			filepath.Join(cfg.resultsRoot, results.DefaultSuite),
		)
		if err != nil {
			return fmt.Errorf("locate latest result: %w", err)
		}
	}

	logger.InfoContext(ctx, "collecting results",
		slog.String("result_dir", resultDir),
	)

	table, err := results.Collect(ctx, logger, resultDir)
	if err != nil {
		return fmt.Errorf("collect results: %w", err)
	}

	if len(table) == 0 {
		return fmt.Errorf("no results found in %s", resultDir)
	}

	paths, err := export.Write(resultDir, table, cfg.exports...)
	if err != nil {
		return err
	}

	for _, p := range paths {
		logger.InfoContext(ctx, "results exported", slog.String("path", p))
	}

	chartPath := filepath.Join(resultDir, "result."+format)
	if err := chart.Render(table, chart.DefaultOptions(chartPath)); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	logger.InfoContext(ctx, "chart rendered",
		slog.String("path", chartPath),
		slog.Int("rows", len(table)),
	)

	if cfg.summary {
		if err := report.Generate(stdout, table); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	return nil
}
