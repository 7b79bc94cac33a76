package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot/vg"

	"github.com/weiihann/ycsbplot/results"
)

// pixelsPerInch converts figure sizes for the browser.
const pixelsPerInch = 120

func renderHTML(table results.Table, o Options) error {
	labels, workloads, values, ok := series(table)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     pixels(o.Width),
			Height:    pixels(o.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: o.YLabel}),
		charts.WithLegendOpts(opts.Legend{Top: "5%", Right: "5%"}),
		charts.WithAnimation(false),
	)

	bar.SetXAxis(workloads)

	for i, label := range labels {
		data := make([]opts.BarData, len(workloads))

		for j := range workloads {
			if !ok[i][j] {
				// echarts treats "-" as an empty value.
				data[j] = opts.BarData{Value: "-"}

				continue
			}

			data[j] = opts.BarData{Value: values[i][j]}
		}

		bar.AddSeries(label, data)
	}

	f, err := os.Create(o.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", o.Path, err)
	}

	if err := bar.Render(f); err != nil {
		f.Close()

		return fmt.Errorf("render %s: %w", o.Path, err)
	}

	return f.Close()
}

func pixels(l vg.Length) string {
	return fmt.Sprintf("%dpx", int(l.Dots(pixelsPerInch)))
}
