package chart

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/weiihann/ycsbplot/results"
)

// groupWidth is the horizontal space shared by the bars of one workload.
const groupWidth = 36

func renderImage(table results.Table, opts Options) error {
	labels, workloads, values, _ := series(table)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	w := vg.Points(groupWidth / float64(len(labels)))

	for i, label := range labels {
		bars, err := plotter.NewBarChart(plotter.Values(values[i]), w)
		if err != nil {
			return fmt.Errorf("bar chart for %s: %w", label, err)
		}

		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = w * vg.Length(float64(i)-float64(len(labels)-1)/2)

		p.Add(bars)
		p.Legend.Add(label, bars)
	}

	p.NominalX(workloads...)

	if err := p.Save(opts.Width, opts.Height, opts.Path); err != nil {
		return fmt.Errorf("save %s: %w", opts.Path, err)
	}

	return nil
}
