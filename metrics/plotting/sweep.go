// Package plotting renders sweep results as line plots against the fault ratio.
package plotting

import (
	"fmt"
	"image/color"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/relab/quorumsim/experiment"
)

// SweepPlot plots the result series of a fault-ratio sweep, one line per
// protocol.
type SweepPlot struct {
	series []experiment.Series
}

// NewSweepPlot returns a plot of the given series.
func NewSweepPlot(series []experiment.Series) SweepPlot {
	return SweepPlot{series: series}
}

// PlotThroughput saves a plot of throughput against the fault ratio.
// The file format is determined by the filename extension.
func (p SweepPlot) PlotThroughput(filename string) error {
	return p.plot(filename, "Throughput (decisions/time unit)", func(s experiment.Sample) float64 {
		return s.Throughput
	})
}

// PlotCorrectRatio saves a plot of the correct-decision ratio against the
// fault ratio. The file format is determined by the filename extension.
func (p SweepPlot) PlotCorrectRatio(filename string) error {
	return p.plot(filename, "Correct decision ratio", func(s experiment.Sample) float64 {
		return s.CorrectRatio
	})
}

func (p SweepPlot) plot(filename, yLabel string, value func(experiment.Sample) float64) error {
	plt := plot.New()

	grid := plotter.NewGrid()
	grid.Horizontal.Color = color.Gray{Y: 200}
	grid.Horizontal.Dashes = plotutil.Dashes(2)
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Vertical.Dashes = plotutil.Dashes(2)
	plt.Add(grid)

	plt.X.Label.Text = "Fault ratio"
	plt.X.Tick.Marker = hplot.Ticks{N: 10}
	plt.Y.Label.Text = yLabel
	plt.Y.Tick.Marker = hplot.Ticks{N: 10}

	var vs []interface{}
	for _, s := range p.series {
		vs = append(vs, s.Protocol, seriesXYer{samples: s.Samples, value: value})
	}
	if err := plotutil.AddLinePoints(plt, vs...); err != nil {
		return fmt.Errorf("failed to add line plot: %w", err)
	}

	if err := plt.Save(6*vg.Inch, 6*vg.Inch, filename); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

// seriesXYer adapts one sweep series to the plotter.XYer interface, with the
// fault ratio on the x axis.
type seriesXYer struct {
	samples []experiment.Sample
	value   func(experiment.Sample) float64
}

// Len returns the number of x, y pairs.
func (s seriesXYer) Len() int {
	return len(s.samples)
}

// XY returns an x, y pair.
func (s seriesXYer) XY(i int) (x, y float64) {
	return s.samples[i].FaultRatio, s.value(s.samples[i])
}
