package plotting

import (
	"path/filepath"
	"testing"

	"github.com/relab/quorumsim/experiment"
)

func testSeries() []experiment.Series {
	return []experiment.Series{
		{
			Protocol: "baseline",
			Samples: []experiment.Sample{
				{FaultRatio: 0.0, Throughput: 170, CorrectRatio: 1.0},
				{FaultRatio: 0.2, Throughput: 140, CorrectRatio: 1.0},
				{FaultRatio: 0.4, Throughput: 110, CorrectRatio: 0.96},
			},
		},
		{
			Protocol: "trust-filtered",
			Samples: []experiment.Sample{
				{FaultRatio: 0.0, Throughput: 170, CorrectRatio: 1.0},
				{FaultRatio: 0.2, Throughput: 190, CorrectRatio: 1.0},
				{FaultRatio: 0.4, Throughput: 210, CorrectRatio: 1.0},
			},
		},
	}
}

func TestSeriesXYer(t *testing.T) {
	series := testSeries()
	xy := seriesXYer{
		samples: series[0].Samples,
		value:   func(s experiment.Sample) float64 { return s.Throughput },
	}
	if xy.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", xy.Len())
	}
	x, y := xy.XY(1)
	if x != 0.2 || y != 140 {
		t.Errorf("XY(1) = (%f, %f); want (0.2, 140)", x, y)
	}
}

func TestPlotSweep(t *testing.T) {
	dir := t.TempDir()
	p := NewSweepPlot(testSeries())
	if err := p.PlotThroughput(filepath.Join(dir, "throughput.png")); err != nil {
		t.Errorf("PlotThroughput failed: %v", err)
	}
	if err := p.PlotCorrectRatio(filepath.Join(dir, "correctness.png")); err != nil {
		t.Errorf("PlotCorrectRatio failed: %v", err)
	}
}
