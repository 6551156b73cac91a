package cli

import (
	"fmt"
	"math"

	"github.com/pterm/pterm"

	"github.com/relab/quorumsim/experiment"
)

// renderReport prints the sweep results as a table, one row per fault ratio
// in sweep order, with the two protocols side by side.
func renderReport(series []experiment.Series) error {
	pterm.DefaultSection.Println("Final Results")
	return pterm.DefaultTable.WithHasHeader().WithData(reportData(series)).Render()
}

func reportData(series []experiment.Series) pterm.TableData {
	header := []string{"Fault ratio"}
	for _, s := range series {
		header = append(header,
			fmt.Sprintf("%s throughput", s.Protocol),
			fmt.Sprintf("%s correct", s.Protocol),
		)
	}
	data := pterm.TableData{header}
	if len(series) == 0 {
		return data
	}
	for i := range series[0].Samples {
		row := []string{fmt.Sprintf("%.0f%%", series[0].Samples[i].FaultRatio*100)}
		for _, s := range series {
			sample := s.Samples[i]
			row = append(row,
				formatValue(sample.Throughput, sample.ThroughputVariance, "%.2f/tu"),
				formatValue(sample.CorrectRatio*100, sample.CorrectRatioVariance*100*100, "%.1f%%"),
			)
		}
		data = append(data, row)
	}
	return data
}

// formatValue formats a mean, appending its standard deviation when more than
// one trial produced a defined variance.
func formatValue(mean, variance float64, format string) string {
	s := fmt.Sprintf(format, mean)
	if !math.IsNaN(variance) {
		s += fmt.Sprintf(" (±%.2f)", math.Sqrt(variance))
	}
	return s
}
