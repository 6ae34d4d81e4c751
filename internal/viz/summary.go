package viz

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/thermsim/internal/control"
	"github.com/san-kum/thermsim/internal/metrics"
)

// SummaryMetrics is the column order of the summary table.
var SummaryMetrics = []string{"iae", "overshoot", "control_effort", "saturation"}

// RenderSummary lays out one row per controller kind. Missing values render
// as "-".
func RenderSummary(report metrics.Report) string {
	headers := append([]string{"controller"}, SummaryMetrics...)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Title.Padding(0, 1)
			case col == 0:
				return MetricLabel.Padding(0, 1)
			default:
				return MetricValue.Padding(0, 1)
			}
		})

	for _, kind := range control.Kinds {
		values, ok := report[kind.String()]
		if !ok {
			continue
		}
		row := []string{kind.String()}
		for _, name := range SummaryMetrics {
			v, ok := values[name]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, strconv.FormatFloat(v, 'f', 3, 64))
		}
		t.Row(row...)
	}
	return t.String()
}
