package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/thermsim/internal/sim"
)

const (
	DefaultPlotWidth  = 100
	DefaultPlotHeight = 16
)

func plotSeries(series []*sim.Series, caption string, width, height int) string {
	if width <= 0 {
		width = DefaultPlotWidth
	}
	if height <= 0 {
		height = DefaultPlotHeight
	}

	data := make([][]float64, 0, len(series))
	colors := make([]asciigraph.AnsiColor, 0, len(series))
	legend := make([]string, 0, len(series))
	for i, s := range series {
		if s.Len() == 0 {
			continue
		}
		c := colorAt(i)
		data = append(data, s.Values())
		colors = append(colors, c.series)
		legend = append(legend, lipgloss.NewStyle().Foreground(c.legend).Render("■ "+s.Name))
	}
	if len(data) == 0 {
		return Subtle.Render("(no samples)")
	}

	chart := asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption),
	)
	return chart + "\n" + strings.Join(legend, "  ")
}

// PlotTemperatures charts the setpoint and every pair's temperature.
func PlotTemperatures(r *sim.Result, width, height int) string {
	series := []*sim.Series{r.Setpoint}
	for _, p := range r.Pairs {
		series = append(series, p.Temperature)
	}
	return plotSeries(series, fmt.Sprintf("temperature, %s", r.Gains), width, height)
}

// PlotTerms charts the standard PID's per-term contributions against a zero
// baseline.
func PlotTerms(r *sim.Result, width, height int) string {
	series := append([]*sim.Series{r.Baseline}, r.Terms.All()...)
	return plotSeries(series, "standard PID terms", width, height)
}
