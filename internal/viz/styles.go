package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	ActiveField = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

// palette pairs an asciigraph series color with the lipgloss color used for
// its legend entry.
type palette struct {
	series asciigraph.AnsiColor
	legend lipgloss.Color
}

var seriesPalette = []palette{
	{asciigraph.White, lipgloss.Color("15")},
	{asciigraph.Red, lipgloss.Color("9")},
	{asciigraph.Green, lipgloss.Color("2")},
	{asciigraph.Yellow, lipgloss.Color("11")},
	{asciigraph.Blue, lipgloss.Color("12")},
	{asciigraph.Magenta, lipgloss.Color("13")},
	{asciigraph.Cyan, lipgloss.Color("14")},
}

func colorAt(i int) palette {
	return seriesPalette[i%len(seriesPalette)]
}
