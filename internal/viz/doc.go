// Package viz renders comparison runs in the terminal.
//
//   - [PlotTemperatures] and [PlotTerms]: asciigraph charts of a run
//   - [RenderSummary]: lipgloss table of per-controller metrics
//   - [GainPrompt]: Bubble Tea model that reads the three gains
//
// # Key Bindings
//
//	Enter     - Accept field (empty keeps the shown default)
//	Tab/↑↓    - Move between fields
//	-1        - Quit the session
//	Esc       - Quit the session
package viz
