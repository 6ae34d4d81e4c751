package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/thermsim/internal/control"
	"github.com/san-kum/thermsim/internal/logging"
	"github.com/san-kum/thermsim/internal/viz"
)

// runInteractive repeats prompt, run and plot until the operator quits.
// Unusable gains are reported in the next prompt instead of ending the
// session.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	gains := cfg.Gains
	note := ""
	for {
		final, err := tea.NewProgram(viz.NewGainPrompt(gains, note)).Run()
		if err != nil {
			return err
		}
		entered, ok := final.(viz.GainPrompt).Result()
		if !ok {
			return nil
		}
		gains = entered

		res, err := simulate(cmd.Context(), cfg, gains, log)
		if errors.Is(err, control.ErrInvalidGain) {
			note = err.Error()
			continue
		}
		if err != nil {
			return err
		}
		note = ""

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", viz.Title.Render(gains.String()))
		render(out, res, true)
	}
}
