package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/thermsim/internal/config"
	"github.com/san-kum/thermsim/internal/control"
	"github.com/san-kum/thermsim/internal/export"
	"github.com/san-kum/thermsim/internal/logging"
	"github.com/san-kum/thermsim/internal/metrics"
	"github.com/san-kum/thermsim/internal/sim"
	"github.com/san-kum/thermsim/internal/viz"
)

// loadConfig layers the config file, the preset and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("preset") {
		g, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("%w: unknown preset %q", config.ErrInvalidConfig, preset)
		}
		cfg.Gains = g
	}

	if cmd.Flags().Changed("kp") {
		cfg.Gains.Prop = kp
	}
	if cmd.Flags().Changed("ki") {
		cfg.Gains.Integ = ki
	}
	if cmd.Flags().Changed("kd") {
		cfg.Gains.Deriv = kd
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func simulate(ctx context.Context, cfg *config.Config, gains control.Gains, log logrus.FieldLogger) (*sim.Result, error) {
	simCfg := cfg.SimConfig()
	d, err := sim.NewDriver(simCfg, gains)
	if err != nil {
		return nil, err
	}
	d.SetLogger(log)
	for _, f := range metrics.Defaults(simCfg.Dt) {
		d.AddMetric(f)
	}
	return d.Run(ctx)
}

func render(out io.Writer, res *sim.Result, plots bool) {
	if plots {
		fmt.Fprintln(out, viz.PlotTemperatures(res, plotWidth, plotHeight))
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.PlotTerms(res, plotWidth, plotHeight))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, viz.RenderSummary(res.Report()))
}

func writeOutputs(res *sim.Result, log logrus.FieldLogger) error {
	outputs := []struct {
		kind string
		path string
		save func(string, *sim.Result) error
	}{
		{"csv", csvPath, export.SaveCSV},
		{"json", jsonPath, export.SaveJSON},
		{"png", pngPath, export.SavePNG},
		{"metrics", metricsPath, func(path string, r *sim.Result) error {
			return metrics.WriteTextfile(path, r.Report(), r.Gains, r.Steps)
		}},
	}

	for _, o := range outputs {
		if o.path == "" {
			continue
		}
		if err := o.save(o.path, res); err != nil {
			return fmt.Errorf("export %s: %w", o.kind, err)
		}
		log.WithFields(logrus.Fields{"kind": o.kind, "path": o.path}).Info("exported")
	}
	return nil
}

func runComparison(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	res, err := simulate(cmd.Context(), cfg, cfg.Gains, log)
	if err != nil {
		return err
	}

	render(cmd.OutOrStdout(), res, showPlot)
	return writeOutputs(res, log)
}
