package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/san-kum/thermsim/internal/config"
)

var (
	configFile  string
	preset      string
	kp          float64
	ki          float64
	kd          float64
	logLevel    string
	showPlot    bool
	plotWidth   int
	plotHeight  int
	csvPath     string
	jsonPath    string
	pngPath     string
	metricsPath string
)

// main registers the thermsim command tree and exits with status 1 when a
// command returns an error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "thermsim",
		Short: "compare on-off, PID and adaptive PID control of a thermal plant",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run one comparison with the given gains",
		Args:  cobra.NoArgs,
		RunE:  runComparison,
	}
	addGainFlags(runCmd)
	runCmd.Flags().StringVar(&preset, "preset", "", "use a gain preset")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "draw terminal charts")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write series to csv")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write series to json")
	runCmd.Flags().StringVar(&pngPath, "png", "", "write chart to png")
	runCmd.Flags().StringVar(&metricsPath, "metrics-file", "", "write prometheus textfile")

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "prompt for gains and rerun until -1 is entered",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}
	addGainFlags(interactiveCmd)

	for _, c := range []*cobra.Command{runCmd, interactiveCmd} {
		c.Flags().IntVar(&plotWidth, "width", 100, "chart width")
		c.Flags().IntVar(&plotHeight, "height", 16, "chart height")
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list gain presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "gain presets:")
			for _, name := range config.ListPresets() {
				g, _ := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s %s\n", name, g)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})

	rootCmd.AddCommand(runCmd, interactiveCmd, presetsCmd, configCmd)
	return rootCmd
}

func addGainFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "proportional gain (PROP)")
	cmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "integral gain (INTEG)")
	cmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "derivative gain (DERIV)")
}
