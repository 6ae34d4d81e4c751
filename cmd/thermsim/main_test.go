package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/thermsim/internal/config"
	"github.com/san-kum/thermsim/internal/control"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)

	for _, name := range config.ListPresets() {
		assert.Contains(t, out, name)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermsim.yaml")

	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "run.csv")
	promFile := filepath.Join(dir, "run.prom")

	out, err := execute(t, "run", "--kp", "2", "--ki", "1", "--kd", "0",
		"--csv", csvFile, "--metrics-file", promFile, "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "adaptive")

	data, err := os.ReadFile(csvFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 13001)

	prom, err := os.ReadFile(promFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `thermsim_gain{term="prop"} 2`)
}

func TestRunRejectsZeroIntegral(t *testing.T) {
	_, err := execute(t, "run", "--ki", "0", "--log-level", "error")
	assert.ErrorIs(t, err, control.ErrInvalidGain)
}

func TestRunUnknownPreset(t *testing.T) {
	_, err := execute(t, "run", "--preset", "turbo")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermsim.yaml")
	cfg := config.DefaultConfig()
	cfg.Gains = control.Gains{Prop: 9, Integ: 9, Deriv: 9}
	require.NoError(t, config.Save(path, cfg))

	root := newRootCmd()
	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, root.PersistentFlags().Parse([]string{"--config", path}))
	require.NoError(t, run.Flags().Parse([]string{"--kp", "3"}))

	got, err := loadConfig(run)
	require.NoError(t, err)
	assert.Equal(t, control.Gains{Prop: 3, Integ: 9, Deriv: 9}, got.Gains)
}
