package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/san-kum/thermsim/internal/control"
)

// Report maps controller name to metric name to value.
type Report map[string]map[string]float64

// Collectors holds the gauges a run summary is published through.
type Collectors struct {
	Quality *prometheus.GaugeVec
	Gain    *prometheus.GaugeVec
	Steps   prometheus.Gauge
}

func NewCollectors() *Collectors {
	return &Collectors{
		Quality: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "thermsim_control_quality",
				Help: "Control quality metric per controller",
			},
			[]string{"controller", "metric"},
		),
		Gain: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "thermsim_gain",
				Help: "Operator supplied PID gain",
			},
			[]string{"term"},
		),
		Steps: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "thermsim_steps",
				Help: "Simulation steps per series",
			},
		),
	}
}

func (c *Collectors) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.Quality, c.Gain, c.Steps} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collectors) Update(report Report, gains control.Gains, steps int) {
	for ctrl, values := range report {
		for name, v := range values {
			c.Quality.WithLabelValues(ctrl, name).Set(v)
		}
	}
	c.Gain.WithLabelValues("prop").Set(gains.Prop)
	c.Gain.WithLabelValues("integ").Set(gains.Integ)
	c.Gain.WithLabelValues("deriv").Set(gains.Deriv)
	c.Steps.Set(float64(steps))
}

// WriteTextfile publishes a run summary in the node_exporter textfile format.
func WriteTextfile(path string, report Report, gains control.Gains, steps int) error {
	reg := prometheus.NewRegistry()
	c := NewCollectors()
	if err := c.Register(reg); err != nil {
		return fmt.Errorf("register collectors: %w", err)
	}
	c.Update(report, gains, steps)

	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("write textfile %s: %w", path, err)
	}
	return nil
}
