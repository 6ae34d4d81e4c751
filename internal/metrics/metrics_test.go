package metrics

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/san-kum/thermsim/internal/control"
)

func TestControlEffort(t *testing.T) {
	m := NewControlEffort()

	if m.Value() != 0 {
		t.Errorf("expected zero before samples, got %f", m.Value())
	}

	m.Observe(Sample{Effort: 1})
	m.Observe(Sample{Effort: -0.5})

	if math.Abs(m.Value()-0.75) > 1e-12 {
		t.Errorf("expected 0.75, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestSaturation(t *testing.T) {
	m := NewSaturation()
	for _, u := range []float64{1, -1, 0.2, 0} {
		m.Observe(Sample{Effort: u})
	}

	if m.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", m.Value())
	}
}

func TestIAE(t *testing.T) {
	m := NewIAE(0.5)
	m.Observe(Sample{Temperature: 0, Setpoint: 2})
	m.Observe(Sample{Temperature: 3, Setpoint: 2})

	if math.Abs(m.Value()-1.5) > 1e-12 {
		t.Errorf("expected 1.5, got %f", m.Value())
	}
}

func TestOvershoot(t *testing.T) {
	tests := []struct {
		name     string
		samples  []Sample
		expected float64
	}{
		{
			name: "no setpoint change",
			samples: []Sample{
				{Temperature: 10, Setpoint: 0},
				{Temperature: 12, Setpoint: 0},
			},
			expected: 0,
		},
		{
			name: "rising step overshoots",
			samples: []Sample{
				{Temperature: 0, Setpoint: 0},
				{Temperature: 0, Setpoint: 20},
				{Temperature: 21.5, Setpoint: 20},
				{Temperature: 20.2, Setpoint: 20},
			},
			expected: 1.5,
		},
		{
			name: "falling step undershoot counts",
			samples: []Sample{
				{Temperature: 20, Setpoint: 20},
				{Temperature: 20, Setpoint: 5},
				{Temperature: 4, Setpoint: 5},
			},
			expected: 1,
		},
		{
			name: "approach without crossing",
			samples: []Sample{
				{Temperature: 0, Setpoint: 0},
				{Temperature: 0, Setpoint: 20},
				{Temperature: 19, Setpoint: 20},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewOvershoot()
			for _, s := range tt.samples {
				m.Observe(s)
			}
			if math.Abs(m.Value()-tt.expected) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.expected, m.Value())
			}
		})
	}
}

func TestDefaultsAreIndependent(t *testing.T) {
	factories := Defaults(0.01)
	if len(factories) != 4 {
		t.Fatalf("expected 4 default metrics, got %d", len(factories))
	}

	a, b := factories[0](), factories[0]()
	a.Observe(Sample{Temperature: 0, Setpoint: 100})
	if b.Value() != 0 {
		t.Error("factory returned shared instance")
	}
}

func TestCollectorsUpdate(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollectors()
	if err := c.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}

	report := Report{"pid": {"iae": 12.5}}
	c.Update(report, control.Gains{Prop: 2, Integ: 1}, 13000)

	if got := testutil.ToFloat64(c.Quality.WithLabelValues("pid", "iae")); got != 12.5 {
		t.Errorf("expected 12.5, got %v", got)
	}
	if got := testutil.ToFloat64(c.Gain.WithLabelValues("prop")); got != 2 {
		t.Errorf("expected prop gain 2, got %v", got)
	}
	if got := testutil.ToFloat64(c.Steps); got != 13000 {
		t.Errorf("expected 13000 steps, got %v", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thermsim.prom")

	report := Report{
		"onoff":    {"iae": 40},
		"adaptive": {"iae": 21},
	}
	if err := WriteTextfile(path, report, control.Gains{Prop: 1, Integ: 1}, 13000); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		`thermsim_control_quality{controller="adaptive",metric="iae"} 21`,
		`thermsim_gain{term="prop"} 1`,
		"thermsim_steps 13000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("textfile missing %q:\n%s", want, out)
		}
	}
}
