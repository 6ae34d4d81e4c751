package sim

import (
	"errors"
	"math"
	"testing"
)

func TestSchedule_At(t *testing.T) {
	s := DefaultSchedule()

	tests := []struct {
		t        float64
		expected float64
	}{
		{0, 0},
		{4.99, 0},
		{5, 20},
		{69.99, 20},
		{70, 5},
		{129.99, 5},
	}

	for _, tt := range tests {
		if got := s.At(tt.t); got != tt.expected {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.expected)
		}
	}
}

func TestSchedule_AtBeforeFirstEntry(t *testing.T) {
	s := Schedule{{From: 10, Target: 30}}
	if got := s.At(3); got != 0 {
		t.Errorf("expected 0 before first entry, got %v", got)
	}
	if got := (Schedule{}).At(50); got != 0 {
		t.Errorf("expected 0 for empty schedule, got %v", got)
	}
}

func TestSchedule_Validate(t *testing.T) {
	tests := []struct {
		name  string
		s     Schedule
		valid bool
	}{
		{"default", DefaultSchedule(), true},
		{"empty", Schedule{}, true},
		{"out of order", Schedule{{From: 5}, {From: 1}}, false},
		{"duplicate start", Schedule{{From: 5}, {From: 5}}, false},
		{"NaN target", Schedule{{From: 0, Target: math.NaN()}}, false},
		{"infinite start", Schedule{{From: math.Inf(1)}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfig_Steps(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Steps(); got != 13000 {
		t.Errorf("expected 13000 steps, got %d", got)
	}

	cfg.Dt = 0.1
	cfg.Duration = 1
	if got := cfg.Steps(); got != 10 {
		t.Errorf("expected 10 steps, got %d", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero dt", func(c *Config) { c.Dt = 0 }, false},
		{"negative dt", func(c *Config) { c.Dt = -0.01 }, false},
		{"zero duration", func(c *Config) { c.Duration = 0 }, false},
		{"duration below dt", func(c *Config) { c.Duration = 0.001 }, false},
		{"unstable euler", func(c *Config) { c.Dt = 10; c.Duration = 100 }, false},
		{"bad schedule", func(c *Config) { c.Schedule = Schedule{{From: 1}, {From: 0}} }, false},
		{"rk4 stepper", func(c *Config) { c.Integrator = "rk4" }, true},
		{"unknown stepper", func(c *Config) { c.Integrator = "verlet" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestClock(t *testing.T) {
	c := NewClock(0.01)
	for i := 0; i < 13000; i++ {
		if c.Now() != float64(i)*0.01 {
			t.Fatalf("step %d: time %v drifted", i, c.Now())
		}
		c.Tick()
	}
	if c.Step() != 13000 {
		t.Errorf("expected step 13000, got %d", c.Step())
	}
}

func TestSeries(t *testing.T) {
	s := NewSeries("temp", 4)

	if s.Last() != (Point{}) {
		t.Error("expected zero point for empty series")
	}

	s.Append(0, 1)
	s.Append(0.5, 2)
	s.Append(1, 3)

	if s.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", s.Len())
	}
	times, values := s.Times(), s.Values()
	for i, want := range []float64{0, 0.5, 1} {
		if times[i] != want {
			t.Errorf("times[%d] = %v, want %v", i, times[i], want)
		}
	}
	for i, want := range []float64{1, 2, 3} {
		if values[i] != want {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want)
		}
	}
	if s.Last() != (Point{T: 1, V: 3}) {
		t.Errorf("unexpected last point %+v", s.Last())
	}
}
