package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/thermsim/internal/integrators"
	"github.com/san-kum/thermsim/internal/physics"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 130.0
)

// ErrInvalidConfig indicates a configuration the driver cannot run.
var ErrInvalidConfig = errors.New("sim: invalid configuration")

// Setpoint is a schedule entry: Target applies from time From onward.
type Setpoint struct {
	From   float64 `yaml:"from" json:"from"`
	Target float64 `yaml:"target" json:"target"`
}

// Schedule is a piecewise-constant setpoint trajectory ordered by From.
type Schedule []Setpoint

// DefaultSchedule holds 0 until t=5, 20 until t=70, then 5.
func DefaultSchedule() Schedule {
	return Schedule{
		{From: 0, Target: 0},
		{From: 5, Target: 20},
		{From: 70, Target: 5},
	}
}

// At returns the target in effect at t. Before the first entry it is 0.
func (s Schedule) At(t float64) float64 {
	target := 0.0
	for _, sp := range s {
		if t < sp.From {
			break
		}
		target = sp.Target
	}
	return target
}

func (s Schedule) Validate() error {
	for i, sp := range s {
		if math.IsNaN(sp.From) || math.IsInf(sp.From, 0) || math.IsNaN(sp.Target) || math.IsInf(sp.Target, 0) {
			return fmt.Errorf("%w: schedule entry %d is not finite", ErrInvalidConfig, i)
		}
		if i > 0 && sp.From <= s[i-1].From {
			return fmt.Errorf("%w: schedule entry %d starts at %g, not after %g", ErrInvalidConfig, i, sp.From, s[i-1].From)
		}
	}
	return nil
}

type Config struct {
	Dt          float64
	Duration    float64
	InitialTemp float64
	Schedule    Schedule
	Plant       physics.Thermal
	// Integrator names the plant stepper; see integrators.Names.
	Integrator  string
}

func DefaultConfig() Config {
	return Config{
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Schedule:   DefaultSchedule(),
		Plant:      *physics.NewThermal(),
		Integrator: integrators.Default,
	}
}

// Steps is the number of samples per series. Rounding keeps 130/0.01 at
// exactly 13000.
func (c Config) Steps() int {
	return int(math.Round(c.Duration / c.Dt))
}

func (c Config) Validate() error {
	if c.Dt <= 0 || math.IsNaN(c.Dt) {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, c.Dt)
	}
	if c.Duration <= 0 || math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, c.Duration)
	}
	if c.Duration < c.Dt {
		return fmt.Errorf("%w: duration %f shorter than dt %f", ErrInvalidConfig, c.Duration, c.Dt)
	}
	if c.Plant.HeatTransfer*c.Dt >= 1 {
		return fmt.Errorf("%w: heat_transfer*dt = %f must be below 1", ErrInvalidConfig, c.Plant.HeatTransfer*c.Dt)
	}
	if _, err := integrators.New(c.Integrator); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c.Schedule.Validate()
}

// Clock derives time from an integer step count so the sample grid never
// drifts.
type Clock struct {
	dt   float64
	step int
}

func NewClock(dt float64) *Clock {
	return &Clock{dt: dt}
}

func (c *Clock) Now() float64 { return float64(c.step) * c.dt }
func (c *Clock) Tick()        { c.step++ }
func (c *Clock) Step() int    { return c.step }

type Point struct {
	T float64 `json:"t"`
	V float64 `json:"v"`
}

// Series is an append-only sequence of samples. Callers append in
// non-decreasing time order.
type Series struct {
	Name   string
	Points []Point
}

func NewSeries(name string, capacity int) *Series {
	return &Series{
		Name:   name,
		Points: make([]Point, 0, capacity),
	}
}

func (s *Series) Append(t, v float64) {
	s.Points = append(s.Points, Point{T: t, V: v})
}

func (s *Series) Len() int {
	return len(s.Points)
}

func (s *Series) Times() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.T
	}
	return out
}

func (s *Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.V
	}
	return out
}

// Last returns the newest sample, or the zero Point when empty.
func (s *Series) Last() Point {
	if len(s.Points) == 0 {
		return Point{}
	}
	return s.Points[len(s.Points)-1]
}
