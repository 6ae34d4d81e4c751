package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/thermsim/internal/control"
	"github.com/san-kum/thermsim/internal/integrators"
	"github.com/san-kum/thermsim/internal/metrics"
	"github.com/san-kum/thermsim/internal/physics"
)

// PairResult is the recorded history of one controller driving its own plant.
type PairResult struct {
	Kind        control.Kind
	Temperature *Series
	Effort      *Series
	Metrics     map[string]float64
}

// TermSeries records the standard PID's per-term contributions.
type TermSeries struct {
	Proportional *Series
	Integral     *Series
	Derivative   *Series
	Output       *Series
	Error        *Series
}

func newTermSeries(capacity int) *TermSeries {
	return &TermSeries{
		Proportional: NewSeries("proportional", capacity),
		Integral:     NewSeries("integral", capacity),
		Derivative:   NewSeries("derivative", capacity),
		Output:       NewSeries("output", capacity),
		Error:        NewSeries("error", capacity),
	}
}

func (ts *TermSeries) record(t float64, terms control.Terms) {
	ts.Proportional.Append(t, terms.Proportional)
	ts.Integral.Append(t, terms.Integral)
	ts.Derivative.Append(t, terms.Derivative)
	ts.Output.Append(t, terms.Output)
	ts.Error.Append(t, terms.Error)
}

// All returns the term series in display order.
func (ts *TermSeries) All() []*Series {
	return []*Series{ts.Proportional, ts.Integral, ts.Derivative, ts.Output, ts.Error}
}

type Result struct {
	Gains    control.Gains
	Dt       float64
	Duration float64
	Steps    int
	Setpoint *Series
	Baseline *Series
	Pairs    []*PairResult
	Terms    *TermSeries
}

// Pair returns the history for kind, or nil if it was not run.
func (r *Result) Pair(kind control.Kind) *PairResult {
	for _, p := range r.Pairs {
		if p.Kind == kind {
			return p
		}
	}
	return nil
}

func (r *Result) Report() metrics.Report {
	report := make(metrics.Report, len(r.Pairs))
	for _, p := range r.Pairs {
		report[p.Kind.String()] = p.Metrics
	}
	return report
}

type pair struct {
	ctrl    control.Controller
	plant   *physics.Plant
	metrics []metrics.Metric
	out     *PairResult
}

// Driver runs the on-off, standard PID and adaptive PID controllers side by
// side against one setpoint schedule. Every Run starts from fresh plants and
// controllers.
type Driver struct {
	cfg     Config
	gains   control.Gains
	log     logrus.FieldLogger
	metrics []metrics.Factory
}

// NewDriver rejects gains the adaptive controller cannot use before any
// control call is made.
func NewDriver(cfg Config, gains control.Gains) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := control.ValidateAdaptive(gains); err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &Driver{
		cfg:     cfg,
		gains:   gains,
		log:     log,
		metrics: make([]metrics.Factory, 0),
	}, nil
}

func (d *Driver) SetLogger(log logrus.FieldLogger) { d.log = log }
func (d *Driver) AddMetric(f metrics.Factory)      { d.metrics = append(d.metrics, f) }

// Run executes the full schedule. The context is only consulted before the
// first step: a run either completes or does not start.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	steps := d.cfg.Steps()
	pairs, err := d.buildPairs(steps)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Gains:    d.gains,
		Dt:       d.cfg.Dt,
		Duration: d.cfg.Duration,
		Steps:    steps,
		Setpoint: NewSeries("setpoint", steps),
		Baseline: NewSeries("zero", steps),
		Pairs:    make([]*PairResult, 0, len(pairs)),
		Terms:    newTermSeries(steps),
	}
	for _, p := range pairs {
		result.Pairs = append(result.Pairs, p.out)
	}

	d.log.WithFields(logrus.Fields{
		"steps":    steps,
		"dt":       d.cfg.Dt,
		"duration": d.cfg.Duration,
		"kp":       d.gains.Prop,
		"ki":       d.gains.Integ,
		"kd":       d.gains.Deriv,
		"stepper":  d.cfg.Integrator,
	}).Info("starting comparison run")

	clock := NewClock(d.cfg.Dt)
	for i := 0; i < steps; i++ {
		t := clock.Now()
		target := d.cfg.Schedule.At(t)

		result.Setpoint.Append(t, target)
		result.Baseline.Append(t, 0)

		for _, p := range pairs {
			current := p.plant.Temperature()
			u := p.ctrl.Control(current, target)

			p.out.Temperature.Append(t, current)
			p.out.Effort.Append(t, u)
			if inst, ok := p.ctrl.(control.Instrumented); ok {
				result.Terms.record(t, inst.Last())
			}

			sample := metrics.Sample{T: t, Temperature: current, Setpoint: target, Effort: u}
			for _, m := range p.metrics {
				m.Observe(sample)
			}

			p.plant.Step(u)
		}
		clock.Tick()
	}

	for _, p := range pairs {
		for _, m := range p.metrics {
			p.out.Metrics[m.Name()] = m.Value()
		}
		d.log.WithFields(logrus.Fields{
			"controller": p.out.Kind.String(),
			"final_temp": p.plant.Temperature(),
		}).Debug("pair finished")
	}

	return result, nil
}

func (d *Driver) buildPairs(steps int) ([]*pair, error) {
	pairs := make([]*pair, 0, len(control.Kinds))
	for _, kind := range control.Kinds {
		ctrl, err := control.New(kind, d.gains, d.cfg.Dt)
		if err != nil {
			return nil, fmt.Errorf("build %s controller: %w", kind, err)
		}

		stepper, err := integrators.New(d.cfg.Integrator)
		if err != nil {
			return nil, err
		}

		model := d.cfg.Plant
		p := &pair{
			ctrl:  ctrl,
			plant: physics.NewPlant(&model, stepper, d.cfg.InitialTemp, d.cfg.Dt),
			out: &PairResult{
				Kind:        kind,
				Temperature: NewSeries(kind.String(), steps),
				Effort:      NewSeries(kind.String()+"_effort", steps),
				Metrics:     make(map[string]float64, len(d.metrics)),
			},
		}
		for _, f := range d.metrics {
			m := f()
			m.Reset()
			p.metrics = append(p.metrics, m)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}
