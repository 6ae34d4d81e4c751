package metrics

import "math"

// IAE is the integral of absolute tracking error over the run.
type IAE struct {
	name string
	dt   float64
	sum  float64
}

func NewIAE(dt float64) *IAE {
	return &IAE{
		name: "iae",
		dt:   dt,
	}
}

func (m *IAE) Name() string {
	return m.name
}

func (m *IAE) Observe(s Sample) {
	m.sum += math.Abs(s.Setpoint-s.Temperature) * m.dt
}

func (m *IAE) Value() float64 {
	return m.sum
}

func (m *IAE) Reset() {
	m.sum = 0
}

// Overshoot is the largest excursion past a setpoint in the direction of
// the change that introduced it. Samples before the first change are
// ignored.
type Overshoot struct {
	name      string
	started   bool
	prev      float64
	direction float64
	max       float64
}

func NewOvershoot() *Overshoot {
	return &Overshoot{
		name: "overshoot",
	}
}

func (o *Overshoot) Name() string {
	return o.name
}

func (o *Overshoot) Observe(s Sample) {
	if !o.started {
		o.started = true
		o.prev = s.Setpoint
		return
	}
	if s.Setpoint != o.prev {
		o.direction = math.Copysign(1, s.Setpoint-o.prev)
		o.prev = s.Setpoint
	}
	if o.direction == 0 {
		return
	}
	if excess := o.direction * (s.Temperature - s.Setpoint); excess > o.max {
		o.max = excess
	}
}

func (o *Overshoot) Value() float64 {
	return o.max
}

func (o *Overshoot) Reset() {
	o.started = false
	o.prev = 0
	o.direction = 0
	o.max = 0
}
