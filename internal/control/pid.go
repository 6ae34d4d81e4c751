package control

// pidScale maps the plant's dynamic range onto unit error.
const pidScale = 50.0

// Terms holds the gain-weighted contributions of a single PID update.
type Terms struct {
	Proportional float64
	Integral     float64
	Derivative   float64
	Output       float64
	Error        float64
}

// PID is the textbook law on normalized inputs. The integral accumulates on
// every call; there is no windup guard.
type PID struct {
	Gains
	dt       float64
	integral float64
	prevErr  float64
	last     Terms
}

func NewPID(gains Gains, dt float64) *PID {
	return &PID{
		Gains: gains,
		dt:    dt,
	}
}

func (p *PID) Control(current, target float64) float64 {
	current /= pidScale
	target /= pidScale
	err := target - current

	p.integral += err * p.dt
	derivative := (err - p.prevErr) / p.dt

	proportional := p.Prop * err
	integral := p.Integ * p.integral
	deriv := p.Deriv * derivative

	output := clamp(proportional+integral+deriv, -1, 1)
	p.prevErr = err

	p.last = Terms{
		Proportional: proportional,
		Integral:     integral,
		Derivative:   deriv,
		Output:       output,
		Error:        err,
	}
	return output
}

// Last returns the terms computed by the most recent Control call.
func (p *PID) Last() Terms {
	return p.last
}

// Reset clears integral and derivative state
func (p *PID) Reset() {
	p.integral = 0
	p.prevErr = 0
	p.last = Terms{}
}

// GetParams returns tunable parameters for live adjustment
func (p *PID) GetParams() map[string]float64 {
	return map[string]float64{
		"prop":     p.Prop,
		"integ":    p.Integ,
		"deriv":    p.Deriv,
		"integral": p.integral,
	}
}
