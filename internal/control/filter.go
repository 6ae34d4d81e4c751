package control

// LowPass is a single-pole filter with a fixed nominal update interval in
// milliseconds. The interval is independent of the simulation step.
type LowPass struct {
	TimeConstant float64
	Gain         float64
	IntervalMs   float64
	out          float64
}

func NewLowPass(timeConstant, gain, intervalMs float64) *LowPass {
	return &LowPass{
		TimeConstant: timeConstant,
		Gain:         gain,
		IntervalMs:   intervalMs,
	}
}

func (f *LowPass) Update(in float64) float64 {
	f.out += (f.IntervalMs / 1000 / (f.TimeConstant + f.IntervalMs/1000)) * (f.Gain*in - f.out)
	return f.out
}

func (f *LowPass) Value() float64 {
	return f.out
}

func (f *LowPass) Reset() {
	f.out = 0
}
