package metrics

// Sample is one step of a controller/plant pair as seen by a metric.
type Sample struct {
	T           float64
	Temperature float64
	Setpoint    float64
	Effort      float64
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Factory builds a fresh metric; every pair gets its own instance.
type Factory func() Metric

// Defaults returns the control-quality metrics recorded for every pair.
func Defaults(dt float64) []Factory {
	return []Factory{
		func() Metric { return NewIAE(dt) },
		func() Metric { return NewOvershoot() },
		func() Metric { return NewControlEffort() },
		func() Metric { return NewSaturation() },
	}
}
