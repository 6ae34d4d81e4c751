package control

import (
	"fmt"
	"strings"
)

// Controller maps the measured temperature and the setpoint to an effort in
// [-1, 1].
type Controller interface {
	Control(current, target float64) float64
}

// Instrumented controllers expose the contributions of their last update.
type Instrumented interface {
	Last() Terms
}

// Gains is the (PROP, INTEG, DERIV) triple supplied by the operator.
type Gains struct {
	Prop  float64 `yaml:"prop" json:"prop"`
	Integ float64 `yaml:"integ" json:"integ"`
	Deriv float64 `yaml:"deriv" json:"deriv"`
}

func (g Gains) String() string {
	return fmt.Sprintf("P=%g I=%g D=%g", g.Prop, g.Integ, g.Deriv)
}

type Kind int

const (
	KindOnOff Kind = iota
	KindPID
	KindAdaptive
)

// Kinds lists every controller in comparison order.
var Kinds = []Kind{KindOnOff, KindPID, KindAdaptive}

func (k Kind) String() string {
	switch k {
	case KindOnOff:
		return "onoff"
	case KindPID:
		return "pid"
	case KindAdaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "onoff", "on-off", "bangbang":
		return KindOnOff, nil
	case "pid", "standard":
		return KindPID, nil
	case "adaptive", "pid2":
		return KindAdaptive, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New builds a fresh controller of the given kind. Each call returns
// independent state.
func New(kind Kind, gains Gains, dt float64) (Controller, error) {
	switch kind {
	case KindOnOff:
		return NewOnOff(), nil
	case KindPID:
		return NewPID(gains, dt), nil
	case KindAdaptive:
		return NewAdaptivePID(gains, dt)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
