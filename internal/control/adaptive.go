package control

import (
	"fmt"
	"math"
)

const (
	adaptiveScale = 100.0

	// Margin is the band around the setpoint that ends a seek.
	Margin = 0.5

	integralCeiling = 3600.0

	filterTimeConstant = 5.0
	filterGain         = 1.0
	filterIntervalMs   = 1000.0
)

// Mode is the adaptive controller's operating state.
type Mode int

const (
	// ModeTracking runs the anti-windup PID law.
	ModeTracking Mode = iota
	// ModeSeeking drives at full on-off power toward a new setpoint.
	ModeSeeking
)

func (m Mode) String() string {
	switch m {
	case ModeTracking:
		return "tracking"
	case ModeSeeking:
		return "seeking"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// AdaptivePID switches to on-off control after every setpoint change and
// returns to a PID law with integral anti-windup and a filtered derivative
// once the temperature is within Margin of the setpoint.
//
// Transitions, evaluated at the start of every call:
//
//	any      -> seeking   when target != previous target
//	seeking  -> tracking  when target unchanged and |current-target| <= Margin
type AdaptivePID struct {
	Gains
	dt         float64
	onoff      *OnOff
	filter     *LowPass
	mode       Mode
	integral   float64
	prevErr    float64
	prevTarget float64
	output     float64
}

// NewAdaptivePID fails with ErrInvalidGain when Prop or Integ is zero, since
// both divide the error term.
func NewAdaptivePID(gains Gains, dt float64) (*AdaptivePID, error) {
	if err := ValidateAdaptive(gains); err != nil {
		return nil, err
	}
	return &AdaptivePID{
		Gains:  gains,
		dt:     dt,
		onoff:  NewOnOff(),
		filter: NewLowPass(filterTimeConstant, filterGain, filterIntervalMs),
		mode:   ModeTracking,
	}, nil
}

func ValidateAdaptive(gains Gains) error {
	if gains.Prop == 0 || math.IsNaN(gains.Prop) {
		return fmt.Errorf("%w: proportional gain must be non-zero, got %v", ErrInvalidGain, gains.Prop)
	}
	if gains.Integ == 0 || math.IsNaN(gains.Integ) {
		return fmt.Errorf("%w: integral gain must be non-zero, got %v", ErrInvalidGain, gains.Integ)
	}
	return nil
}

func (a *AdaptivePID) Control(current, target float64) float64 {
	if target != a.prevTarget {
		a.mode = ModeSeeking
	} else if a.mode == ModeSeeking && math.Abs(current-target) <= Margin {
		a.mode = ModeTracking
	}
	a.prevTarget = target

	err := target/adaptiveScale - current/adaptiveScale

	if a.mode == ModeSeeking {
		a.prevErr = err
		return a.onoff.Control(current, target)
	}

	limiter := 1.0
	if (a.output >= 1 && err > 0) || (a.output <= -1 && err < 0) || a.integral >= integralCeiling {
		limiter = 0
	}

	a.integral += adaptiveScale / a.Prop / a.Integ * err * a.dt * limiter
	derivative := adaptiveScale / a.Prop * a.Deriv * (err - a.prevErr) / a.dt
	filtered := a.filter.Update(derivative)
	proportional := adaptiveScale / a.Prop * err

	a.output = proportional + a.integral + filtered
	a.prevErr = err
	return clamp(a.output, -1, 1)
}

func (a *AdaptivePID) Mode() Mode {
	return a.mode
}

// Integral returns the raw accumulator.
func (a *AdaptivePID) Integral() float64 {
	return a.integral
}

func (a *AdaptivePID) Reset() {
	a.mode = ModeTracking
	a.integral = 0
	a.prevErr = 0
	a.prevTarget = 0
	a.output = 0
	a.filter.Reset()
}
