package physics

import (
	"fmt"

	"github.com/san-kum/thermsim/internal/dynamo"
)

const (
	DefaultAmbient      = 15.0
	DefaultHigh         = 50.0
	DefaultLow          = -10.0
	DefaultHeatTransfer = 0.1
)

// Thermal is a single-state first-order process: the temperature relaxes
// exponentially toward the heat level commanded by a normalized effort.
type Thermal struct {
	Ambient      float64
	High         float64
	Low          float64
	HeatTransfer float64
}

func NewThermal() *Thermal {
	return &Thermal{
		Ambient:      DefaultAmbient,
		High:         DefaultHigh,
		Low:          DefaultLow,
		HeatTransfer: DefaultHeatTransfer,
	}
}

func (th *Thermal) StateDim() int {
	return 1
}

func (th *Thermal) ControlDim() int {
	return 1
}

// HeatTarget maps an effort in [-1, 1] to the temperature the process is
// driven toward.
func (th *Thermal) HeatTarget(effort float64) float64 {
	switch {
	case effort > 0:
		return lerp(th.Ambient, th.High, effort)
	case effort < 0:
		return lerp(th.Ambient, th.Low, -effort)
	default:
		return th.Ambient
	}
}

func (th *Thermal) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	effort := 0.0
	if len(u) > 0 {
		effort = u[0]
	}
	return dynamo.State{th.HeatTransfer * (th.HeatTarget(effort) - x[0])}
}

func (th *Thermal) GetParams() map[string]float64 {
	return map[string]float64{
		"ambient":       th.Ambient,
		"high":          th.High,
		"low":           th.Low,
		"heat_transfer": th.HeatTransfer,
	}
}

func (th *Thermal) SetParam(name string, value float64) error {
	switch name {
	case "ambient":
		th.Ambient = value
	case "high":
		th.High = value
	case "low":
		th.Low = value
	case "heat_transfer":
		th.HeatTransfer = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

func lerp(a, b, t float64) float64 {
	return a*(1-t) + t*b
}
