package control

// OnOff heats at full power below the setpoint and cools at full power above it.
type OnOff struct{}

func NewOnOff() *OnOff {
	return &OnOff{}
}

func (o *OnOff) Control(current, target float64) float64 {
	if current <= target {
		return 1
	}
	return -1
}
