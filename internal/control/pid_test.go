package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPIDZeroGains(t *testing.T) {
	pid := NewPID(Gains{}, testDt)

	inputs := [][2]float64{{0, 20}, {35, 20}, {-10, 5}, {5, 5}, {49, -3}}
	for _, in := range inputs {
		assert.Equal(t, 0.0, pid.Control(in[0], in[1]), "Control(%v, %v)", in[0], in[1])
	}
}

func TestPIDProportionalStep(t *testing.T) {
	pid := NewPID(Gains{Prop: 1}, testDt)

	u := pid.Control(0, 20)

	assert.Equal(t, 0.4, u)
	assert.Equal(t, 0.4, pid.Last().Error)
	assert.Equal(t, 0.4, pid.Last().Proportional)
}

func TestPIDClampsOutput(t *testing.T) {
	pid := NewPID(Gains{Prop: 10}, testDt)

	assert.Equal(t, 1.0, pid.Control(0, 20))
	assert.Equal(t, -1.0, pid.Control(40, 0))
}

func TestPIDTermsSum(t *testing.T) {
	pid := NewPID(Gains{Prop: 0.5, Integ: 0.2, Deriv: 0.001}, testDt)

	pid.Control(0, 20)
	u := pid.Control(1, 20)
	terms := pid.Last()

	assert.Equal(t, u, terms.Output)
	assert.Equal(t, clamp(terms.Proportional+terms.Integral+terms.Derivative, -1, 1), terms.Output)
	assert.InDelta(t, 0.001*(0.38-0.4)/testDt, terms.Derivative, 1e-12)
}

func TestPIDIntegralHasNoWindupGuard(t *testing.T) {
	pid := NewPID(Gains{Prop: 1, Integ: 1}, testDt)

	const calls = 10000
	for i := 0; i < calls; i++ {
		pid.Control(0, 20)
	}

	// Saturated the whole time, yet the accumulator kept growing.
	assert.InDelta(t, calls*0.4*testDt, pid.GetParams()["integral"], 1e-9)
	assert.Equal(t, 1.0, pid.Last().Output)
}

func TestPIDReset(t *testing.T) {
	pid := NewPID(Gains{Prop: 1, Integ: 1, Deriv: 1}, testDt)
	first := pid.Control(0, 20)
	pid.Control(3, 20)

	pid.Reset()

	assert.Equal(t, first, pid.Control(0, 20))
}
