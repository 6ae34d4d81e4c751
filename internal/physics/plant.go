package physics

import "github.com/san-kum/thermsim/internal/dynamo"

// Plant owns the mutable temperature of one simulated process and advances
// it one fixed step at a time.
type Plant struct {
	model      *Thermal
	integrator dynamo.Integrator
	state      dynamo.State
	u          dynamo.Control
	t, dt      float64
}

func NewPlant(model *Thermal, integrator dynamo.Integrator, initial, dt float64) *Plant {
	return &Plant{
		model:      model,
		integrator: integrator,
		state:      dynamo.State{initial},
		u:          make(dynamo.Control, 1),
		dt:         dt,
	}
}

func (p *Plant) Temperature() float64 {
	return p.state[0]
}

// Step applies effort for one dt. Stability requires HeatTransfer*dt << 1,
// which the caller is responsible for.
func (p *Plant) Step(effort float64) {
	p.u[0] = effort
	p.state = p.integrator.Step(p.model, p.state, p.u, p.t, p.dt)
	p.t += p.dt
}
