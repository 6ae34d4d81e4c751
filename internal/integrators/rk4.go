package integrators

import "github.com/san-kum/thermsim/internal/dynamo"

// RK4 is the classical fourth-order Runge-Kutta stepper. Effort is held
// constant across the step. Stage buffers are reused, so one RK4 must not
// be shared between plants.
type RK4 struct {
	k     [4]dynamo.State
	probe dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) resize(n int) {
	if len(r.probe) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(dynamo.State, n)
	}
	r.probe = make(dynamo.State, n)
}

// stage evaluates the derivative at x + h*from and stores it in dst.
func (r *RK4) stage(dyn dynamo.System, x, from dynamo.State, u dynamo.Control, t, h float64, dst dynamo.State) {
	for i := range x {
		r.probe[i] = x[i]
		if from != nil {
			r.probe[i] += h * from[i]
		}
	}
	copy(dst, dyn.Derive(r.probe, u, t+h))
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	r.resize(len(x))
	half := dt / 2

	r.stage(dyn, x, nil, u, t, 0, r.k[0])
	r.stage(dyn, x, r.k[0], u, t, half, r.k[1])
	r.stage(dyn, x, r.k[1], u, t, half, r.k[2])
	r.stage(dyn, x, r.k[2], u, t, dt, r.k[3])

	next := make(dynamo.State, len(x))
	for i := range x {
		next[i] = x[i] + dt/6*(r.k[0][i]+2*r.k[1][i]+2*r.k[2][i]+r.k[3][i])
	}
	return next
}
