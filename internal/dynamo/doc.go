// Package dynamo provides core simulation primitives for the thermal lab.
//
// The package defines the fundamental interfaces and types for numerical
// simulation of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper interface
//
// # Example
//
//	model := physics.NewThermal()
//	plant := physics.NewPlant(model, integrators.NewEuler(), 0, 0.01)
//	plant.Step(0.4)
//
// Integrators return a new State and never modify their input.
package dynamo
