// Package physics provides the process models driven by the controllers.
//
// [Thermal] implements [dynamo.System] for a first-order thermal process:
//
//	dT/dt = HeatTransfer * (target(u) - T)
//
// where target(u) interpolates from Ambient toward High for positive effort
// and toward Low for negative effort. [Plant] pairs a model with an
// integrator and a current temperature.
//
// # Example
//
//	plant := physics.NewPlant(physics.NewThermal(), integrators.NewEuler(), 0, 0.01)
//	for i := 0; i < 100; i++ {
//	    plant.Step(1)
//	}
//	fmt.Println(plant.Temperature())
package physics
