// Package control provides the temperature controllers under comparison.
//
// Every controller implements [Controller], returning an effort in [-1, 1]
// for a (current, target) pair:
//
//   - [OnOff]: stateless bang-bang law
//   - [PID]: textbook PID on inputs normalized by 50, no windup guard
//   - [AdaptivePID]: on-off seek after setpoint changes, then a PID law with
//     integral anti-windup and a low-pass filtered derivative
//
// Selection is by [Kind]:
//
//	ctrl, err := control.New(control.KindAdaptive, control.Gains{Prop: 2, Integ: 1}, 0.01)
//	if errors.Is(err, control.ErrInvalidGain) {
//	    // Prop or Integ was zero
//	}
//	u := ctrl.Control(plant.Temperature(), 20)
//
// [PID] implements [Instrumented] so callers can record its per-term
// contributions.
package control
