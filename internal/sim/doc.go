// Package sim drives the controller comparison.
//
// A [Driver] owns one plant per controller kind, steps all of them against
// the same [Schedule] with a fixed dt, and returns a [Result] of time series:
// the setpoint, a zero baseline, every pair's temperature and effort, and the
// standard PID's per-term diagnostics.
//
//	d, err := sim.NewDriver(sim.DefaultConfig(), control.Gains{Prop: 2, Integ: 1, Deriv: 0.05})
//	if err != nil {
//	    return err
//	}
//	res, err := d.Run(ctx)
//
// Runs are single-threaded and deterministic: identical gains and
// configuration give bit-identical series.
package sim
