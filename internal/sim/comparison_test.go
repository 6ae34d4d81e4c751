package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/thermsim/internal/control"
	"github.com/san-kum/thermsim/internal/sim"
)

var _ = Describe("Comparison run", func() {
	var (
		cfg   sim.Config
		gains control.Gains
	)

	BeforeEach(func() {
		cfg = sim.DefaultConfig()
		gains = control.Gains{Prop: 2, Integ: 1, Deriv: 0.05}
	})

	run := func() *sim.Result {
		d, err := sim.NewDriver(cfg, gains)
		Expect(err).NotTo(HaveOccurred())
		res, err := d.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		return res
	}

	It("runs the pairs in comparison order", func() {
		res := run()
		Expect(res.Pairs).To(HaveLen(3))
		Expect(res.Pairs[0].Kind).To(Equal(control.KindOnOff))
		Expect(res.Pairs[1].Kind).To(Equal(control.KindPID))
		Expect(res.Pairs[2].Kind).To(Equal(control.KindAdaptive))
	})

	It("starts every plant at the initial temperature", func() {
		cfg.InitialTemp = -4
		res := run()
		for _, p := range res.Pairs {
			Expect(p.Temperature.Points[0].V).To(Equal(-4.0))
		}
	})

	It("keeps every effort inside the actuator range", func() {
		res := run()
		for _, p := range res.Pairs {
			for _, u := range p.Effort.Values() {
				Expect(u).To(BeNumerically(">=", -1))
				Expect(u).To(BeNumerically("<=", 1))
			}
		}
	})

	It("brings the adaptive pair near the held setpoint", func() {
		res := run()
		adaptive := res.Pair(control.KindAdaptive).Temperature.Values()
		// index 6999 is t=69.99, the end of the 20 degree hold
		Expect(adaptive[6999]).To(BeNumerically("~", 20, 2))
	})

	It("follows a custom schedule", func() {
		cfg.Duration = 10
		cfg.Schedule = sim.Schedule{{From: 0, Target: 10}, {From: 2, Target: -5}}
		res := run()
		Expect(res.Setpoint.Len()).To(Equal(1000))
		Expect(res.Setpoint.Points[199].V).To(Equal(10.0))
		Expect(res.Setpoint.Points[200].V).To(Equal(-5.0))
	})

	Context("with unusable gains", func() {
		It("refuses to build a driver", func() {
			_, err := sim.NewDriver(cfg, control.Gains{Prop: 0, Integ: 1})
			Expect(err).To(MatchError(control.ErrInvalidGain))
		})
	})
})
