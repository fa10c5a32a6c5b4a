package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/golang/mock/gomock"
	"github.com/sarchlab/assassyn/sim"
)

type countingTickable struct{ ticks int }

func (c *countingTickable) Tick(cycle int) { c.ticks++ }

var _ = Describe("Engine", func() {
	var (
		ctrl *gomock.Controller
		sink *MockFailureSink
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		sink = NewMockFailureSink(ctrl)
	})

	It("ticks every registered component once per step", func() {
		e := sim.NewEngine(sink, 10, 10)
		c := &countingTickable{}
		e.Register(c)
		e.Step(true)
		e.Step(true)
		Expect(c.ticks).To(Equal(2))
		Expect(e.Cycle()).To(Equal(2))
	})

	It("stops once the simulation threshold is reached", func() {
		e := sim.NewEngine(sink, 2, 100)
		Expect(e.Step(true)).To(BeTrue())
		Expect(e.Step(true)).To(BeFalse())
	})

	It("aborts via the sink once the idle threshold is exceeded", func() {
		sink.EXPECT().Fatal(gomock.Any())
		e := sim.NewEngine(sink, 100, 2)
		Expect(e.Step(false)).To(BeTrue())
		Expect(e.Step(false)).To(BeTrue())
		Expect(e.Step(false)).To(BeFalse())
	})

	It("stops immediately after Finish is requested", func() {
		e := sim.NewEngine(sink, 100, 100)
		e.Step(true)
		e.Finish()
		Expect(e.Step(true)).To(BeFalse())
	})
})
