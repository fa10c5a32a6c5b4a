package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/golang/mock/gomock"
	"github.com/sarchlab/assassyn/sim"
)

var _ = Describe("XEQ", func() {
	var (
		ctrl *gomock.Controller
		sink *MockFailureSink
		q    *sim.XEQ[sim.FIFOPop]
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		sink = NewMockFailureSink(ctrl)
		q = sim.NewXEQ[sim.FIFOPop]()
	})

	It("pops nothing from an empty queue", func() {
		_, ok := q.Pop(0)
		Expect(ok).To(BeFalse())
	})

	It("returns the earliest event at or before the current cycle", func() {
		q.Push(sim.NewFIFOPop(5, "moduleA"), sink)
		_, ok := q.Pop(4)
		Expect(ok).To(BeFalse())
		e, ok := q.Pop(5)
		Expect(ok).To(BeTrue())
		Expect(e.Cycle()).To(Equal(5))
		_, ok = q.Pop(5)
		Expect(ok).To(BeFalse())
	})

	It("aborts via the sink on a same-cycle collision, naming both pushers", func() {
		sink.EXPECT().Fatal(gomock.Any()).Do(func(msg string) {
			Expect(msg).To(ContainSubstring("moduleA"))
			Expect(msg).To(ContainSubstring("moduleB"))
		})
		q.Push(sim.NewFIFOPop(3, "moduleA"), sink)
		q.Push(sim.NewFIFOPop(3, "moduleB"), sink)
	})
})

var _ = Describe("Cyclize", func() {
	It("splits the stamp into cycle and sub-cycle half", func() {
		Expect(sim.Cyclize(307)).To(Equal("Cycle @3.07"))
		Expect(sim.Cyclize(0)).To(Equal("Cycle @0.00"))
	})
})
