package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/golang/mock/gomock"
	"github.com/sarchlab/assassyn/sim"
)

var _ = Describe("FIFO", func() {
	var (
		ctrl *gomock.Controller
		sink *MockFailureSink
		f    *sim.FIFO[int]
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		sink = NewMockFailureSink(ctrl)
		f = sim.NewFIFO[int]()
	})

	It("starts empty", func() {
		Expect(f.IsEmpty()).To(BeTrue())
		_, ok := f.Front()
		Expect(ok).To(BeFalse())
	})

	It("appends a due push to the tail", func() {
		f.SchedulePush(1, 7, "m", sink)
		f.Tick(1)
		Expect(f.IsEmpty()).To(BeFalse())
		v, ok := f.Front()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(7))
	})

	It("drains a pop before a same-cycle push lands", func() {
		f.SchedulePush(1, 1, "m", sink)
		f.Tick(1)
		f.SchedulePush(2, 2, "m", sink)
		f.SchedulePop(2, "m", sink)
		f.Tick(2)
		Expect(f.Payload).To(Equal([]int{2}))
	})

	It("does not pop an empty buffer", func() {
		f.SchedulePop(1, "m", sink)
		Expect(func() { f.Tick(1) }).NotTo(Panic())
		Expect(f.IsEmpty()).To(BeTrue())
	})
})
