package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/golang/mock/gomock"
	"github.com/sarchlab/assassyn/sim"
)

var _ = Describe("Array", func() {
	var (
		ctrl *gomock.Controller
		sink *MockFailureSink
		a    *sim.Array[uint64]
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		sink = NewMockFailureSink(ctrl)
		a = sim.NewArray[uint64](4)
	})

	It("applies a due write to the target cell", func() {
		a.Write(0, sim.NewArrayWrite(1, 2, uint64(42), "m"), sink)
		a.Tick(1)
		Expect(a.Payload[2]).To(Equal(uint64(42)))
	})

	It("ignores an out-of-bounds address silently", func() {
		a.Write(0, sim.NewArrayWrite(1, 99, uint64(7), "m"), sink)
		Expect(func() { a.Tick(1) }).NotTo(Panic())
	})

	It("resolves a same-address collision across ports to the last drained write", func() {
		a.Write(0, sim.NewArrayWrite(1, 0, uint64(1), "portA"), sink)
		a.Write(1, sim.NewArrayWrite(1, 0, uint64(2), "portB"), sink)
		a.Tick(1)
		Expect(a.Payload[0]).To(Equal(uint64(2)))
	})

	It("does not collide when two ports target different addresses the same cycle", func() {
		a.Write(0, sim.NewArrayWrite(1, 0, uint64(1), "portA"), sink)
		a.Write(1, sim.NewArrayWrite(1, 1, uint64(2), "portB"), sink)
		a.Tick(1)
		Expect(a.Payload[0]).To(Equal(uint64(1)))
		Expect(a.Payload[1]).To(Equal(uint64(2)))
	})
})
