package sim_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/golang/mock/gomock"
	"github.com/sarchlab/assassyn/sim"
)

// These specs exercise the runtime-boundary half of the six end-to-end
// scenarios at the acceptance seeds list: the sim.Array/sim.FIFO
// mechanics a generated backend would drive cycle by cycle. Scenario 2
// (spin-lock agent) and scenario 5 (CSE across conditional blocks) are
// properties of the IR transform passes rather than the runtime, and are
// covered by xform/spin_trigger_test.go and xform/cse_test.go instead.
var _ = Describe("end-to-end scenarios", func() {
	var (
		ctrl *gomock.Controller
		sink *MockFailureSink
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		sink = NewMockFailureSink(ctrl)
	})

	It("scenario 1: adder asynchronous call logs k + k = 2k for 100 cycles", func() {
		counter := sim.NewArray[uint64](1)
		aFifo := sim.NewFIFO[uint64]()
		bFifo := sim.NewFIFO[uint64]()

		var lines []struct{ a, b, c uint64 }
		for cycle := 1; cycle <= 101; cycle++ {
			counter.Tick(cycle)
			aFifo.Tick(cycle)
			bFifo.Tick(cycle)

			av, aok := aFifo.Front()
			bv, bok := bFifo.Front()
			if aok && bok {
				lines = append(lines, struct{ a, b, c uint64 }{av, bv, av + bv})
				// adder's body pops both ports once it has consumed them.
				aFifo.SchedulePop(cycle+1, "adder", sink)
				bFifo.SchedulePop(cycle+1, "adder", sink)
			}

			v := counter.Payload[0] + 1
			counter.Write(0, sim.NewArrayWrite(cycle+1, 0, v, "driver"), sink)
			aFifo.SchedulePush(cycle+1, v, "driver", sink)
			bFifo.SchedulePush(cycle+1, v, "driver", sink)
		}

		Expect(lines).To(HaveLen(100))
		for k, l := range lines {
			want := uint64(k + 1)
			Expect(l.a).To(Equal(want))
			Expect(l.b).To(Equal(want))
			Expect(l.c).To(Equal(2 * want))
		}
	})

	It("scenario 3: array partition with dynamic index matches a host reference", func() {
		partitions := [4]*sim.Array[uint64]{
			sim.NewArray[uint64](1), sim.NewArray[uint64](1),
			sim.NewArray[uint64](1), sim.NewArray[uint64](1),
		}
		counter := sim.NewArray[uint64](1)
		var host [4]uint64

		for cycle := 1; cycle <= 50; cycle++ {
			for _, p := range partitions {
				p.Tick(cycle)
			}
			counter.Tick(cycle)

			v := counter.Payload[0]
			idx0 := v % 4
			idx1 := (v + 1) % 4
			val0 := uint32(v * v) // low 32 bits
			val1 := 2 * (v + 1)

			sum := partitions[idx0].Payload[0] + partitions[idx1].Payload[0]
			hostRef := host[idx0] + host[idx1]
			Expect(sum).To(Equal(hostRef))

			partitions[idx0].Write(0, sim.NewArrayWrite(cycle+1, 0, uint64(val0), "driver"), sink)
			partitions[idx1].Write(0, sim.NewArrayWrite(cycle+1, 0, val1, "driver"), sink)
			counter.Write(0, sim.NewArrayWrite(cycle+1, 0, v+1, "driver"), sink)
			host[idx0], host[idx1] = uint64(val0), val1
		}
	})

	It("scenario 4: wait-until on FIFO valid never pops an empty buffer", func() {
		a := sim.NewFIFO[int]()
		b := sim.NewFIFO[int]()

		fires, pushesA, pushesB := 0, 0, 0
		for cycle := 1; cycle <= 100; cycle++ {
			a.Tick(cycle)
			b.Tick(cycle)

			_, aok := a.Front()
			_, bok := b.Front()
			if aok && bok {
				a.SchedulePop(cycle+1, "body", sink)
				b.SchedulePop(cycle+1, "body", sink)
				fires++
			}

			// producer A pushes every cycle, producer B every third cycle.
			a.SchedulePush(cycle+1, cycle, "producerA", sink)
			pushesA++
			if cycle%3 == 0 {
				b.SchedulePush(cycle+1, cycle, "producerB", sink)
				pushesB++
			}
		}

		Expect(fires).To(BeNumerically("<=", pushesA))
		Expect(fires).To(BeNumerically("<=", pushesB))
		Expect(fires).To(BeNumerically(">", 0))
	})

	It("scenario 6: 256-bit Fibonacci satisfies c_k = a_k + b_k for 100 cycles", func() {
		a := sim.NewArrayWithInit([]*big.Int{big.NewInt(0)})
		b := sim.NewArrayWithInit([]*big.Int{big.NewInt(1)})

		hostA, hostB := big.NewInt(0), big.NewInt(1)
		for cycle := 1; cycle <= 100; cycle++ {
			av, bv := a.Payload[0], b.Payload[0]
			c := new(big.Int).Add(av, bv)

			hostC := new(big.Int).Add(hostA, hostB)
			Expect(c.Cmp(hostC)).To(Equal(0))
			Expect(av.Cmp(hostA)).To(Equal(0))
			Expect(bv.Cmp(hostB)).To(Equal(0))

			a.Write(0, sim.NewArrayWrite(cycle+1, 0, bv, "driver"), sink)
			b.Write(0, sim.NewArrayWrite(cycle+1, 0, c, "driver"), sink)
			a.Tick(cycle + 1)
			b.Tick(cycle + 1)

			hostA, hostB = hostB, hostC
		}
	})
})
