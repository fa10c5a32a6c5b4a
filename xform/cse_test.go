package xform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
	"github.com/sarchlab/assassyn/xform"
)

var _ = Describe("CommonCodeElimination", func() {
	It("hoists two identical comparisons guarding distinct conditional blocks into one", func() {
		b := builder.NewSysBuilder("sys")
		b.SetCurrentModule(b.Driver())

		counter := b.CreateArray(ir.Int(32), "cnt", 1, []uint64{0})
		zero := b.GetConstInt(ir.UInt(1), 0)
		hundred := b.GetConstInt(ir.Int(32), 100)
		cnt := b.CreateArrayRead(counter, zero)

		cond1 := b.CreateIlt(cnt, hundred)
		b.CreateCondition(cond1)
		b.CreateLog(b.GetConstStr("branch one"))
		b.SetCurrentModule(b.Driver())

		cond2 := b.CreateIlt(cnt, hundred)
		block2 := b.CreateCondition(cond2)
		b.CreateLog(b.GetConstStr("branch two"))
		b.SetCurrentModule(b.Driver())

		xform.CommonCodeElimination(b)

		Expect(b.System().Arena().IsLive(cond2)).To(BeFalse())
		Expect(b.System().Arena().IsLive(cond1)).To(BeTrue())
		Expect(b.System().GetBlock(block2).Kind().Payload).To(Equal(cond1))
	})

	It("leaves non-duplicate comparisons alone", func() {
		b := builder.NewSysBuilder("sys")
		b.SetCurrentModule(b.Driver())

		counter := b.CreateArray(ir.Int(32), "cnt", 1, []uint64{0})
		zero := b.GetConstInt(ir.UInt(1), 0)
		hundred := b.GetConstInt(ir.Int(32), 100)
		cnt := b.CreateArrayRead(counter, zero)
		other := b.GetConstInt(ir.Int(32), 7)

		cond1 := b.CreateIlt(cnt, hundred)
		b.CreateCondition(cond1)
		b.CreateLog(b.GetConstStr("branch one"))
		b.SetCurrentModule(b.Driver())

		cond2 := b.CreateIlt(cnt, other)
		b.CreateCondition(cond2)
		b.CreateLog(b.GetConstStr("branch two"))
		b.SetCurrentModule(b.Driver())

		xform.CommonCodeElimination(b)

		Expect(b.System().Arena().IsLive(cond1)).To(BeTrue())
		Expect(b.System().Arena().IsLive(cond2)).To(BeTrue())
	})
})
