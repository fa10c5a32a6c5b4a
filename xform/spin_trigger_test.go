package xform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
	"github.com/sarchlab/assassyn/xform"
)

var _ = Describe("RewriteSpinTriggers", func() {
	It("lowers a SpinTrigger into a synthesized agent module and a plain Trigger", func() {
		b := builder.NewSysBuilder("sys")

		squarer := b.CreateModule("squarer", []builder.PortInfo{{Name: "a", Type: ir.Int(32)}})
		sqPort := b.System().GetModule(squarer).Inputs()[0]
		sv := b.CreateFIFOPop(sqPort)
		b.CreateMul(sv, sv)

		b.SetCurrentModule(b.Driver())
		lock := b.CreateArray(ir.UInt(1), "lock", 1, []uint64{0})
		zero := b.GetConstInt(ir.UInt(1), 0)
		one := b.GetConstInt(ir.Int(32), 1)
		lockPtr := b.CreateArrayPtr(lock, zero)
		push := b.CreateFIFOPush(sqPort, one)

		before := len(b.System().Modules())
		spin := b.CreateSpinTrigger(lockPtr, squarer, push)

		rewrote := xform.RewriteSpinTriggers(b)
		Expect(rewrote).To(BeTrue())
		Expect(b.System().Arena().IsLive(spin)).To(BeFalse())
		Expect(len(b.System().Modules())).To(Equal(before + 1))

		Expect(xform.RewriteSpinTriggers(b)).To(BeFalse())
	})
})
