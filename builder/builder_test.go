package builder_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
)

func TestBuilder(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Builder Suite")
}

var _ = Describe("SysBuilder", func() {
	It("wires a FIFOPop's operand to the port it reads", func() {
		b := builder.NewSysBuilder("sys")
		m := b.CreateModule("m", []builder.PortInfo{{Name: "a", Type: ir.Int(32)}})
		port := b.System().GetModule(m).Inputs()[0]

		popped := b.CreateFIFOPop(port)
		popExpr := b.System().GetExpr(popped)
		Expect(popExpr.Operands()).To(HaveLen(1))

		opnd := ir.MustGet[*ir.Operand](b.System().Arena(), popExpr.Operands()[0])
		Expect(opnd.Value()).To(Equal(port))
	})

	It("updates both sides of the def-use edge on ReplaceAllUsesWith", func() {
		b := builder.NewSysBuilder("sys")
		b.SetCurrentModule(b.Driver())
		one := b.GetConstInt(ir.Int(32), 1)
		two := b.GetConstInt(ir.Int(32), 2)
		sum := b.CreateAdd(one, two)

		replacement := b.GetConstInt(ir.Int(32), 99)
		b.ReplaceAllUsesWith(one, replacement)

		sumExpr := b.System().GetExpr(sum)
		lhs := ir.MustGet[*ir.Operand](b.System().Arena(), sumExpr.Operands()[0])
		Expect(lhs.Value()).To(Equal(replacement))
	})

	It("erases a dead expression once its users are gone", func() {
		b := builder.NewSysBuilder("sys")
		b.SetCurrentModule(b.Driver())
		one := b.GetConstInt(ir.Int(32), 1)
		two := b.GetConstInt(ir.Int(32), 2)
		sum := b.CreateAdd(one, two)
		dead := b.CreateAdd(sum, sum)

		Expect(func() { b.EraseFromParent(dead) }).NotTo(Panic())
		Expect(b.System().Arena().IsLive(dead)).To(BeFalse())
	})
})
