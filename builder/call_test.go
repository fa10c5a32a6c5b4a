package builder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
)

var _ = Describe("PushBind", func() {
	It("auto-triggers once an EagerCallee bind is fully bound", func() {
		b := builder.NewSysBuilder("sys")
		callee := b.CreateModule("squarer", []builder.PortInfo{{Name: "a", Type: ir.Int(32)}})
		b.System().GetModule(callee).AddAttr(ir.EagerCallee, nil)

		b.SetCurrentModule(b.Driver())
		one := b.GetConstInt(ir.Int(32), 1)
		bind := b.GetInitBind(callee)
		b.PushBind(bind, one, false)

		body := b.System().GetBlock(b.System().GetModule(b.Driver()).Body())
		items := body.Items()
		Expect(items).NotTo(BeEmpty())

		last := b.System().GetExpr(items[len(items)-1])
		Expect(last.Opcode().Tag()).To(Equal(ir.OpTrigger))
		opnd := ir.MustGet[*ir.Operand](b.System().Arena(), last.Operands()[0])
		Expect(opnd.Value()).To(Equal(callee))
	})

	It("does not auto-trigger a fully bound callee without EagerCallee", func() {
		b := builder.NewSysBuilder("sys")
		callee := b.CreateModule("squarer", []builder.PortInfo{{Name: "a", Type: ir.Int(32)}})

		b.SetCurrentModule(b.Driver())
		one := b.GetConstInt(ir.Int(32), 1)
		bind := b.GetInitBind(callee)
		b.PushBind(bind, one, false)

		body := b.System().GetBlock(b.System().GetModule(b.Driver()).Body())
		for _, h := range body.Items() {
			if h.Kind == ir.KindExpr {
				Expect(b.System().GetExpr(h).Opcode().Tag()).NotTo(Equal(ir.OpTrigger))
			}
		}
	})
})
