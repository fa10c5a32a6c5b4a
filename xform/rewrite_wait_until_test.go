package xform_test

import (
	"bytes"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
	"github.com/sarchlab/assassyn/simlog"
	"github.com/sarchlab/assassyn/xform"
)

var _ = Describe("RewriteWaitUntil", func() {
	It("lifts a two-port module's plain body into WaitUntil(valid(a) & valid(b))", func() {
		b := builder.NewSysBuilder("sys")
		m := b.CreateModule("joiner", []builder.PortInfo{
			{Name: "a", Type: ir.Int(32)},
			{Name: "b", Type: ir.Int(32)},
		})
		ports := b.System().GetModule(m).Inputs()
		av := b.CreateFIFOPop(ports[0])
		bv := b.CreateFIFOPop(ports[1])
		b.CreateLog(b.GetConstStr("%d %d"), av, bv)

		xform.RewriteWaitUntil(b)

		body := b.System().GetBlock(b.System().GetModule(m).Body())
		Expect(body.Kind().Tag).To(Equal(ir.BlockWaitUntil))

		cond := b.System().GetBlock(body.Kind().Payload)
		condExpr := b.System().GetExpr(cond.Value())
		Expect(condExpr.Opcode()).To(Equal(ir.MakeBinary(ir.BitwiseAnd)))
	})

	It("leaves a zero-port module's body alone and emits a diagnostic", func() {
		b := builder.NewSysBuilder("sys")
		m := b.CreateModule("source", nil)
		b.SetCurrentModule(m)
		b.CreateLog(b.GetConstStr("tick"))

		var buf bytes.Buffer
		prev := simlog.Default
		simlog.Default = slog.New(slog.NewTextHandler(&buf, nil))
		defer func() { simlog.Default = prev }()

		xform.RewriteWaitUntil(b)

		body := b.System().GetBlock(b.System().GetModule(m).Body())
		Expect(body.Kind().Tag).To(Equal(ir.BlockPlain))
		Expect(buf.String()).To(ContainSubstring("source"))
	})

	It("never touches the driver module", func() {
		b := builder.NewSysBuilder("sys")
		b.SetCurrentModule(b.Driver())
		b.CreateLog(b.GetConstStr("tick"))

		xform.RewriteWaitUntil(b)

		body := b.System().GetBlock(b.System().GetModule(b.Driver()).Body())
		Expect(body.Kind().Tag).To(Equal(ir.BlockPlain))
	})
})
