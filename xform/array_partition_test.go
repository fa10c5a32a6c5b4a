package xform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
	"github.com/sarchlab/assassyn/xform"
)

var _ = Describe("RewriteArrayPartitions", func() {
	It("splits a FullyPartitioned array into one array per cell and removes the original", func() {
		b := builder.NewSysBuilder("sys")
		b.SetCurrentModule(b.Driver())

		arr := b.CreateArray(ir.Int(32), "a", 4, nil)
		b.System().GetArray(arr).AddAttr(ir.ArrayFullyPartitioned)

		idx := b.GetConstInt(ir.UInt(2), 2)
		v := b.CreateArrayRead(arr, idx)
		b.CreateLog(b.GetConstStr("%d"), v)

		before := len(b.System().Arrays())
		xform.RewriteArrayPartitions(b)
		after := b.System().Arrays()

		Expect(b.System().Arena().IsLive(arr)).To(BeFalse())
		Expect(len(after)).To(Equal(before - 1 + 4))
	})

	It("leaves an array with no ArrayFullyPartitioned attribute untouched", func() {
		b := builder.NewSysBuilder("sys")
		b.SetCurrentModule(b.Driver())

		arr := b.CreateArray(ir.Int(32), "plain", 4, nil)
		idx := b.GetConstInt(ir.UInt(2), 1)
		b.CreateArrayRead(arr, idx)

		xform.RewriteArrayPartitions(b)

		Expect(b.System().Arena().IsLive(arr)).To(BeTrue())
	})
})
