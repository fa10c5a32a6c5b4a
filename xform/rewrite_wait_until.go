package xform

import (
	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
	"github.com/sarchlab/assassyn/simlog"
)

// RewriteWaitUntil lifts every module whose body is still an
// unconditional (Plain) block into a WaitUntil block guarded by the
// logical AND of every input FIFO's valid flag, so a module only runs
// once all of its expected arguments have arrived. The driver and
// testbench modules are unconditionally scheduled every cycle and are
// skipped, as is any module whose body already carries an explicit
// WaitUntil (built by hand, e.g. a synthesized spin-trigger agent) or
// that is marked Systolic. Mirrors
// eir/src/xform/rewrite_wait_until.rs's `rewrite_wait_until`.
func RewriteWaitUntil(b *builder.SysBuilder) {
	sys := b.System()

	var toRewrite []ir.BaseNode
	for _, mh := range sys.Modules() {
		m := sys.GetModule(mh)
		switch m.Name() {
		case "driver", "testbench":
			continue
		}
		if m.HasAttr(ir.Systolic) {
			continue
		}
		body := sys.GetBlock(m.Body())
		switch body.Kind().Tag {
		case ir.BlockPlain:
			if len(m.Inputs()) == 0 {
				simlog.Default.Warn("RewriteWaitUntil: module has no input ports, left unchanged",
					"module", m.Name())
				continue
			}
			toRewrite = append(toRewrite, mh)
		case ir.BlockWaitUntil:
			// Respect an existing hand-built wait-until.
		default:
			ir.Violate("RewriteWaitUntil: module %s has unexpected body kind", m.Name())
		}
	}

	for _, mh := range toRewrite {
		m := sys.GetModule(mh)
		ports := append([]ir.BaseNode(nil), m.Inputs()...)
		body := m.Body()

		b.SetCurrentModule(mh)
		b.SetCurrentBlock(body)
		b.SetCurrentBlockWaitUntil()

		waitBlock := sys.GetBlock(body)
		if waitBlock.Kind().Tag != ir.BlockWaitUntil {
			ir.Violate("RewriteWaitUntil: SetCurrentBlockWaitUntil did not install a WaitUntil kind")
		}
		cond := waitBlock.Kind().Payload
		b.SetCurrentBlock(cond)

		var valid ir.BaseNode
		for _, port := range ports {
			v := b.CreateFIFOValid(port)
			if valid.IsUnknown() {
				valid = v
			} else {
				valid = b.CreateBitwiseAnd(valid, v)
			}
		}
		sys.GetBlock(cond).SetValue(valid)
		b.SetCurrentBlock(body)
	}
}
