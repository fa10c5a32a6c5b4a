package builder

import (
	"github.com/sarchlab/assassyn/ir"
	"github.com/sarchlab/assassyn/simlog"
)

// CreateTrigger fires dst once, after the given FIFOPush expressions
// (already created against dst's own input ports) have queued their
// arguments — operand layout [dst, push...], grounded on
// eir/src/xform/spin_trigger.rs's trigger-bundle construction.
func (b *SysBuilder) CreateTrigger(dst ir.BaseNode, pushes ...ir.BaseNode) ir.BaseNode {
	operands := append([]ir.BaseNode{dst}, pushes...)
	return b.CreateExpr("", ir.Void, ir.OpcodeTrigger, operands...)
}

// CreateAsyncCall fires callee with args bound all at once, for call
// sites that don't need the FIFOPush/Bind staging a spin-trigger needs.
func (b *SysBuilder) CreateAsyncCall(callee ir.BaseNode, args ...ir.BaseNode) ir.BaseNode {
	operands := append([]ir.BaseNode{callee}, args...)
	return b.CreateExpr("", ir.Void, ir.OpcodeAsyncCall, operands...)
}

// CreateSpinTrigger requests the spin-trigger synthesis pass (spec
// §4.9) to generate an intermediate agent module guarding dst behind
// lock before firing it. Operand layout [lock, dst, push...], mirroring
// the `(lock_handle, dest_module, ...bundle)` operand order
// spin_trigger.rs reads back out during lowering.
func (b *SysBuilder) CreateSpinTrigger(lock, dst ir.BaseNode, pushes ...ir.BaseNode) ir.BaseNode {
	operands := append([]ir.BaseNode{lock, dst}, pushes...)
	return b.CreateExpr("", ir.Void, ir.OpcodeSpinTrigger, operands...)
}

// GetInitBind starts a partial bind against callee with nothing bound
// yet.
func (b *SysBuilder) GetInitBind(callee ir.BaseNode) ir.BaseNode {
	return ir.Allocate(b.sys.Arena(), ir.NewBind(callee, ir.KVBind))
}

// PushBind binds value to the next unbound port of bind's callee, in
// port-declaration order, and returns bind itself for chaining. explicit
// is carried for modules with the ExplicitPop attribute, where the
// caller must supply every argument itself rather than relying on
// auto-pop. If this push completes the bind and the callee carries the
// EagerCallee attribute, the bind auto-triggers immediately instead of
// waiting for an explicit CreateTriggerBound call — see SPEC_FULL.md §10.
func (b *SysBuilder) PushBind(bind, value ir.BaseNode, explicit bool) ir.BaseNode {
	bd := b.sys.GetBind(bind)
	callee := b.sys.GetModule(bd.Callee())
	idx := len(bd.Bound())
	if idx >= len(callee.Inputs()) {
		ir.Violate("PushBind: callee %s already fully bound", callee.Name())
	}
	if !explicit && callee.HasAttr(ir.ExplicitPop) {
		ir.Violate("PushBind: callee %s requires explicit pop arguments", callee.Name())
	}
	port := b.sys.GetFIFO(callee.Inputs()[idx])
	bd.SetBound(port.Name(), value)

	if callee.HasAttr(ir.EagerCallee) && bd.Full(b.sys) {
		simlog.Default.Info("PushBind: EagerCallee bind fully bound, auto-triggering",
			"callee", callee.Name())
		b.CreateTriggerBound(bind)
	}
	return bind
}

// CreateTriggerBound lowers a fully-bound Bind into the push-then-
// trigger sequence CreateTrigger expects: one FIFOPush per bound port,
// in declaration order, followed by a Trigger of the callee.
func (b *SysBuilder) CreateTriggerBound(bind ir.BaseNode) ir.BaseNode {
	bd := b.sys.GetBind(bind)
	if !bd.Full(b.sys) {
		if !b.sys.GetModule(bd.Callee()).HasAttr(ir.AllowPartialCall) {
			ir.Violate("CreateTriggerBound: bind against %s is not full", bd.Callee())
		}
	}
	callee := b.sys.GetModule(bd.Callee())
	pushes := make([]ir.BaseNode, 0, len(bd.Bound()))
	for _, inputH := range callee.Inputs() {
		fifo := b.sys.GetFIFO(inputH)
		val, ok := bd.Bound()[fifo.Name()]
		if !ok {
			continue
		}
		pushes = append(pushes, b.CreateFIFOPush(inputH, val))
	}
	return b.CreateTrigger(bd.Callee(), pushes...)
}

// CreateLog records a formatted runtime trace line: operand 0 is the
// format string, followed by one operand per positional placeholder.
func (b *SysBuilder) CreateLog(format ir.BaseNode, args ...ir.BaseNode) ir.BaseNode {
	operands := append([]ir.BaseNode{format}, args...)
	return b.CreateExpr("", ir.Void, ir.OpcodeLog, operands...)
}
