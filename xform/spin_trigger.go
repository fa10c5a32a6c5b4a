package xform

import (
	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
)

type spinTriggerHit struct {
	module ir.BaseNode
	expr   ir.BaseNode
}

type spinTriggerFinder struct {
	ir.DefaultVisitor[spinTriggerHit]
	modParent ir.BaseNode
}

func (f *spinTriggerFinder) VisitModule(sys *ir.System, m *ir.Module) (spinTriggerHit, bool) {
	f.modParent = m.Upcast()
	return f.DefaultVisitor.VisitBlock(sys, sys.GetBlock(m.Body()))
}

func (f *spinTriggerFinder) VisitExpr(sys *ir.System, e *ir.Expr) (spinTriggerHit, bool) {
	if e.Opcode().Tag() == ir.OpSpinTrigger {
		return spinTriggerHit{module: f.modParent, expr: e.Upcast()}, true
	}
	return f.DefaultVisitor.VisitExpr(sys, e)
}

func operandValue(sys *ir.System, opHandle ir.BaseNode) ir.BaseNode {
	return ir.MustGet[*ir.Operand](sys.Arena(), opHandle).Value()
}

// RewriteSpinTriggers finds the first still-unlowered SpinTrigger
// expression and synthesizes an intermediate agent module that
// spin-waits on the guarding array slot before forwarding the original
// call to its destination module, then replaces the SpinTrigger with an
// ordinary Trigger of the agent. If the lock index is not a
// compile-time constant, the agent carries an extra input port for it.
// Reports whether a rewrite happened; call RunAll to drain every
// SpinTrigger in the system. Mirrors
// eir/src/xform/spin_trigger.rs's `rewrite_spin_triggers`.
func RewriteSpinTriggers(b *builder.SysBuilder) bool {
	sys := b.System()
	finder := &spinTriggerFinder{}
	finder.DefaultVisitor.Self = finder
	hit, ok := ir.Enter[spinTriggerHit](finder, sys)
	if !ok {
		return false
	}

	parentName := sys.GetModule(hit.module).Name()
	spin := sys.GetExpr(hit.expr)
	operands := spin.Operands()
	lockHandle := operandValue(sys, operands[0])
	destModule := operandValue(sys, operands[1])
	pushOperands := operands[2:]

	if lockHandle.Kind != ir.KindArrayPtr {
		ir.Violate("RewriteSpinTriggers: lock handle is not an ArrayPtr")
	}
	ptr := ir.MustGet[*ir.ArrayPtr](sys.Arena(), lockHandle)
	lockArray, lockIdx := ptr.Array(), ptr.Idx()
	dynamicIdx := !ptr.IsConst(sys)

	destSig := sys.GetModule(destModule).Signature(sys)
	destPorts := destSig.ModulePorts()
	ports := make([]builder.PortInfo, 0, len(destPorts)+1)
	for i, ty := range destPorts {
		ports = append(ports, builder.PortInfo{Name: argPortName(i), Type: ty})
	}
	if dynamicIdx {
		ports = append(ports, builder.PortInfo{Name: "idx", Type: b.DTypeOf(lockIdx)})
	}

	agent := b.CreateModule(parentName+".async.agent", ports)
	agentPorts := append([]ir.BaseNode(nil), sys.GetModule(agent).Inputs()...)

	b.SetCurrentModule(hit.module)
	b.SetInsertBefore(hit.expr)

	newPushes := make([]ir.BaseNode, 0, len(pushOperands)+1)
	for i, opH := range pushOperands {
		pushExpr := sys.GetExpr(operandValue(sys, opH))
		if pushExpr.Opcode().Tag() != ir.OpFIFOPush {
			ir.Violate("RewriteSpinTriggers: expected a FIFOPush in the trigger bundle")
		}
		// Re-point only this push at the agent's port; the destination
		// module's own pops keep reading its original port.
		portOpH := pushExpr.Operands()[0]
		oldPortOp := ir.MustGet[*ir.Operand](sys.Arena(), portOpH)
		sys.GetFIFO(oldPortOp.Value()).RemoveUser(portOpH)
		oldPortOp.SetValue(agentPorts[i])
		sys.GetFIFO(agentPorts[i]).AddUser(portOpH)
		newPushes = append(newPushes, pushExpr.Upcast())
	}
	if dynamicIdx {
		idxPush := b.CreateFIFOPush(agentPorts[len(agentPorts)-1], lockIdx)
		newPushes = append(newPushes, idxPush)
	}
	b.CreateTrigger(agent, newPushes...)

	b.SetCurrentModule(agent)
	b.SetCurrentBlockWaitUntil()
	agentBody := sys.GetModule(agent).Body()
	waitBlock := sys.GetBlock(agentBody)
	cond := waitBlock.Kind().Payload
	b.SetCurrentBlock(cond)

	readAddr := lockIdx
	if dynamicIdx {
		idxPort := agentPorts[len(agentPorts)-1]
		readAddr = b.CreateFIFOPeek(idxPort)
	}
	value := b.CreateArrayRead(lockArray, readAddr)
	sys.GetBlock(cond).SetValue(value)
	b.SetCurrentBlock(agentBody)

	bind := b.GetInitBind(destModule)
	for i, port := range agentPorts {
		if dynamicIdx && i == len(agentPorts)-1 {
			continue
		}
		popped := b.CreateFIFOPop(port)
		bind = b.PushBind(bind, popped, false)
	}
	b.CreateTriggerBound(bind)

	b.EraseFromParent(hit.expr)
	return true
}

// RunAll applies RewriteSpinTriggers until every spin-trigger call site
// has been lowered to a synthesized agent.
func RunAll(b *builder.SysBuilder) {
	for RewriteSpinTriggers(b) {
	}
}

func argPortName(i int) string {
	return "arg." + itoa(i)
}
