package builder

import "github.com/sarchlab/assassyn/ir"

// CreateCondition opens a Condition(cond) block, nested in the current
// block, and makes it current — callers populate it, then
// SetCurrentBlock back to the parent (or rely on ExitBlock).
func (b *SysBuilder) CreateCondition(cond ir.BaseNode) ir.BaseNode {
	block := b.CreateBlock(ir.Condition(cond))
	b.SetCurrentBlock(block)
	return block
}

// CreateCycled opens a Cycled(cycleImm) block: its body runs only on
// the named absolute cycle, used by testbenches driving a fixed
// stimulus schedule.
func (b *SysBuilder) CreateCycled(cycleImm ir.BaseNode) ir.BaseNode {
	block := b.CreateBlock(ir.Cycled(cycleImm))
	b.SetCurrentBlock(block)
	return block
}

// ExitBlock returns the cursor to block's parent.
func (b *SysBuilder) ExitBlock(block ir.BaseNode) {
	b.SetCurrentBlock(b.sys.GetBlock(block).Parent())
}

// CreateFinish halts the simulation cleanly at the end of the current
// cycle.
func (b *SysBuilder) CreateFinish() ir.BaseNode {
	return b.CreateExpr("", ir.Void, ir.MakeBlockIntrinsic(ir.BIFinish))
}

// CreateAssert aborts the simulation, naming the failing module and
// cycle, unless cond holds.
func (b *SysBuilder) CreateAssert(cond ir.BaseNode) ir.BaseNode {
	return b.CreateExpr("", ir.Void, ir.MakeBlockIntrinsic(ir.BIAssert), cond)
}

// CreateBarrier is a represented no-op: a synchronization marker kept
// in the IR for readability/tooling. No pass in this repository removes
// or interprets it.
func (b *SysBuilder) CreateBarrier() ir.BaseNode {
	return b.CreateExpr("", ir.Void, ir.MakeBlockIntrinsic(ir.BIBarrier))
}
