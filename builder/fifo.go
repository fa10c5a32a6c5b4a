package builder

import "github.com/sarchlab/assassyn/ir"

// CreateFIFOPush enqueues value onto fifo; side-effecting, never
// coalesced by CSE.
func (b *SysBuilder) CreateFIFOPush(fifo, value ir.BaseNode) ir.BaseNode {
	return b.CreateExpr("", ir.Void, ir.OpcodeFIFOPush, fifo, value)
}

// CreateFIFOPop dequeues the head of fifo, yielding its element type.
func (b *SysBuilder) CreateFIFOPop(fifo ir.BaseNode) ir.BaseNode {
	f := b.sys.GetFIFO(fifo)
	return b.CreateExpr("", f.DType(), ir.OpcodeFIFOPop, fifo)
}

// createFIFOField builds a pure, side-effect-free probe of a FIFO's
// peek/valid/ready/triggered flag.
func (b *SysBuilder) createFIFOField(fifo ir.BaseNode, field ir.FIFOField) ir.BaseNode {
	f := b.sys.GetFIFO(fifo)
	dtype := ir.UInt(1)
	if field == ir.FIFOFieldPeek {
		dtype = f.DType()
	}
	return b.CreateExpr("", dtype, ir.MakeFIFOField(field), fifo)
}

// CreateFIFOPeek reads the head element without dequeuing it.
func (b *SysBuilder) CreateFIFOPeek(fifo ir.BaseNode) ir.BaseNode {
	return b.createFIFOField(fifo, ir.FIFOFieldPeek)
}

// CreateFIFOValid reports whether fifo has a head element this cycle.
func (b *SysBuilder) CreateFIFOValid(fifo ir.BaseNode) ir.BaseNode {
	return b.createFIFOField(fifo, ir.FIFOFieldValid)
}

// CreateFIFOReady reports whether fifo has room for another push.
func (b *SysBuilder) CreateFIFOReady(fifo ir.BaseNode) ir.BaseNode {
	return b.createFIFOField(fifo, ir.FIFOFieldReady)
}

// CreateFIFOTriggered reports whether fifo's owning module was
// triggered this cycle.
func (b *SysBuilder) CreateFIFOTriggered(fifo ir.BaseNode) ir.BaseNode {
	return b.createFIFOField(fifo, ir.FIFOFieldTriggered)
}
