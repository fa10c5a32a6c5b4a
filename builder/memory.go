package builder

import "github.com/sarchlab/assassyn/ir"

// DeclareMemory creates the backing array and the addr/write/wdata port
// module for a synthesized memory, tagging the module with a Memory
// attribute so downstream passes can recognize it — grounded on
// eir/src/ir/module/memory.rs's `declare_memory`.
func (b *SysBuilder) DeclareMemory(name string, width, depth, latencyInit int, init []uint64) ir.BaseNode {
	ty := ir.Bits(width)
	ports := []PortInfo{
		{Name: "addr", Type: ir.UInt(ir.CeilLog2(depth))},
		{Name: "write", Type: ir.Bits(1)},
		{Name: "wdata", Type: ty},
	}
	array := b.CreateArray(ty, name+".array", depth, init)
	module := b.CreateModule(name, ports)
	b.sys.GetModule(module).AddAttr(ir.Memory, &ir.MemoryParams{
		Width:       width,
		Depth:       depth,
		LatencyInit: latencyInit,
		Init:        init,
	})
	return module
}

// ImplMemory fills in module's body: pop the three control ports, read
// the addressed slot unconditionally, write it behind a Condition(write)
// block, then hand control to inliner to wire up the read-data result
// (e.g. pushing it back out to a response FIFO).
func (b *SysBuilder) ImplMemory(module ir.BaseNode, inliner func(b *SysBuilder, module, write, rdata ir.BaseNode)) {
	params, ok := b.sys.GetModule(module).MemoryParams()
	if !ok {
		ir.Violate("ImplMemory: module %s has no Memory attribute", module)
	}
	array := ir.Unknown
	for _, h := range b.sys.Arrays() {
		if b.sys.GetArray(h).Name() == b.memoryArrayName(module) {
			array = h
			break
		}
	}
	_ = params

	b.SetCurrentModule(module)
	m := b.sys.GetModule(module)
	addrPort, writePort, wdataPort := m.Inputs()[0], m.Inputs()[1], m.Inputs()[2]

	addr := b.CreateFIFOPop(addrPort)
	b.sys.GetExpr(addr).SetName("addr")
	write := b.CreateFIFOPop(writePort)
	b.sys.GetExpr(write).SetName("write")
	wdata := b.CreateFIFOPop(wdataPort)
	b.sys.GetExpr(wdata).SetName("wdata")

	rdata := b.CreateArrayRead(array, addr)

	outer := b.ip.block
	wblock := b.CreateBlock(ir.Condition(write))
	b.SetCurrentBlock(wblock)
	b.CreateArrayWrite(array, addr, wdata)
	b.SetCurrentBlock(outer)

	inliner(b, module, write, rdata)
}

func (b *SysBuilder) memoryArrayName(module ir.BaseNode) string {
	return b.sys.GetModule(module).Name() + ".array"
}

// CreateMemory is the one-shot convenience combining DeclareMemory and
// ImplMemory.
func (b *SysBuilder) CreateMemory(name string, width, depth, latencyInit int, init []uint64,
	inliner func(b *SysBuilder, module, write, rdata ir.BaseNode)) ir.BaseNode {
	module := b.DeclareMemory(name, width, depth, latencyInit, init)
	b.ImplMemory(module, inliner)
	return module
}
