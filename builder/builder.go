package builder

import (
	"fmt"

	"github.com/sarchlab/assassyn/ir"
)

// PortInfo names and types a single module input, passed to CreateModule
// — see original_source/src/builder/system.rs's `PortInfo`.
type PortInfo struct {
	Name string
	Type ir.DataType
}

// SysBuilder is the single-threaded, cooperative IR construction façade.
// It owns the System's arena-backed graph, a symbol table for unique
// naming, and a process-local insert-point cursor; every Create* method
// reads and advances that cursor. Nothing here is safe for concurrent
// use — the teacher's own build-time code is single-threaded and so is
// this — see spec §4.3 and eir/src/builder/system.rs's `SysBuilder`.
type SysBuilder struct {
	sys        *ir.System
	symtab     *symbolTable
	ip         insertPoint
	constCache map[constKey]ir.BaseNode
}

type constKey struct {
	kind  ir.DataTypeKind
	width int
	value uint64
}

// NewSysBuilder creates a system named name with a standing "driver"
// module (zero inputs, unconditionally triggered every cycle) already
// declared, matching SysBuilder::new.
func NewSysBuilder(name string) *SysBuilder {
	b := &SysBuilder{
		sys:        ir.NewSystem(name),
		symtab:     newSymbolTable(),
		constCache: make(map[constKey]ir.BaseNode),
	}
	b.ip.reset()
	driver := b.CreateModule("driver", nil)
	b.ip.reset()
	_ = driver
	return b
}

// System returns the underlying IR container.
func (b *SysBuilder) System() *ir.System { return b.sys }

// Driver returns the standing driver module created by NewSysBuilder.
func (b *SysBuilder) Driver() ir.BaseNode {
	h, ok := b.sys.ModuleByName("driver")
	if !ok {
		ir.Violate("sysbuilder: driver module missing")
	}
	return h
}

// SetCurrentModule points the cursor at module's body block.
func (b *SysBuilder) SetCurrentModule(module ir.BaseNode) {
	m := b.sys.GetModule(module)
	b.ip.module = module
	b.ip.block = m.Body()
	b.ip.insertBefore = ir.Unknown
}

// CurrentModule returns the module currently being built, if any.
func (b *SysBuilder) CurrentModule() (ir.BaseNode, bool) {
	if b.ip.module.IsUnknown() {
		return ir.Unknown, false
	}
	return b.ip.module, true
}

// SetCurrentBlock points the cursor's append target at block.
func (b *SysBuilder) SetCurrentBlock(block ir.BaseNode) {
	b.ip.block = block
	b.ip.insertBefore = ir.Unknown
}

// CurrentBlock returns the block new items append to, if any.
func (b *SysBuilder) CurrentBlock() (ir.BaseNode, bool) {
	if b.ip.block.IsUnknown() {
		return ir.Unknown, false
	}
	return b.ip.block, true
}

// SetInsertBefore makes subsequent Create* calls splice their new Expr
// immediately before existing, within existing's own parent block,
// instead of appending to CurrentBlock — used by transform passes that
// rewrite in place (e.g. array partitioning).
func (b *SysBuilder) SetInsertBefore(existing ir.BaseNode) {
	expr := b.sys.GetExpr(existing)
	b.ip.block = expr.Parent()
	b.ip.insertBefore = existing
}

// CreateModule declares a new module, registers its input FIFOs, and
// makes it the current module/block.
func (b *SysBuilder) CreateModule(name string, ports []PortInfo) ir.BaseNode {
	name = b.symtab.insert(name, ir.Unknown)
	mh := ir.Allocate(b.sys.Arena(), ir.NewModule(name))
	b.symtab.symbols[name] = mh

	for i, p := range ports {
		fifoName := b.symtab.insert(p.Name, ir.Unknown)
		fh := ir.Allocate(b.sys.Arena(), ir.NewFIFO(fifoName, p.Type, i))
		b.symtab.symbols[fifoName] = fh
		b.sys.GetModule(mh).AddInput(fh)
		b.sys.GetFIFO(fh).SetParent(mh)
	}

	body := ir.Allocate(b.sys.Arena(), ir.NewBlock(ir.Plain, mh))
	b.sys.GetModule(mh).SetBody(body)

	b.sys.AddModule(mh)
	b.SetCurrentModule(mh)
	return mh
}

// CreateArray declares register/memory storage at system scope.
func (b *SysBuilder) CreateArray(ty ir.DataType, name string, size int, init []uint64) ir.BaseNode {
	name = b.symtab.insert(name, ir.Unknown)
	ah := ir.Allocate(b.sys.Arena(), ir.NewArray(name, ty, size, init))
	b.symtab.symbols[name] = ah
	b.sys.AddArray(ah)
	return ah
}

// RemoveArray disposes array; callers must have already erased every
// Load/Store that referenced it (array_partition.rs's post-partition
// cleanup is the grounding use case).
func (b *SysBuilder) RemoveArray(array ir.BaseNode) {
	a := b.sys.GetArray(array)
	if len(a.Users()) != 0 {
		ir.Violate("RemoveArray: array %s still has %d users", a.Name(), len(a.Users()))
	}
	b.sys.Arena().Dispose(array)
	b.sys.RemoveArrayRecord(array)
}

// CreateBlock allocates a nested block of the given kind as a child of
// CurrentBlock and appends it there, without moving the cursor into it.
func (b *SysBuilder) CreateBlock(kind ir.BlockKind) ir.BaseNode {
	cur, ok := b.CurrentBlock()
	if !ok {
		ir.Violate("CreateBlock: no current block")
	}
	bh := ir.Allocate(b.sys.Arena(), ir.NewBlock(kind, cur))
	b.insertItem(bh)
	return bh
}

// SetCurrentBlockWaitUntil turns CurrentBlock into a WaitUntil block: it
// allocates a fresh, empty nested block to hold the boolean condition,
// assigns it as the WaitUntil payload, and leaves the cursor on the
// outer (now-WaitUntil) block — callers then SetCurrentBlock(cond) to
// populate the condition before returning the cursor to the outer block.
// Mirrors eir/src/builder/system.rs's `set_current_block_wait_until`.
func (b *SysBuilder) SetCurrentBlockWaitUntil() {
	cur, ok := b.CurrentBlock()
	if !ok {
		ir.Violate("SetCurrentBlockWaitUntil: no current block")
	}
	block := b.sys.GetBlock(cur)
	if block.Kind().Tag != ir.BlockPlain {
		ir.Violate("SetCurrentBlockWaitUntil: block already has kind %v", block.Kind().Tag)
	}
	cond := ir.Allocate(b.sys.Arena(), ir.NewBlock(ir.Plain, cur))
	block.SetKind(ir.WaitUntilKind(cond))
}

func (b *SysBuilder) insertItem(item ir.BaseNode) {
	block := b.sys.GetBlock(b.ip.block)
	if !b.ip.insertBefore.IsUnknown() {
		at := block.IndexOf(b.ip.insertBefore)
		if at < 0 {
			ir.Violate("insertItem: insert-before target not found in its block")
		}
		block.InsertItem(at, item)
		return
	}
	block.InsertItem(block.Len(), item)
}

func (b *SysBuilder) String() string {
	return fmt.Sprintf("system %s { %d modules, %d arrays }", b.sys.Name(), len(b.sys.Modules()), len(b.sys.Arrays()))
}
