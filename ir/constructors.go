package ir

// This file exposes the package-private node constructors to callers
// outside ir (the builder package) while keeping the zero-value structs
// themselves unexported — mirrors the teacher's convention of a thin
// exported constructor wrapping an unexported literal.

// NewModule allocates a bare module value (no body, no inputs yet); the
// caller is responsible for calling Arena.Allocate and then wiring body
// and inputs.
func NewModule(name string) *Module { return newModule(name) }

// NewFIFO allocates a bare input-port value.
func NewFIFO(name string, dtype DataType, idx int) *FIFO { return newFIFO(name, dtype, idx) }

// NewArray allocates a bare array value.
func NewArray(name string, scalarTy DataType, size int, init []uint64) *Array {
	return newArray(name, scalarTy, size, init)
}

// NewBlock allocates a bare block value of the given kind and parent.
func NewBlock(kind BlockKind, parent BaseNode) *Block {
	return &Block{kind: kind, parent: parent}
}

// NewExpr allocates a bare expression value; operands are attached by
// the caller via AppendOperand.
func NewExpr(name string, opcode Opcode, dtype DataType) *Expr { return newExpr(name, opcode, dtype) }

// NewOperand allocates a def-use edge value.
func NewOperand(value, user BaseNode) *Operand { return &Operand{value: value, user: user} }

// SetValue rebinds the def side of this edge in place, used by
// ReplaceAllUsesWith to redirect a use without reallocating the Operand.
func (o *Operand) SetValue(v BaseNode) { o.value = v }

// NewBind allocates a bare bind value.
func NewBind(module BaseNode, kind BindKind) *Bind { return newBind(module, kind) }

// NewArrayPtr allocates a bare array-pointer value.
func NewArrayPtr(array, idx BaseNode) *ArrayPtr { return newArrayPtr(array, idx) }

// NewIntImm allocates a bare integer-immediate value.
func NewIntImm(dtype DataType, value uint64) *IntImm { return &IntImm{dtype: dtype, value: value} }

// NewStrImm allocates a bare string-immediate value.
func NewStrImm(value string) *StrImm { return &StrImm{value: value} }

// AppendOperand attaches a new Operand(value, user) to e's operand list
// in argument order; the arena allocation and both sides' user-set
// bookkeeping are the caller's responsibility (see builder/defuse.go).
func (e *Expr) AppendOperand(h BaseNode) { e.operands = append(e.operands, h) }

// SetOperand replaces the Operand handle at position i of e's operand
// list; it does not touch any user-set. To redirect an existing edge's
// value instead, use Operand.SetValue.
func (e *Expr) SetOperand(i int, newOperandHandle BaseNode) {
	if i < 0 || i >= len(e.operands) {
		Violate("SetOperand: index %d out of range for %s", i, e.name)
	}
	e.operands[i] = newOperandHandle
}

// AddInput records a FIFO as the next declared input of m. Exported for
// the builder package; regular code should go through
// SysBuilder.CreateModule instead.
func (m *Module) AddInput(h BaseNode) { m.addInput(h) }

// EraseItem removes child at position idx from the block. Exported for
// the builder's erase-from-parent flow.
func (b *Block) EraseItem(idx int) { b.eraseAt(idx) }

// InsertItem inserts child at position at (or appends if out of range)
// and returns its landing index. Exported for the builder.
func (b *Block) InsertItem(at int, child BaseNode) int { return b.insertAt(at, child) }

// AddUserExpr / RemoveUserExpr / AddUserArray / ... expose the
// per-kind addUser/removeUser bookkeeping to the builder's def-use
// maintenance (builder/defuse.go), which is the only code allowed to
// call them outside ir.
func (e *Expr) AddUser(op BaseNode)    { e.addUser(op) }
func (e *Expr) RemoveUser(op BaseNode) { e.removeUser(op) }

func (f *FIFO) AddUser(op BaseNode)    { f.addUser(op) }
func (f *FIFO) RemoveUser(op BaseNode) { f.removeUser(op) }

func (a *Array) AddUser(op BaseNode)    { a.addUser(op) }
func (a *Array) RemoveUser(op BaseNode) { a.removeUser(op) }

func (m *Module) AddUser(op BaseNode)    { m.addUser(op) }
func (m *Module) RemoveUser(op BaseNode) { m.removeUser(op) }

func (bd *Bind) AddUser(op BaseNode)    { bd.addUser(op) }
func (bd *Bind) RemoveUser(op BaseNode) { bd.removeUser(op) }

// MarkPlaceholder flags a FIFO as a placeholder, which ReplaceAllUsesWith
// then allows to be replaced by a non-FIFO value.
func (f *FIFO) MarkPlaceholder() { f.markPlaceholder() }

// SetBound binds arg to the callee port called name; Full() counts the
// names bound so far.
func (b *Bind) SetBound(name string, arg BaseNode) { b.setBound(name, arg) }
