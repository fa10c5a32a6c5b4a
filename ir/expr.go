package ir

import "fmt"

// Expr is a single IR instruction: an opcode applied to an ordered operand
// list, owned by exactly one Block — see spec §3/§4.3 and
// eir/src/ir/expr/mod.rs.
type Expr struct {
	nodeHeader
	name     string
	opcode   Opcode
	dtype    DataType
	operands []BaseNode // Operand handles, in argument order
	parent   BaseNode   // owning Block
	users    map[BaseNode]bool
}

func newExpr(name string, opcode Opcode, dtype DataType) *Expr {
	return &Expr{
		name:   name,
		opcode: opcode,
		dtype:  dtype,
		users:  make(map[BaseNode]bool),
	}
}

func (e *Expr) NodeKind() NodeKind { return KindExpr }
func (e *Expr) DType() DataType    { return e.dtype }
func (e *Expr) Name() string       { return e.name }
func (e *Expr) SetName(n string)   { e.name = n }
func (e *Expr) Opcode() Opcode     { return e.opcode }
func (e *Expr) Parent() BaseNode   { return e.parent }
func (e *Expr) SetParent(p BaseNode) { e.parent = p }

// Operands returns the Operand handles in argument order.
func (e *Expr) Operands() []BaseNode { return e.operands }

// NumOperands returns the argument count.
func (e *Expr) NumOperands() int { return len(e.operands) }

func (e *Expr) addUser(op BaseNode) {
	if e.users[op] {
		Violate("Expr %s: user %s already recorded", e.name, op)
	}
	e.users[op] = true
}

func (e *Expr) removeUser(op BaseNode) {
	if !e.users[op] {
		Violate("Expr %s: user %s not recorded", e.name, op)
	}
	delete(e.users, op)
}

// Users returns the set of Operand handles whose value is this expression.
func (e *Expr) Users() map[BaseNode]bool { return e.users }

func (e *Expr) String() string {
	if e.name != "" {
		return fmt.Sprintf("%%%s = %s", e.name, e.opcode)
	}
	return e.opcode.String()
}

// CheckBinaryTypes enforces spec §4.3's Add/Sub/Mul/Shl/Shr/bitwise
// contract: both operands must share a width, result width equals
// operand width — mirrors the width check in eir/src/builder/exprs.rs.
func CheckBinaryTypes(op BinaryOp, lhs, rhs DataType) DataType {
	if !lhs.IsInt() && !lhs.IsRaw() {
		Violate("binary op %s: lhs type %s is not integral", op, lhs)
	}
	if lhs.BitWidth() != rhs.BitWidth() {
		Violate("binary op %s: width mismatch %s vs %s", op, lhs, rhs)
	}
	return lhs
}

// CheckCompareTypes enforces spec §4.3's comparison contract: operands
// share a width, result is a 1-bit unsigned flag.
func CheckCompareTypes(lhs, rhs DataType) DataType {
	if lhs.BitWidth() != rhs.BitWidth() {
		Violate("compare: width mismatch %s vs %s", lhs, rhs)
	}
	return UInt(1)
}

// CheckSliceType computes a Slice[l:r] result width, inclusive on both
// ends, per spec §3.
func CheckSliceType(base DataType, l, r int) DataType {
	if l < 0 || r < l || r >= base.BitWidth() {
		Violate("slice [%d:%d] out of range for %s", l, r, base)
	}
	return UInt(r - l + 1)
}

// CheckConcatType computes a Concat result width: the sum of every
// operand's width, per spec §3.
func CheckConcatType(parts []DataType) DataType {
	total := 0
	for _, p := range parts {
		total += p.BitWidth()
	}
	return UInt(total)
}
