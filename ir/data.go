package ir

import "fmt"

// IntImm is an interned integer immediate, keyed by (dtype, value) — see
// eir/src/ir/data.rs. It has no parent block.
type IntImm struct {
	nodeHeader
	dtype DataType
	value uint64
}

func (i *IntImm) NodeKind() NodeKind { return KindIntImm }
func (i *IntImm) DType() DataType    { return i.dtype }
func (i *IntImm) Value() uint64      { return i.value }

func (i *IntImm) String() string {
	return fmt.Sprintf("(%d as %s)", i.value, i.dtype)
}

// StrImm is an interned string immediate, used by Log's format string and
// diagnostic messages.
type StrImm struct {
	nodeHeader
	value string
}

func (s *StrImm) NodeKind() NodeKind { return KindStrImm }
func (s *StrImm) DType() DataType    { return Str }
func (s *StrImm) Value() string      { return s.value }

// ArrayAttr tags metadata carried by an Array node.
type ArrayAttr uint8

const (
	// ArrayFullyPartitioned marks an array for the array-partition pass
	// (spec §4.6); cleared once the pass has run.
	ArrayFullyPartitioned ArrayAttr = iota
)

// Array is named scalar storage with an optional initializer vector — see
// spec §3 and eir/src/ir/data.rs's `Array`.
type Array struct {
	nodeHeader
	name     string
	scalarTy DataType
	size     int
	init     []uint64
	hasInit  bool
	attrs    map[ArrayAttr]bool
	users    map[BaseNode]bool
}

func newArray(name string, scalarTy DataType, size int, init []uint64) *Array {
	a := &Array{
		name:     name,
		scalarTy: scalarTy,
		size:     size,
		attrs:    make(map[ArrayAttr]bool),
		users:    make(map[BaseNode]bool),
	}
	if init != nil {
		a.init = append([]uint64(nil), init...)
		a.hasInit = true
	}
	return a
}

func (a *Array) NodeKind() NodeKind { return KindArray }
func (a *Array) DType() DataType    { return ArrayType(a.scalarTy, a.size) }
func (a *Array) Name() string       { return a.name }
func (a *Array) ScalarType() DataType { return a.scalarTy }
func (a *Array) Size() int          { return a.size }

// Initializer returns the array's initializer vector, if any.
func (a *Array) Initializer() ([]uint64, bool) {
	if !a.hasInit {
		return nil, false
	}
	return a.init, true
}

// IndexType is the DataType used to index this array: an unsigned integer
// of ceil(log2(size)) bits (min 1), per spec §3.
func (a *Array) IndexType() DataType {
	return UInt(CeilLog2(a.size))
}

func (a *Array) AddAttr(attr ArrayAttr)      { a.attrs[attr] = true }
func (a *Array) RemoveAttr(attr ArrayAttr)   { delete(a.attrs, attr) }
func (a *Array) HasAttr(attr ArrayAttr) bool { return a.attrs[attr] }

// ClearAttrs removes every metadata attribute (used by
// xform.EraseMetadata, grounded on eir/src/xform/erase_metadata.rs).
func (a *Array) ClearAttrs() { a.attrs = make(map[ArrayAttr]bool) }

func (a *Array) addUser(op BaseNode) {
	if a.users[op] {
		Violate("Array %s: user %s already recorded", a.name, op)
	}
	a.users[op] = true
}

func (a *Array) removeUser(op BaseNode) {
	if !a.users[op] {
		Violate("Array %s: user %s not recorded", a.name, op)
	}
	delete(a.users, op)
}

// Users returns the set of Operand handles whose value is this array.
func (a *Array) Users() map[BaseNode]bool { return a.users }

