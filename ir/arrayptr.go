package ir

// ArrayPtr is a single-element address into an Array: &array[idx]. It is
// a plain data node, not an Expr, matching how the spin-trigger pass
// holds a lock target across module boundaries — see
// eir/src/xform/spin_trigger.rs's `lock_handle.as_ref::<ArrayPtr>(...)`.
// Ordinary Load/Store keep the array and index as direct Expr operands
// (eir/src/xform/array_partition.rs reads them with `get_operand(1)`);
// ArrayPtr exists for call sites that need to carry "a specific array
// slot" around as a single value, such as a synthesized agent's lock
// argument.
type ArrayPtr struct {
	nodeHeader
	array BaseNode
	idx   BaseNode
}

func newArrayPtr(array, idx BaseNode) *ArrayPtr {
	return &ArrayPtr{array: array, idx: idx}
}

func (p *ArrayPtr) NodeKind() NodeKind { return KindArrayPtr }
func (p *ArrayPtr) Array() BaseNode    { return p.array }
func (p *ArrayPtr) Idx() BaseNode      { return p.idx }

// DType is the pointee's scalar type.
func (p *ArrayPtr) DType(sys *System) DataType {
	return MustGet[*Array](sys.arena, p.array).ScalarType()
}

// IsConst reports whether this pointer's index is a compile-time
// constant (an IntImm), the distinction array-partitioning uses to pick
// a direct partition index vs. a select-cascade (spec §4.6).
func (p *ArrayPtr) IsConst(sys *System) bool {
	_, ok := Get[*IntImm](sys.arena, p.idx)
	return ok
}

// ConstIndex returns the constant index value; callers must check
// IsConst first.
func (p *ArrayPtr) ConstIndex(sys *System) uint64 {
	imm, ok := Get[*IntImm](sys.arena, p.idx)
	if !ok {
		Violate("ArrayPtr.ConstIndex: index is not constant")
	}
	return imm.Value()
}
