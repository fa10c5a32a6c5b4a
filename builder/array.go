package builder

import "github.com/sarchlab/assassyn/ir"

// CreateArrayPtr builds a raw &array[idx] address value, used when a
// slot needs to be carried as a single handle (e.g. a spin-trigger
// lock target) rather than read or written immediately — grounded on
// eir/src/xform/spin_trigger.rs's `create_array_ptr`.
func (b *SysBuilder) CreateArrayPtr(array, idx ir.BaseNode) ir.BaseNode {
	return ir.Allocate(b.sys.Arena(), ir.NewArrayPtr(array, idx))
}

// CreateArrayRead builds a Load of array[idx], typed as the array's
// scalar element type.
func (b *SysBuilder) CreateArrayRead(array, idx ir.BaseNode) ir.BaseNode {
	arr := b.sys.GetArray(array)
	return b.CreateExpr("", arr.ScalarType(), ir.OpcodeLoad, array, idx)
}

// CreateArrayReadPtr reads through an already-built ArrayPtr, the form
// spin-trigger synthesis uses once it has resolved a dynamic lock
// index to a specific agent-carried value.
func (b *SysBuilder) CreateArrayReadPtr(ptr ir.BaseNode) ir.BaseNode {
	p := ir.MustGet[*ir.ArrayPtr](b.sys.Arena(), ptr)
	return b.CreateArrayRead(p.Array(), p.Idx())
}

// CreateArrayWrite builds a Store of value into array[idx].
func (b *SysBuilder) CreateArrayWrite(array, idx, value ir.BaseNode) ir.BaseNode {
	arr := b.sys.GetArray(array)
	if !arr.ScalarType().Equal(b.dtypeOf(value)) {
		ir.Violate("CreateArrayWrite: value type %s does not match array %s scalar type %s",
			b.dtypeOf(value), arr.Name(), arr.ScalarType())
	}
	return b.CreateExpr("", ir.Void, ir.OpcodeStore, array, idx, value)
}
