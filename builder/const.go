package builder

import "github.com/sarchlab/assassyn/ir"

// GetConstInt interns an integer immediate by (dtype, value), so two
// requests for the same constant return the same handle — mirrors
// SysBuilder::get_const_int.
func (b *SysBuilder) GetConstInt(dtype ir.DataType, value uint64) ir.BaseNode {
	key := constKey{kind: dtype.Kind(), width: dtype.BitWidth(), value: value}
	if h, ok := b.constCache[key]; ok {
		return h
	}
	h := ir.Allocate(b.sys.Arena(), ir.NewIntImm(dtype, value))
	b.constCache[key] = h
	return h
}

// GetConstStr interns a string immediate; unlike integers these are not
// deduplicated by the builder (only Log and diagnostics read them).
func (b *SysBuilder) GetConstStr(value string) ir.BaseNode {
	return ir.Allocate(b.sys.Arena(), ir.NewStrImm(value))
}
