package builder

import "github.com/sarchlab/assassyn/ir"

// CreateExpr is the single low-level entry point every higher-level
// Create* helper funnels through: it allocates the Expr, wires an
// Operand for each value in operands (in order), and inserts the
// result at the current insert point — mirrors
// eir/src/builder/system.rs's `create_expr`.
func (b *SysBuilder) CreateExpr(name string, dtype ir.DataType, opcode ir.Opcode, operands ...ir.BaseNode) ir.BaseNode {
	if _, ok := b.CurrentBlock(); !ok {
		ir.Violate("CreateExpr: no module/block to insert into")
	}
	eh := ir.Allocate(b.sys.Arena(), ir.NewExpr(name, opcode, dtype))
	for _, v := range operands {
		b.addOperand(eh, v)
	}
	b.sys.GetExpr(eh).SetParent(b.ip.block)
	b.insertItem(eh)
	return eh
}

// DTypeOf returns the data type of any value-carrying node handle,
// exposed for transform passes outside this package.
func (b *SysBuilder) DTypeOf(h ir.BaseNode) ir.DataType { return b.dtypeOf(h) }

func (b *SysBuilder) dtypeOf(h ir.BaseNode) ir.DataType {
	switch h.Kind {
	case ir.KindExpr:
		return b.sys.GetExpr(h).DType()
	case ir.KindFIFO:
		return b.sys.GetFIFO(h).DType()
	case ir.KindArray:
		return b.sys.GetArray(h).DType()
	case ir.KindIntImm:
		return ir.MustGet[*ir.IntImm](b.sys.Arena(), h).DType()
	case ir.KindModule:
		return b.sys.GetModule(h).Signature(b.sys)
	default:
		ir.Violate("dtypeOf: node %s has no data type", h)
		return ir.Void
	}
}

// CreateBinary builds a two-operand arithmetic/bitwise expression;
// width-matching is enforced by ir.CheckBinaryTypes.
func (b *SysBuilder) CreateBinary(op ir.BinaryOp, lhs, rhs ir.BaseNode) ir.BaseNode {
	dtype := ir.CheckBinaryTypes(op, b.dtypeOf(lhs), b.dtypeOf(rhs))
	return b.CreateExpr("", dtype, ir.MakeBinary(op), lhs, rhs)
}

func (b *SysBuilder) CreateAdd(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateBinary(ir.Add, lhs, rhs) }
func (b *SysBuilder) CreateSub(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateBinary(ir.Sub, lhs, rhs) }
func (b *SysBuilder) CreateMul(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateBinary(ir.Mul, lhs, rhs) }
func (b *SysBuilder) CreateShl(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateBinary(ir.Shl, lhs, rhs) }
func (b *SysBuilder) CreateShr(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateBinary(ir.Shr, lhs, rhs) }
func (b *SysBuilder) CreateBitwiseAnd(lhs, rhs ir.BaseNode) ir.BaseNode {
	return b.CreateBinary(ir.BitwiseAnd, lhs, rhs)
}
func (b *SysBuilder) CreateBitwiseOr(lhs, rhs ir.BaseNode) ir.BaseNode {
	return b.CreateBinary(ir.BitwiseOr, lhs, rhs)
}
func (b *SysBuilder) CreateBitwiseXor(lhs, rhs ir.BaseNode) ir.BaseNode {
	return b.CreateBinary(ir.BitwiseXor, lhs, rhs)
}

// CreateUnary builds Flip (bitwise not) or Neg.
func (b *SysBuilder) CreateUnary(op ir.UnaryOp, x ir.BaseNode) ir.BaseNode {
	return b.CreateExpr("", b.dtypeOf(x), ir.MakeUnary(op), x)
}

// CreateCompare builds a 1-bit comparison result.
func (b *SysBuilder) CreateCompare(op ir.CompareOp, lhs, rhs ir.BaseNode) ir.BaseNode {
	dtype := ir.CheckCompareTypes(b.dtypeOf(lhs), b.dtypeOf(rhs))
	return b.CreateExpr("", dtype, ir.MakeCompare(op), lhs, rhs)
}

func (b *SysBuilder) CreateEq(lhs, rhs ir.BaseNode) ir.BaseNode  { return b.CreateCompare(ir.EQ, lhs, rhs) }
func (b *SysBuilder) CreateNeq(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateCompare(ir.NEQ, lhs, rhs) }
func (b *SysBuilder) CreateIgt(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateCompare(ir.IGT, lhs, rhs) }
func (b *SysBuilder) CreateIlt(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateCompare(ir.ILT, lhs, rhs) }
func (b *SysBuilder) CreateIge(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateCompare(ir.IGE, lhs, rhs) }
func (b *SysBuilder) CreateIle(lhs, rhs ir.BaseNode) ir.BaseNode { return b.CreateCompare(ir.ILE, lhs, rhs) }

// CreateCast builds a bit-reinterpretation or sign/zero extension to
// toType.
func (b *SysBuilder) CreateCast(op ir.CastOp, x ir.BaseNode, toType ir.DataType) ir.BaseNode {
	return b.CreateExpr("", toType, ir.MakeCast(op), x)
}

// CreateSlice extracts bits [l:r] (inclusive) of x.
func (b *SysBuilder) CreateSlice(x ir.BaseNode, l, r int) ir.BaseNode {
	dtype := ir.CheckSliceType(b.dtypeOf(x), l, r)
	lo := b.GetConstInt(ir.UInt(32), uint64(l))
	hi := b.GetConstInt(ir.UInt(32), uint64(r))
	return b.CreateExpr("", dtype, ir.OpcodeSlice, x, lo, hi)
}

// CreateConcat concatenates parts, most-significant first.
func (b *SysBuilder) CreateConcat(parts ...ir.BaseNode) ir.BaseNode {
	types := make([]ir.DataType, len(parts))
	for i, p := range parts {
		types[i] = b.dtypeOf(p)
	}
	dtype := ir.CheckConcatType(types)
	return b.CreateExpr("", dtype, ir.OpcodeConcat, parts...)
}

// CreateSelect builds cond ? t : f.
func (b *SysBuilder) CreateSelect(cond, t, f ir.BaseNode) ir.BaseNode {
	tt, ft := b.dtypeOf(t), b.dtypeOf(f)
	if !tt.Equal(ft) {
		ir.Violate("CreateSelect: branch type mismatch %s vs %s", tt, ft)
	}
	return b.CreateExpr("", tt, ir.OpcodeSelect, cond, t, f)
}

// CreateSelect1Hot builds a first-asserted-wins select over N
// (cond, value) pairs, per SPEC_FULL.md §10's Select1Hot supplement.
func (b *SysBuilder) CreateSelect1Hot(conds, values []ir.BaseNode) ir.BaseNode {
	if len(conds) != len(values) || len(conds) == 0 {
		ir.Violate("CreateSelect1Hot: conds/values must be equal-length and non-empty")
	}
	dtype := b.dtypeOf(values[0])
	for _, v := range values[1:] {
		if !b.dtypeOf(v).Equal(dtype) {
			ir.Violate("CreateSelect1Hot: value type mismatch")
		}
	}
	operands := make([]ir.BaseNode, 0, 2*len(conds))
	for i := range conds {
		operands = append(operands, conds[i], values[i])
	}
	return b.CreateExpr("", dtype, ir.OpcodeSelect1Hot, operands...)
}
