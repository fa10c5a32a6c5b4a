// Package xform implements the canonical IR-to-IR rewrite passes: array
// partitioning, common-subexpression elimination, wait-until lifting,
// and spin-trigger agent synthesis — see spec §4.6-§4.9 and
// eir/src/xform/*.rs.
package xform

import (
	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
)

type arrayUse struct {
	array ir.BaseNode
	user  ir.BaseNode // the Load/Store expr
}

// RewriteArrayPartitions splits every array tagged ArrayFullyPartitioned
// into size single-element arrays, rewriting each Load into a direct
// read (constant index) or a select-cascade over every partition
// (dynamic index), and each Store into a direct write (constant index)
// or a Condition-guarded write per partition (dynamic index) — mirrors
// eir/src/xform/array_partition.rs's `rewrite_array_partitions`.
func RewriteArrayPartitions(b *builder.SysBuilder) {
	sys := b.System()

	var toPartition []ir.BaseNode
	for _, h := range sys.Arrays() {
		if sys.GetArray(h).HasAttr(ir.ArrayFullyPartitioned) {
			toPartition = append(toPartition, h)
		}
	}

	usage := gatherArrayUsage(sys, toPartition)

	for _, array := range toPartition {
		a := sys.GetArray(array)
		dtype := a.ScalarType()
		name := a.Name()
		size := a.Size()
		init, hasInit := a.Initializer()

		partitions := make([]ir.BaseNode, size)
		for i := 0; i < size; i++ {
			var elemInit []uint64
			if hasInit {
				elemInit = []uint64{init[i]}
			}
			partitions[i] = b.CreateArray(dtype, partitionName(name, i), 1, elemInit)
		}

		for _, use := range usage[array] {
			rewriteOneUse(b, sys, use, partitions, size)
		}

		b.RemoveArray(array)
	}
}

func partitionName(base string, i int) string {
	return base + ".partition." + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := []byte{}
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func gatherArrayUsage(sys *ir.System, toPartition []ir.BaseNode) map[ir.BaseNode][]arrayUse {
	set := make(map[ir.BaseNode]bool, len(toPartition))
	for _, h := range toPartition {
		set[h] = true
	}
	usage := make(map[ir.BaseNode][]arrayUse)
	v := &arrayUsageVisitor{sys: sys, set: set, usage: usage}
	v.DefaultVisitor.Self = v
	ir.Enter[struct{}](v, sys)
	return usage
}

type arrayUsageVisitor struct {
	ir.DefaultVisitor[struct{}]
	sys   *ir.System
	set   map[ir.BaseNode]bool
	usage map[ir.BaseNode][]arrayUse
}

func (v *arrayUsageVisitor) VisitExpr(sys *ir.System, e *ir.Expr) (struct{}, bool) {
	switch e.Opcode().Tag() {
	case ir.OpLoad, ir.OpStore:
		opnd := ir.MustGet[*ir.Operand](sys.Arena(), e.Operands()[0])
		array := opnd.Value()
		if v.set[array] {
			v.usage[array] = append(v.usage[array], arrayUse{array: array, user: e.Upcast()})
		}
	}
	return v.DefaultVisitor.VisitExpr(sys, e)
}

func rewriteOneUse(b *builder.SysBuilder, sys *ir.System, use arrayUse, partitions []ir.BaseNode, size int) {
	e := sys.GetExpr(use.user)
	idxOpnd := ir.MustGet[*ir.Operand](sys.Arena(), e.Operands()[1])
	idx := idxOpnd.Value()
	idxTy := b.DTypeOf(idx)
	zero := b.GetConstInt(idxTy, 0)

	switch e.Opcode().Tag() {
	case ir.OpLoad:
		b.SetInsertBefore(use.user)
		var newLoad ir.BaseNode
		if imm, ok := ir.Get[*ir.IntImm](sys.Arena(), idx); ok {
			newLoad = b.CreateArrayRead(partitions[imm.Value()], zero)
		} else {
			acc := b.CreateArrayRead(partitions[0], zero)
			for x := 1; x < size; x++ {
				cur := b.GetConstInt(idxTy, uint64(x))
				value := b.CreateArrayRead(partitions[x], zero)
				cond := b.CreateEq(idx, cur)
				acc = b.CreateSelect(cond, value, acc)
			}
			newLoad = acc
		}
		b.ReplaceAllUsesWith(use.user, newLoad)
	case ir.OpStore:
		valOpnd := ir.MustGet[*ir.Operand](sys.Arena(), e.Operands()[2])
		value := valOpnd.Value()
		if imm, ok := ir.Get[*ir.IntImm](sys.Arena(), idx); ok {
			b.SetInsertBefore(use.user)
			b.CreateArrayWrite(partitions[imm.Value()], zero, value)
		} else {
			for x := 0; x < size; x++ {
				b.SetInsertBefore(use.user)
				cur := b.GetConstInt(idxTy, uint64(x))
				cond := b.CreateEq(idx, cur)
				block := b.CreateCondition(cond)
				b.SetCurrentBlock(block)
				b.CreateArrayWrite(partitions[x], zero, value)
			}
		}
	}
	b.EraseFromParent(use.user)
}
