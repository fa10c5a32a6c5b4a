package xform

import "github.com/sarchlab/assassyn/builder"
import "github.com/sarchlab/assassyn/ir"

// depthAnalysis records each module/block's nesting depth, mirroring
// eir/src/xform/cse.rs's `DepthAnalysis`.
type depthAnalysis struct {
	ir.DefaultVisitor[struct{}]
	sys   *ir.System
	depth map[ir.BaseNode]int
	cur   int
}

func (d *depthAnalysis) VisitModule(sys *ir.System, m *ir.Module) (struct{}, bool) {
	d.depth[m.Upcast()] = d.cur
	return d.VisitBlock(sys, sys.GetBlock(m.Body()))
}

func (d *depthAnalysis) VisitBlock(sys *ir.System, b *ir.Block) (zero struct{}, ok bool) {
	d.depth[b.Upcast()] = d.cur
	d.cur++
	if b.Kind().Tag == ir.BlockWaitUntil {
		ir.Dispatch[struct{}](d, sys, b.Kind().Payload, nil)
	}
	for _, h := range b.Items() {
		ir.Dispatch[struct{}](d, sys, h, nil)
	}
	d.cur--
	return
}

type exprKey struct {
	opcode   ir.Opcode
	operands string
}

func keyOf(sys *ir.System, e *ir.Expr) exprKey {
	s := ""
	for _, h := range e.Operands() {
		opnd := ir.MustGet[*ir.Operand](sys.Arena(), h)
		s += opnd.Value().String() + ";"
	}
	return exprKey{opcode: e.Opcode(), operands: s}
}

type findCommonSubexpression struct {
	ir.DefaultVisitor[struct{}]
	common map[exprKey][]ir.BaseNode
}

func (f *findCommonSubexpression) VisitExpr(sys *ir.System, e *ir.Expr) (zero struct{}, ok bool) {
	if !e.Opcode().HasSideEffect() {
		k := keyOf(sys, e)
		f.common[k] = append(f.common[k], e.Upcast())
	}
	return f.DefaultVisitor.VisitExpr(sys, e)
}

type masterDuplicates struct {
	master    ir.BaseNode
	duplicate []ir.BaseNode
}

// CommonCodeElimination merges repeated, side-effect-free expressions
// (same opcode, same operand values) within a module: it finds their
// nearest common ancestor block, takes the earliest member that sits
// directly in that block as the "master", and rewrites every other
// member into a use of it. No new master is created: a group none of
// whose members sits directly in the common ancestor block is left
// unchanged — mirrors
// eir/src/xform/cse.rs's `common_code_elimination`.
func CommonCodeElimination(b *builder.SysBuilder) {
	sys := b.System()

	da := &depthAnalysis{sys: sys, depth: make(map[ir.BaseNode]int)}
	da.DefaultVisitor.Self = da
	ir.Enter[struct{}](da, sys)

	var groups []masterDuplicates
	for _, mh := range sys.Modules() {
		f := &findCommonSubexpression{common: make(map[exprKey][]ir.BaseNode)}
		f.DefaultVisitor.Self = f
		f.VisitModule(sys, sys.GetModule(mh))

		for _, exprs := range f.common {
			if len(exprs) < 2 {
				continue
			}
			parents := make([]ir.BaseNode, len(exprs))
			for i, e := range exprs {
				parents[i] = sys.ParentOf(e)
			}
			hoistToCommonAncestor(sys, da.depth, parents)

			if parents[0].Kind != ir.KindBlock {
				continue // non-Block LCAs are not normalized; skip this bucket.
			}
			block := sys.GetBlock(parents[0])
			masterIdx := -1
			var master ir.BaseNode
			for _, e := range exprs {
				if sys.ParentOf(e) != parents[0] {
					continue
				}
				idx := block.IndexOf(e)
				if masterIdx == -1 || idx < masterIdx {
					masterIdx = idx
					master = e
				}
			}
			if masterIdx == -1 {
				continue
			}
			// A Condition block's guard is visited both as a block item and
			// as the block's payload, so a bucket can list it twice.
			var dup []ir.BaseNode
			seen := map[ir.BaseNode]bool{master: true}
			for _, e := range exprs {
				if !seen[e] {
					seen[e] = true
					dup = append(dup, e)
				}
			}
			groups = append(groups, masterDuplicates{master: master, duplicate: dup})
		}
	}

	for _, g := range groups {
		for _, d := range g.duplicate {
			rewriteBlockReferences(sys, d, g.master)
			b.ReplaceAllUsesWith(d, g.master)
			b.EraseFromParent(d)
		}
	}
}

// rewriteBlockReferences patches every Block.Kind().Payload and
// Block.Value() in the system that still points at old to point at
// new instead. A Condition/WaitUntil/Cycled payload and a cond-block's
// Value are raw structural BaseNode fields, not Operand-mediated uses,
// so ReplaceAllUsesWith's def-use rewrite does not reach them on its
// own — CSE needs this extra pass whenever the hoisted duplicate is
// itself a block's condition, not just an ordinary operand.
func rewriteBlockReferences(sys *ir.System, old, new ir.BaseNode) {
	for _, mh := range sys.Modules() {
		rewriteBlockTree(sys, sys.GetModule(mh).Body(), old, new)
	}
}

func rewriteBlockTree(sys *ir.System, blockHandle, old, new ir.BaseNode) {
	block := sys.GetBlock(blockHandle)
	kind := block.Kind()
	if kind.Payload == old {
		kind.Payload = new
		block.SetKind(kind)
	}
	if block.Value() == old {
		block.SetValue(new)
	}
	if kind.Tag == ir.BlockWaitUntil {
		rewriteBlockTree(sys, kind.Payload, old, new)
	}
	for _, h := range block.Items() {
		if h.Kind == ir.KindBlock {
			rewriteBlockTree(sys, h, old, new)
		}
	}
}

// hoistToCommonAncestor walks every entry of parents up the structural
// tree in lock-step until they all land on the same node: first
// bringing every parent to the shallowest depth present, then climbing
// together until they coincide.
func hoistToCommonAncestor(sys *ir.System, depth map[ir.BaseNode]int, parents []ir.BaseNode) {
	for {
		refDepth := depth[parents[0]]
		changed := false
		for i := range parents {
			if depth[parents[i]] != refDepth {
				if depth[parents[i]] < refDepth {
					parents[0] = sys.ParentOf(parents[0])
				} else {
					parents[i] = sys.ParentOf(parents[i])
				}
				changed = true
				break
			}
		}
		if !changed {
			break
		}
	}
	for anyDiffer(parents) {
		for i := range parents {
			parents[i] = sys.ParentOf(parents[i])
		}
	}
}

func anyDiffer(parents []ir.BaseNode) bool {
	for _, p := range parents {
		if p != parents[0] {
			return true
		}
	}
	return false
}
