package builder

import "github.com/sarchlab/assassyn/ir"

// addOperand allocates a reified Operand(value, user) edge, appends it
// to user's operand list, and records it in value's user-set — the Go
// rendering of eir/src/ir/user.rs's `User::add_operand`.
func (b *SysBuilder) addOperand(user, value ir.BaseNode) ir.BaseNode {
	opnd := ir.Allocate(b.sys.Arena(), ir.NewOperand(value, user))
	b.sys.GetExpr(user).AppendOperand(opnd)
	b.addUser(value, opnd)
	return opnd
}

// addUser records op in value's user-set, dispatching on value's kind.
func (b *SysBuilder) addUser(value, op ir.BaseNode) {
	switch value.Kind {
	case ir.KindExpr:
		b.sys.GetExpr(value).AddUser(op)
	case ir.KindFIFO:
		b.sys.GetFIFO(value).AddUser(op)
	case ir.KindArray:
		b.sys.GetArray(value).AddUser(op)
	case ir.KindModule:
		b.sys.GetModule(value).AddUser(op)
	case ir.KindBind:
		b.sys.GetBind(value).AddUser(op)
	default:
		// IntImm/StrImm/Block/ArrayPtr/Operand carry no user-set: they are
		// either interned constants or structural, never replaced in place.
	}
}

func (b *SysBuilder) removeUser(value, op ir.BaseNode) {
	switch value.Kind {
	case ir.KindExpr:
		b.sys.GetExpr(value).RemoveUser(op)
	case ir.KindFIFO:
		b.sys.GetFIFO(value).RemoveUser(op)
	case ir.KindArray:
		b.sys.GetArray(value).RemoveUser(op)
	case ir.KindModule:
		b.sys.GetModule(value).RemoveUser(op)
	case ir.KindBind:
		b.sys.GetBind(value).RemoveUser(op)
	default:
	}
}

// ReplaceAllUsesWith redirects every Operand currently pointing at
// oldVal to newVal, maintaining both sides' user-sets. A FIFO oldVal
// that is not marked as a placeholder may only be replaced by another
// FIFO. Every use is redirected to newVal as given, whichever module it
// sits in: no placeholder is created and no use is remapped to another
// module's port by index. Values without a user-set (IntImm, StrImm)
// have no uses to redirect, so the call leaves their operands as they
// are — see eir/src/builder/system.rs's `replace_all_uses_with`.
func (b *SysBuilder) ReplaceAllUsesWith(oldVal, newVal ir.BaseNode) {
	if oldVal.Kind == ir.KindFIFO {
		old := b.sys.GetFIFO(oldVal)
		if !old.IsPlaceholder() && newVal.Kind != ir.KindFIFO {
			ir.Violate("ReplaceAllUsesWith: FIFO %s can only be replaced by another FIFO", old.Name())
		}
	}
	users := b.usersOf(oldVal)
	ops := make([]ir.BaseNode, 0, len(users))
	for op := range users {
		ops = append(ops, op)
	}
	for _, op := range ops {
		opnd := ir.MustGet[*ir.Operand](b.sys.Arena(), op)
		opnd.SetValue(newVal)
		b.addUser(newVal, op)
	}
	b.clearUsers(oldVal)
}

func (b *SysBuilder) usersOf(value ir.BaseNode) map[ir.BaseNode]bool {
	switch value.Kind {
	case ir.KindExpr:
		return b.sys.GetExpr(value).Users()
	case ir.KindFIFO:
		return b.sys.GetFIFO(value).Users()
	case ir.KindArray:
		return b.sys.GetArray(value).Users()
	case ir.KindModule:
		return b.sys.GetModule(value).Users()
	case ir.KindBind:
		return b.sys.GetBind(value).Users()
	default:
		return nil
	}
}

func (b *SysBuilder) clearUsers(value ir.BaseNode) {
	switch value.Kind {
	case ir.KindExpr:
		e := b.sys.GetExpr(value)
		for op := range e.Users() {
			e.RemoveUser(op)
		}
	case ir.KindFIFO:
		f := b.sys.GetFIFO(value)
		for op := range f.Users() {
			f.RemoveUser(op)
		}
	case ir.KindArray:
		a := b.sys.GetArray(value)
		for op := range a.Users() {
			a.RemoveUser(op)
		}
	case ir.KindModule:
		m := b.sys.GetModule(value)
		for op := range m.Users() {
			m.RemoveUser(op)
		}
	case ir.KindBind:
		bd := b.sys.GetBind(value)
		for op := range bd.Users() {
			bd.RemoveUser(op)
		}
	}
}

// EraseFromParent removes expr from its owning block's item list and
// disposes it. Callers must first have redirected every use (typically
// via ReplaceAllUsesWith) unless expr has no users.
func (b *SysBuilder) EraseFromParent(expr ir.BaseNode) {
	e := b.sys.GetExpr(expr)
	if len(e.Users()) != 0 {
		ir.Violate("EraseFromParent: expr %s still has %d users", e.Name(), len(e.Users()))
	}
	parent := b.sys.GetBlock(e.Parent())
	idx := parent.IndexOf(expr)
	if idx < 0 {
		ir.Violate("EraseFromParent: expr %s not found in its parent block", e.Name())
	}
	for _, opH := range e.Operands() {
		opnd := ir.MustGet[*ir.Operand](b.sys.Arena(), opH)
		b.removeUser(opnd.Value(), opH)
		b.sys.Arena().Dispose(opH)
	}
	parent.EraseItem(idx)
	b.sys.Arena().Dispose(expr)
}
