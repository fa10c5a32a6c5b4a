package ir

// Visitor walks the IR tree, short-circuiting on the first handler that
// returns ok=true — a Go rendering of eir/src/ir/visitor.rs's
// `Option<T>`-returning trait. Embed DefaultVisitor[T] to get the
// traversal default for any method you don't override.
type Visitor[T any] interface {
	VisitModule(sys *System, m *Module) (T, bool)
	VisitInput(sys *System, f *FIFO) (T, bool)
	VisitExpr(sys *System, e *Expr) (T, bool)
	VisitArray(sys *System, a *Array) (T, bool)
	VisitIntImm(sys *System, i *IntImm) (T, bool)
	VisitStringImm(sys *System, s *StrImm) (T, bool)
	VisitBlock(sys *System, b *Block) (T, bool)
	VisitOperand(sys *System, o *Operand) (T, bool)
}

// DefaultVisitor implements Visitor[T] with the traversal eir's trait
// gives by default: recurse into children, never itself returning ok.
// Embed it by value and override only the methods you need.
type DefaultVisitor[T any] struct {
	Self Visitor[T]
}

func (d DefaultVisitor[T]) self() Visitor[T] {
	if d.Self != nil {
		return d.Self
	}
	return d
}

func (d DefaultVisitor[T]) VisitModule(sys *System, m *Module) (T, bool) {
	self := d.self()
	for _, h := range m.Inputs() {
		if v, ok := self.VisitInput(sys, sys.GetFIFO(h)); ok {
			return v, true
		}
	}
	return self.VisitBlock(sys, sys.GetBlock(m.Body()))
}

func (d DefaultVisitor[T]) VisitInput(sys *System, f *FIFO) (zero T, ok bool) { return }

func (d DefaultVisitor[T]) VisitExpr(sys *System, e *Expr) (zero T, ok bool) {
	self := d.self()
	for _, h := range e.Operands() {
		opnd, live := Get[*Operand](sys.arena, h)
		if !live {
			continue
		}
		if v, ok := self.VisitOperand(sys, opnd); ok {
			return v, true
		}
	}
	return
}

func (d DefaultVisitor[T]) VisitArray(sys *System, a *Array) (zero T, ok bool)     { return }
func (d DefaultVisitor[T]) VisitIntImm(sys *System, i *IntImm) (zero T, ok bool)   { return }
func (d DefaultVisitor[T]) VisitStringImm(sys *System, s *StrImm) (zero T, ok bool) { return }
func (d DefaultVisitor[T]) VisitOperand(sys *System, o *Operand) (zero T, ok bool) { return }

func (d DefaultVisitor[T]) VisitBlock(sys *System, b *Block) (zero T, ok bool) {
	self := d.self()
	switch b.Kind().Tag {
	case BlockCondition, BlockWaitUntil:
		if v, okd := Dispatch(self, sys, b.Kind().Payload, nil); okd {
			return v, true
		}
	}
	for _, h := range b.Items() {
		if v, okd := Dispatch(self, sys, h, nil); okd {
			return v, true
		}
	}
	return
}

// Enter runs v over every module of sys in declaration order, stopping at
// the first short-circuit, per `Visitor::enter`.
func Enter[T any](v Visitor[T], sys *System) (zero T, ok bool) {
	for _, h := range sys.Modules() {
		if val, okd := v.VisitModule(sys, sys.GetModule(h)); okd {
			return val, true
		}
	}
	return
}

// Dispatch routes node to the matching Visit* method, honoring the
// nonRecur suppression set (node kinds to skip without recursing),
// mirroring `Visitor::dispatch`.
func Dispatch[T any](v Visitor[T], sys *System, node BaseNode, nonRecur map[NodeKind]bool) (zero T, ok bool) {
	if nonRecur != nil && nonRecur[node.Kind] {
		return
	}
	switch node.Kind {
	case KindExpr:
		return v.VisitExpr(sys, sys.GetExpr(node))
	case KindBlock:
		return v.VisitBlock(sys, sys.GetBlock(node))
	case KindModule:
		return v.VisitModule(sys, sys.GetModule(node))
	case KindFIFO:
		return v.VisitInput(sys, sys.GetFIFO(node))
	case KindArray:
		return v.VisitArray(sys, sys.GetArray(node))
	case KindIntImm:
		return v.VisitIntImm(sys, MustGet[*IntImm](sys.arena, node))
	case KindStrImm:
		return v.VisitStringImm(sys, MustGet[*StrImm](sys.arena, node))
	case KindOperand:
		return v.VisitOperand(sys, MustGet[*Operand](sys.arena, node))
	default:
		Violate("dispatch: unknown node kind %s", node.Kind)
		return
	}
}
