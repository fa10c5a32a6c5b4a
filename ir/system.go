package ir

// System is the top-level IR container: one arena plus the deterministic
// declaration order of every module and array it holds — see spec §3 and
// eir/src/builder/system.rs's `SysBuilder`.
type System struct {
	name    string
	arena   *Arena
	modules []BaseNode
	arrays  []BaseNode
}

// NewSystem creates an empty system named name.
func NewSystem(name string) *System {
	return &System{name: name, arena: NewArena()}
}

func (s *System) Name() string { return s.name }
func (s *System) Arena() *Arena { return s.arena }

// Modules returns every module handle in declaration order.
func (s *System) Modules() []BaseNode { return s.modules }

// Arrays returns every array handle in declaration order.
func (s *System) Arrays() []BaseNode { return s.arrays }

// AddModule records m in declaration order. Exported for builder use.
func (s *System) AddModule(m BaseNode) { s.modules = append(s.modules, m) }

// AddArray records a in declaration order. Exported for builder use.
func (s *System) AddArray(a BaseNode) { s.arrays = append(s.arrays, a) }

// RemoveArrayRecord drops a from the declaration-order array list.
// Exported for builder.RemoveArray, which disposes a's arena slot and
// must also stop it appearing in Arrays() — leaving a disposed handle
// in the list would hand a stale reference to anything enumerating
// arrays afterwards (e.g. a later array-partition pass re-scanning).
func (s *System) RemoveArrayRecord(a BaseNode) {
	for i, h := range s.arrays {
		if h == a {
			s.arrays = append(s.arrays[:i], s.arrays[i+1:]...)
			return
		}
	}
}

// GetModule fetches and type-asserts a module handle, panicking via
// Violate on a stale or mistyped handle.
func (s *System) GetModule(h BaseNode) *Module { return MustGet[*Module](s.arena, h) }

// GetArray fetches and type-asserts an array handle.
func (s *System) GetArray(h BaseNode) *Array { return MustGet[*Array](s.arena, h) }

// GetBlock fetches and type-asserts a block handle.
func (s *System) GetBlock(h BaseNode) *Block { return MustGet[*Block](s.arena, h) }

// GetExpr fetches and type-asserts an expr handle.
func (s *System) GetExpr(h BaseNode) *Expr { return MustGet[*Expr](s.arena, h) }

// GetFIFO fetches and type-asserts a FIFO handle.
func (s *System) GetFIFO(h BaseNode) *FIFO { return MustGet[*FIFO](s.arena, h) }

// GetBind fetches and type-asserts a bind handle.
func (s *System) GetBind(h BaseNode) *Bind { return MustGet[*Bind](s.arena, h) }

// ModuleByName returns the first module with the given name, or Unknown.
func (s *System) ModuleByName(name string) (BaseNode, bool) {
	for _, h := range s.modules {
		if s.GetModule(h).Name() == name {
			return h, true
		}
	}
	return Unknown, false
}

// ArrayByName returns the first array with the given name, or Unknown.
func (s *System) ArrayByName(name string) (BaseNode, bool) {
	for _, h := range s.arrays {
		if s.GetArray(h).Name() == name {
			return h, true
		}
	}
	return Unknown, false
}

// ParentOf returns n's structural parent: an Expr's owning Block, a
// Block's own parent (another Block or a Module), or Unknown for a
// Module (the root of the structural tree) or any non-structural node.
func (s *System) ParentOf(n BaseNode) BaseNode {
	switch n.Kind {
	case KindExpr:
		return s.GetExpr(n).Parent()
	case KindBlock:
		return s.GetBlock(n).Parent()
	default:
		return Unknown
	}
}

// ParentModule walks a Block's parent chain up to its owning Module.
func (s *System) ParentModule(block BaseNode) BaseNode {
	cur := block
	for {
		switch cur.Kind {
		case KindModule:
			return cur
		case KindBlock:
			cur = s.GetBlock(cur).Parent()
		default:
			Violate("ParentModule: unexpected node kind %s in parent chain", cur.Kind)
		}
	}
}
