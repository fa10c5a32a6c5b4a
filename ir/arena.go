package ir

// Node is implemented by every concrete element kind stored in the arena
// (Module, Block, Expr, FIFO, Array, IntImm, StrImm, Operand, Bind). It is
// the Go analogue of the teacher's `IsElement`/`register_element!` pattern
// (eir/src/ir/user.rs): every element knows its own kind and carries its
// own handle so code holding a `*Module` can recover a `BaseNode` to pass
// around without a second lookup.
type Node interface {
	NodeKind() NodeKind
	selfHandle() BaseNode
	setSelfHandle(BaseNode)
}

// nodeHeader is embedded by every concrete element to implement the
// handle bookkeeping half of Node.
type nodeHeader struct {
	self BaseNode
}

func (h *nodeHeader) selfHandle() BaseNode      { return h.self }
func (h *nodeHeader) setSelfHandle(n BaseNode)  { h.self = n }

// Upcast returns this node's own handle.
func (h *nodeHeader) Upcast() BaseNode { return h.self }

type slot struct {
	gen  uint32
	live bool
	elem Node
}

// Arena is the single growable, process-wide table backing every IR node.
// It guarantees handles returned by Allocate never collide, and that a
// disposed-and-reused key cannot alias a handle still held elsewhere,
// because every handle is tagged with the slot's generation.
type Arena struct {
	slots    []slot
	freeList []int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Allocate inserts e into the arena and returns its handle.
func Allocate[T Node](a *Arena, e T) BaseNode {
	kind := e.NodeKind()
	var key int
	var gen uint32
	if n := len(a.freeList); n > 0 {
		key = a.freeList[n-1]
		a.freeList = a.freeList[:n-1]
		a.slots[key].gen++
		a.slots[key].live = true
		gen = a.slots[key].gen
	} else {
		key = len(a.slots)
		a.slots = append(a.slots, slot{gen: 1, live: true})
		gen = 1
	}
	node := BaseNode{Kind: kind, key: key, gen: gen}
	e.setSelfHandle(node)
	a.slots[key].elem = e
	return node
}

// Get returns the live element at n, downcast to T. ok is false if the
// handle is stale (disposed, generation mismatch, or wrong concrete type).
func Get[T Node](a *Arena, n BaseNode) (T, bool) {
	var zero T
	if n.IsUnknown() {
		return zero, false
	}
	if n.key < 0 || n.key >= len(a.slots) {
		return zero, false
	}
	s := &a.slots[n.key]
	if !s.live || s.gen != n.gen {
		return zero, false
	}
	t, ok := s.elem.(T)
	return t, ok
}

// MustGet is Get but panics with an InvariantViolation on failure; used at
// call sites where a stale handle is itself an internal invariant
// violation rather than a recoverable user error.
func MustGet[T Node](a *Arena, n BaseNode) T {
	t, ok := Get[T](a, n)
	if !ok {
		Violate("arena: stale or ill-typed handle %s", n)
	}
	return t
}

// IsLive reports whether n still refers to a live slot.
func (a *Arena) IsLive(n BaseNode) bool {
	if n.IsUnknown() || n.key < 0 || n.key >= len(a.slots) {
		return false
	}
	s := &a.slots[n.key]
	return s.live && s.gen == n.gen
}

// Dispose invalidates n's key. The caller is responsible for first
// unlinking every Operand it participated in (def-use maintenance lives at
// the ir.System/builder layer, not here) — this mirrors the teacher's
// convention of never disposing a node out from under a live back-pointer.
func (a *Arena) Dispose(n BaseNode) {
	if !a.IsLive(n) {
		Violate("arena: dispose of a non-live handle %s", n)
	}
	a.slots[n.key].live = false
	a.slots[n.key].elem = nil
	a.freeList = append(a.freeList, n.key)
}
