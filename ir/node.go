// Package ir implements the arena-backed intermediate representation:
// modules, blocks, expressions, FIFO ports, arrays, immediates, operands
// and binds, plus the visitor framework used to traverse them.
package ir

import "fmt"

// NodeKind tags the polymorphic element stored at an arena slot.
type NodeKind uint8

const (
	KindUnknown NodeKind = iota
	KindModule
	KindBlock
	KindExpr
	KindFIFO
	KindArray
	KindIntImm
	KindStrImm
	KindOperand
	KindBind
	KindArrayPtr
)

func (k NodeKind) String() string {
	switch k {
	case KindModule:
		return "Module"
	case KindBlock:
		return "Block"
	case KindExpr:
		return "Expr"
	case KindFIFO:
		return "FIFO"
	case KindArray:
		return "Array"
	case KindIntImm:
		return "IntImm"
	case KindStrImm:
		return "StrImm"
	case KindOperand:
		return "Operand"
	case KindBind:
		return "Bind"
	case KindArrayPtr:
		return "ArrayPtr"
	default:
		return "Unknown"
	}
}

// BaseNode is a (kind, key, generation) handle into the arena. Handles are
// copyable, comparable, and stable for the lifetime of the arena. The
// generation field lets the arena safely recycle a disposed slot's key
// without a stale handle aliasing the new occupant (see spec §4.1 and
// SPEC_FULL.md §3).
type BaseNode struct {
	Kind NodeKind
	key  int
	gen  uint32
}

// Unknown is the distinguished "no node" handle.
var Unknown = BaseNode{Kind: KindUnknown}

// IsUnknown reports whether n is the distinguished absent handle.
func (n BaseNode) IsUnknown() bool {
	return n.Kind == KindUnknown
}

func (n BaseNode) String() string {
	if n.IsUnknown() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s#%d", n.Kind, n.key)
}

// InvariantViolation marks an internal structural invariant failure (arena
// aliasing, a disposed-but-referenced node, a verifier finding). Per spec
// §7 these are fatal with no recovery path: Violate panics with one, and
// nothing in this repository recovers from that panic.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string { return e.Msg }

// Violate panics with a formatted InvariantViolation.
func Violate(format string, args ...any) {
	panic(&InvariantViolation{Msg: fmt.Sprintf(format, args...)})
}
