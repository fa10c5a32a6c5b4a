package ir

// Operand is a first-class def-use edge: it records (value, user, index)
// so the user-set of a value is a set of Operand handles, each locating
// the edge precisely — see spec §3/§4.4 and eir/src/ir/user.rs.
type Operand struct {
	nodeHeader
	value BaseNode
	user  BaseNode
}

func (o *Operand) NodeKind() NodeKind { return KindOperand }

// Value returns the def side of this edge.
func (o *Operand) Value() BaseNode { return o.value }

// User returns the Expr that owns this operand.
func (o *Operand) User() BaseNode { return o.user }

// Index returns this operand's position in its user Expr's operand list.
func (o *Operand) Index(sys *System) int {
	expr := MustGet[*Expr](sys.arena, o.user)
	for i, op := range expr.operands {
		if op == o.selfHandle() {
			return i
		}
	}
	Violate("operand %s not found in its user %s", o.selfHandle(), o.user)
	return -1
}
