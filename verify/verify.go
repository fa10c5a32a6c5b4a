// Package verify checks the structural soundness of a built system's
// def-use graph: every Expr's recorded users are live, well-formed
// Operands that actually occur in their user's own operand list, and
// every operand's value lists that operand back in its user-set. It is
// not an RTL verifier — just an IR sanity check, grounded on
// eir/src/builder/verify.rs's `verify`.
package verify

import "github.com/sarchlab/assassyn/ir"

type verifier struct {
	ir.DefaultVisitor[struct{}]
}

func (v *verifier) VisitExpr(sys *ir.System, e *ir.Expr) (zero struct{}, ok bool) {
	self := e.Upcast()
	for user := range e.Users() {
		verifyOperand(sys, user, self)
	}
	for _, opH := range e.Operands() {
		opnd := ir.MustGet[*ir.Operand](sys.Arena(), opH)
		checkUserSetMembership(sys, opnd.Value(), opH)
	}
	return v.DefaultVisitor.VisitExpr(sys, e)
}

// verifyOperand confirms opHandle is a live Operand whose user is a
// live Expr that actually carries opHandle in its own operand list.
func verifyOperand(sys *ir.System, opHandle, expectedUser ir.BaseNode) {
	opnd, ok := ir.Get[*ir.Operand](sys.Arena(), opHandle)
	if !ok {
		ir.Violate("verify: %s's user-set names a stale operand handle %s", expectedUser, opHandle)
	}
	userExpr, ok := ir.Get[*ir.Expr](sys.Arena(), opnd.User())
	if !ok {
		ir.Violate("verify: operand %s's user is not a live expression", opHandle)
	}
	for _, oh := range userExpr.Operands() {
		if oh == opHandle {
			return
		}
	}
	ir.Violate("verify: operand %s missing from its user %s's operand list", opHandle, userExpr.Name())
}

func checkUserSetMembership(sys *ir.System, value, opHandle ir.BaseNode) {
	var users map[ir.BaseNode]bool
	switch value.Kind {
	case ir.KindExpr:
		users = sys.GetExpr(value).Users()
	case ir.KindFIFO:
		users = sys.GetFIFO(value).Users()
	case ir.KindArray:
		users = sys.GetArray(value).Users()
	case ir.KindModule:
		users = sys.GetModule(value).Users()
	case ir.KindBind:
		users = sys.GetBind(value).Users()
	default:
		return // IntImm/StrImm/Block/ArrayPtr carry no user-set to check.
	}
	if !users[opHandle] {
		ir.Violate("verify: %s's user-set does not contain operand %s", value, opHandle)
	}
}

// Verify walks every module of sys and panics (via ir.Violate) on the
// first broken def-use invariant it finds.
func Verify(sys *ir.System) {
	for _, mh := range sys.Modules() {
		m := sys.GetModule(mh)
		for user := range m.Users() {
			verifyOperand(sys, user, mh)
		}
	}
	v := &verifier{}
	v.DefaultVisitor.Self = v
	ir.Enter[struct{}](v, sys)
}
