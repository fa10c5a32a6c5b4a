package builder

import "github.com/sarchlab/assassyn/ir"

// insertPoint is the process-local cursor that every Create* call
// consults: the module under construction, the block new items append
// to, and an optional "insert before this item" override used by
// transform passes that splice code in front of an existing expression
// — see spec §4.3 and eir/src/builder/system.rs's
// `set_current_module`/`set_current_block`/`set_insert_before`.
type insertPoint struct {
	module       ir.BaseNode
	block        ir.BaseNode
	insertBefore ir.BaseNode // Unknown unless overridden
}

func (p *insertPoint) reset() {
	p.module = ir.Unknown
	p.block = ir.Unknown
	p.insertBefore = ir.Unknown
}
