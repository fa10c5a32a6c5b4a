package xform

import (
	"github.com/sarchlab/assassyn/builder"
	"github.com/sarchlab/assassyn/ir"
)

// EraseMetadata clears every transient attribute left on an Array by
// earlier passes (ArrayFullyPartitioned is consumed by
// RewriteArrayPartitions and has no meaning once partitioning has
// already happened, or never will for an array that stayed whole).
// Run last, after every other pass, mirrors
// eir/src/xform/erase_metadata.rs's `erase_metadata`.
func EraseMetadata(b *builder.SysBuilder) {
	sys := b.System()
	for _, h := range sys.Arrays() {
		sys.GetArray(h).ClearAttrs()
	}
}
