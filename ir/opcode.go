package ir

// Subcode families, mirroring eir/src/ir/expr/subcode.rs's
// `register_subcode!` macro output. Kept as small closed enums with an
// operator-string accessor used for diagnostic rendering.

type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Shl
	Shr
	BitwiseOr
	BitwiseAnd
	BitwiseXor
)

func (b BinaryOp) String() string {
	switch b {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Shl:
		return "<<"
	case Shr:
		return ">>"
	case BitwiseOr:
		return "|"
	case BitwiseAnd:
		return "&"
	case BitwiseXor:
		return "^"
	default:
		return "?"
	}
}

type UnaryOp uint8

const (
	Flip UnaryOp = iota
	Neg
)

func (u UnaryOp) String() string {
	if u == Flip {
		return "!"
	}
	return "-"
}

type CompareOp uint8

const (
	IGT CompareOp = iota
	ILT
	IGE
	ILE
	EQ
	NEQ
)

func (c CompareOp) String() string {
	switch c {
	case IGT:
		return ">"
	case ILT:
		return "<"
	case IGE:
		return ">="
	case ILE:
		return "<="
	case EQ:
		return "=="
	case NEQ:
		return "!="
	default:
		return "?"
	}
}

type CastOp uint8

const (
	CastBits CastOp = iota
	SExt
	ZExt
)

func (c CastOp) String() string {
	switch c {
	case CastBits:
		return "cast"
	case SExt:
		return "sext"
	case ZExt:
		return "zext"
	default:
		return "?"
	}
}

type FIFOField uint8

const (
	FIFOFieldPeek FIFOField = iota
	FIFOFieldValid
	FIFOFieldReady
	FIFOFieldTriggered
)

func (f FIFOField) String() string {
	switch f {
	case FIFOFieldPeek:
		return "peek"
	case FIFOFieldValid:
		return "valid"
	case FIFOFieldReady:
		return "ready"
	case FIFOFieldTriggered:
		return "triggered"
	default:
		return "?"
	}
}

// BlockIntrinsicKind enumerates the three bare instructions named in
// spec §3's BlockIntrinsic family: Finish/Assert/Barrier. The structural
// Condition/WaitUntil/Cycled shapes live on Block.Kind (see block.go),
// not here — they gate a block's execution, they are not instructions
// within one.
type BlockIntrinsicKind uint8

const (
	BIFinish BlockIntrinsicKind = iota
	BIAssert
	BIBarrier
)

func (b BlockIntrinsicKind) String() string {
	switch b {
	case BIFinish:
		return "finish"
	case BIAssert:
		return "assert"
	case BIBarrier:
		return "barrier"
	default:
		return "?"
	}
}

// Opcode is the tagged-union of every expression operation named in
// spec §3. Binary/Unary/Compare/Cast/FIFOField/BlockIntrinsic carry a
// subcode distinguishing their family member; the rest are leaf opcodes.
type Opcode struct {
	tag       opcodeTag
	binop     BinaryOp
	uop       UnaryOp
	cmp       CompareOp
	cast      CastOp
	fifoField FIFOField
	blockOp   BlockIntrinsicKind
}

type opcodeTag uint8

const (
	OpBinary opcodeTag = iota
	OpUnary
	OpCompare
	OpCast
	OpSlice
	OpConcat
	OpSelect
	OpSelect1Hot
	OpLoad
	OpStore
	OpFIFOPush
	OpFIFOPop
	OpFIFOFieldOp
	OpBlockIntrinsicOp
	OpBind
	OpAsyncCall
	OpTrigger
	OpSpinTrigger
	OpLog
)

func MakeBinary(op BinaryOp) Opcode   { return Opcode{tag: OpBinary, binop: op} }
func MakeUnary(op UnaryOp) Opcode     { return Opcode{tag: OpUnary, uop: op} }
func MakeCompare(op CompareOp) Opcode { return Opcode{tag: OpCompare, cmp: op} }
func MakeCast(op CastOp) Opcode       { return Opcode{tag: OpCast, cast: op} }
func MakeFIFOField(f FIFOField) Opcode {
	return Opcode{tag: OpFIFOFieldOp, fifoField: f}
}
func MakeBlockIntrinsic(b BlockIntrinsicKind) Opcode {
	return Opcode{tag: OpBlockIntrinsicOp, blockOp: b}
}

var (
	OpcodeSlice          = Opcode{tag: OpSlice}
	OpcodeConcat         = Opcode{tag: OpConcat}
	OpcodeSelect         = Opcode{tag: OpSelect}
	OpcodeSelect1Hot     = Opcode{tag: OpSelect1Hot}
	OpcodeLoad           = Opcode{tag: OpLoad}
	OpcodeStore          = Opcode{tag: OpStore}
	OpcodeFIFOPush       = Opcode{tag: OpFIFOPush}
	OpcodeFIFOPop        = Opcode{tag: OpFIFOPop}
	OpcodeBind           = Opcode{tag: OpBind}
	OpcodeAsyncCall      = Opcode{tag: OpAsyncCall}
	OpcodeTrigger        = Opcode{tag: OpTrigger}
	OpcodeSpinTrigger    = Opcode{tag: OpSpinTrigger}
	OpcodeLog            = Opcode{tag: OpLog}
)

// Tag exposes the opcode family for switch statements outside the package.
func (o Opcode) Tag() opcodeTag { return o.tag }

func (o Opcode) BinaryOp() BinaryOp               { return o.binop }
func (o Opcode) UnaryOp() UnaryOp                 { return o.uop }
func (o Opcode) CompareOp() CompareOp             { return o.cmp }
func (o Opcode) CastOp() CastOp                   { return o.cast }
func (o Opcode) FIFOFieldOp() FIFOField           { return o.fifoField }
func (o Opcode) BlockIntrinsicOp() BlockIntrinsicKind { return o.blockOp }

func (o Opcode) Equal(other Opcode) bool { return o == other }

// HasSideEffect reports whether this opcode must never be coalesced by
// CSE (spec §4.7): Load/Store/FIFOPush/FIFOPop/Trigger/Bind/AsyncCall/Log/
// SpinTrigger and the Finish/Assert/Barrier block intrinsics.
func (o Opcode) HasSideEffect() bool {
	switch o.tag {
	case OpLoad, OpStore, OpFIFOPush, OpFIFOPop, OpTrigger, OpBind, OpAsyncCall, OpLog, OpSpinTrigger:
		return true
	case OpBlockIntrinsicOp:
		switch o.blockOp {
		case BIFinish, BIAssert, BIBarrier:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

func (o Opcode) String() string {
	switch o.tag {
	case OpBinary:
		return o.binop.String()
	case OpUnary:
		return o.uop.String()
	case OpCompare:
		return o.cmp.String()
	case OpCast:
		return o.cast.String()
	case OpSlice:
		return "slice"
	case OpConcat:
		return "concat"
	case OpSelect:
		return "select"
	case OpSelect1Hot:
		return "select1hot"
	case OpLoad:
		return "load"
	case OpStore:
		return "store"
	case OpFIFOPush:
		return "fifo_push"
	case OpFIFOPop:
		return "fifo_pop"
	case OpFIFOFieldOp:
		return o.fifoField.String()
	case OpBlockIntrinsicOp:
		return o.blockOp.String()
	case OpBind:
		return "bind"
	case OpAsyncCall:
		return "async_call"
	case OpTrigger:
		return "trigger"
	case OpSpinTrigger:
		return "spin_trigger"
	case OpLog:
		return "log"
	default:
		return "?"
	}
}
