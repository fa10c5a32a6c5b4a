package ir

import (
	"fmt"
	"strings"
)

// DataTypeKind distinguishes the DataType sum's variants.
type DataTypeKind uint8

const (
	TyVoid DataTypeKind = iota
	TyInt
	TyUInt
	TyBits
	TyFp32
	TyStr
	TyModule
	TyArray
)

// DataType mirrors eir/src/ir/data.rs's `DataType` enum: Void, signed/
// unsigned integers of arbitrary width, raw Bits, Fp32, Str, a Module
// signature (ordered port types) and an ArrayType(elem, size).
type DataType struct {
	kind  DataTypeKind
	width int // Int/UInt/Bits
	elem  *DataType
	size  int          // ArrayType
	ports []DataType   // Module
}

// Void is the empty type.
var Void = DataType{kind: TyVoid}

// Str is the string-immediate type.
var Str = DataType{kind: TyStr}

// Fp32 is a 32-bit IEEE float.
var Fp32 = DataType{kind: TyFp32}

// Int builds a signed integer type of the given width.
func Int(bits int) DataType { return DataType{kind: TyInt, width: bits} }

// UInt builds an unsigned integer type of the given width.
func UInt(bits int) DataType { return DataType{kind: TyUInt, width: bits} }

// Bits builds a raw (unsigned, no arithmetic-sign semantics) bit vector.
func Bits(bits int) DataType { return DataType{kind: TyBits, width: bits} }

// ArrayType builds the type of an array of size elements of ty.
func ArrayType(ty DataType, size int) DataType {
	if !ty.IsScalar() {
		Violate("array element type must be scalar, got %s", ty)
	}
	cp := ty
	return DataType{kind: TyArray, elem: &cp, size: size}
}

// ModuleType builds a module signature type from its ordered port types.
func ModuleType(ports []DataType) DataType {
	return DataType{kind: TyModule, ports: append([]DataType(nil), ports...)}
}

// Kind reports this type's top-level variant.
func (d DataType) Kind() DataTypeKind { return d.kind }

// IsScalar reports whether d is Int/UInt/Bits/Fp32.
func (d DataType) IsScalar() bool {
	switch d.kind {
	case TyInt, TyUInt, TyBits, TyFp32:
		return true
	default:
		return false
	}
}

// IsInt reports whether d is Int or UInt.
func (d DataType) IsInt() bool { return d.kind == TyInt || d.kind == TyUInt }

// IsRaw reports whether d is a raw Bits type.
func (d DataType) IsRaw() bool { return d.kind == TyBits }

// IsSigned reports whether arithmetic/comparison on d is signed.
func (d DataType) IsSigned() bool { return d.kind == TyInt || d.kind == TyFp32 }

// IsFp reports whether d is Fp32.
func (d DataType) IsFp() bool { return d.kind == TyFp32 }

// IsVoid reports whether d is Void.
func (d DataType) IsVoid() bool { return d.kind == TyVoid }

// IsModule reports whether d is a Module signature.
func (d DataType) IsModule() bool { return d.kind == TyModule }

// IsArray reports whether d is an ArrayType.
func (d DataType) IsArray() bool { return d.kind == TyArray }

// ModulePorts returns the ordered port types of a Module signature type.
func (d DataType) ModulePorts() []DataType {
	if d.kind != TyModule {
		Violate("ModulePorts called on non-module type %s", d)
	}
	return d.ports
}

// ArrayElem returns the element type of an ArrayType.
func (d DataType) ArrayElem() DataType {
	if d.kind != TyArray {
		Violate("ArrayElem called on non-array type %s", d)
	}
	return *d.elem
}

// ArraySize returns the element count of an ArrayType.
func (d DataType) ArraySize() int {
	if d.kind != TyArray {
		Violate("ArraySize called on non-array type %s", d)
	}
	return d.size
}

// BitWidth returns the bit-width of a scalar type, or the total flattened
// width (elem.BitWidth() * size) for an array, matching
// `DataType::bits` in the original source.
func (d DataType) BitWidth() int {
	switch d.kind {
	case TyVoid, TyStr, TyModule:
		return 0
	case TyInt, TyUInt, TyBits:
		return d.width
	case TyFp32:
		return 32
	case TyArray:
		return d.elem.BitWidth() * d.size
	default:
		return 0
	}
}

// Equal reports structural equality between two data types.
func (d DataType) Equal(o DataType) bool {
	if d.kind != o.kind {
		return false
	}
	switch d.kind {
	case TyInt, TyUInt, TyBits:
		return d.width == o.width
	case TyArray:
		return d.size == o.size && d.elem.Equal(*o.elem)
	case TyModule:
		if len(d.ports) != len(o.ports) {
			return false
		}
		for i := range d.ports {
			if !d.ports[i].Equal(o.ports[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (d DataType) String() string {
	switch d.kind {
	case TyInt:
		return fmt.Sprintf("i%d", d.width)
	case TyUInt:
		return fmt.Sprintf("u%d", d.width)
	case TyBits:
		return fmt.Sprintf("b%d", d.width)
	case TyFp32:
		return "f32"
	case TyStr:
		return "Str"
	case TyVoid:
		return "()"
	case TyArray:
		return fmt.Sprintf("array[%s x %d]", d.elem.String(), d.size)
	case TyModule:
		parts := make([]string, len(d.ports))
		for i, p := range d.ports {
			parts[i] = p.String()
		}
		return fmt.Sprintf("module[%s]", strings.Join(parts, ", "))
	default:
		return "?"
	}
}

// CeilLog2 returns the number of address bits needed to index `size`
// entries: ceil(log2(size)), with a floor of 1, matching
// `depth.ilog2()` call sites in eir/src/ir/module/memory.rs and the
// Array index-type rule of spec §3.
func CeilLog2(size int) int {
	if size <= 1 {
		return 1
	}
	bits := 0
	v := size - 1
	for v > 0 {
		bits++
		v >>= 1
	}
	if bits == 0 {
		bits = 1
	}
	return bits
}

// Typed is implemented by every node kind that carries a DataType.
type Typed interface {
	DType() DataType
}
