// Package intrinsics recognizes array operations at call sites and emits
// specialized target-AST nodes for them, bypassing default call lowering.
//
// JavaScript has no single array representation that fits every element
// type: Byte/Short/Int/Float/Double map onto typed arrays, Boolean/Char/
// Long arrays are plain arrays carrying a runtime tag, and generic arrays
// are plain arrays. Each recognized call shape is bound to a generator
// that emits the representation-correct code for its element kind.
package intrinsics

import (
	"fmt"

	"github.com/quartzlang/quartz/internal/typesystem"
)

// ElementKind is the closed set of array element categories.
type ElementKind int

const (
	BooleanKind ElementKind = iota
	CharKind
	ByteKind
	ShortKind
	IntKind
	FloatKind
	LongKind
	DoubleKind
	GenericKind
)

// Kinds lists every ElementKind. Registration and tests iterate it; keep
// it in sync with the constants above.
var Kinds = []ElementKind{
	BooleanKind, CharKind, ByteKind, ShortKind,
	IntKind, FloatKind, LongKind, DoubleKind, GenericKind,
}

// Strategy is how arrays of a kind are represented at runtime.
type Strategy int

const (
	// DirectNativeTyped arrays are JavaScript typed arrays (Int32Array etc.).
	DirectNativeTyped Strategy = iota
	// TaggedGeneric arrays are plain arrays tagged with the kind name so
	// the runtime can recover the element kind.
	TaggedGeneric
	// Untagged arrays are plain arrays with no marker.
	Untagged
)

func (k ElementKind) String() string {
	switch k {
	case BooleanKind:
		return "Boolean"
	case CharKind:
		return "Char"
	case ByteKind:
		return "Byte"
	case ShortKind:
		return "Short"
	case IntKind:
		return "Int"
	case FloatKind:
		return "Float"
	case LongKind:
		return "Long"
	case DoubleKind:
		return "Double"
	case GenericKind:
		return "Generic"
	}
	panic(fmt.Sprintf("intrinsics: unknown ElementKind %d", int(k)))
}

// BackingStrategy returns the runtime representation for arrays of k.
func (k ElementKind) BackingStrategy() Strategy {
	switch k {
	case ByteKind, ShortKind, IntKind, FloatKind, DoubleKind:
		return DirectNativeTyped
	case BooleanKind, CharKind, LongKind:
		return TaggedGeneric
	case GenericKind:
		return Untagged
	}
	panic(fmt.Sprintf("intrinsics: unknown ElementKind %d", int(k)))
}

// TypedArrayName returns the native constructor for DirectNativeTyped kinds.
func (k ElementKind) TypedArrayName() string {
	switch k {
	case ByteKind:
		return "Int8Array"
	case ShortKind:
		return "Int16Array"
	case IntKind:
		return "Int32Array"
	case FloatKind:
		return "Float32Array"
	case DoubleKind:
		return "Float64Array"
	}
	panic(fmt.Sprintf("intrinsics: %s arrays have no typed-array representation", k))
}

// Tag returns the runtime marker for TaggedGeneric kinds.
func (k ElementKind) Tag() string {
	switch k {
	case BooleanKind, CharKind, LongKind:
		return k.String() + "Array"
	}
	panic(fmt.Sprintf("intrinsics: %s arrays are not tagged", k))
}

// ElemType returns the element type arrays of k hold.
func (k ElementKind) ElemType() typesystem.Type {
	switch k {
	case BooleanKind:
		return typesystem.Bool
	case CharKind:
		return typesystem.Char
	case ByteKind:
		return typesystem.Byte
	case ShortKind:
		return typesystem.Short
	case IntKind:
		return typesystem.Int
	case FloatKind:
		return typesystem.Float
	case LongKind:
		return typesystem.Long
	case DoubleKind:
		return typesystem.Double
	case GenericKind:
		return typesystem.Any
	}
	panic(fmt.Sprintf("intrinsics: unknown ElementKind %d", int(k)))
}

// KindOf classifies an array element type. Every non-primitive element
// type, and any primitive outside the closed kind set, is Generic.
func KindOf(elem typesystem.Type) ElementKind {
	p, ok := elem.(typesystem.Primitive)
	if !ok {
		return GenericKind
	}
	switch p {
	case typesystem.Bool:
		return BooleanKind
	case typesystem.Char:
		return CharKind
	case typesystem.Byte:
		return ByteKind
	case typesystem.Short:
		return ShortKind
	case typesystem.Int:
		return IntKind
	case typesystem.Float:
		return FloatKind
	case typesystem.Long:
		return LongKind
	case typesystem.Double:
		return DoubleKind
	}
	return GenericKind
}
