package typesystem

import "strings"

// Type is the interface for all types in our system.
type Type interface {
	String() string
	typeNode()
}

// Primitive is one of the closed set of scalar types.
type Primitive struct {
	Name string
}

func (p Primitive) typeNode()      {}
func (p Primitive) String() string { return p.Name }

var (
	Bool   = Primitive{Name: "Bool"}
	Char   = Primitive{Name: "Char"}
	Byte   = Primitive{Name: "Byte"}
	Short  = Primitive{Name: "Short"}
	Int    = Primitive{Name: "Int"}
	Float  = Primitive{Name: "Float"}
	Long   = Primitive{Name: "Long"}
	Double = Primitive{Name: "Double"}
	String = Primitive{Name: "String"}
	Nil    = Primitive{Name: "Nil"}

	// Any is the top type; array elements of unknown or reference type use it.
	Any = Primitive{Name: "Any"}
)

// TArray is an array type with a fixed element type.
type TArray struct {
	Elem Type
}

func (t TArray) typeNode()      {}
func (t TArray) String() string { return "[" + t.Elem.String() + "]" }

// TFunc is a function type.
type TFunc struct {
	Params     []Type
	ReturnType Type
}

func (t TFunc) typeNode() {}
func (t TFunc) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(t.ReturnType.String())
	return sb.String()
}

// Equal reports structural equality of two types.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case Primitive:
		bt, ok := b.(Primitive)
		return ok && at.Name == bt.Name
	case TArray:
		bt, ok := b.(TArray)
		return ok && Equal(at.Elem, bt.Elem)
	case TFunc:
		bt, ok := b.(TFunc)
		if !ok || len(at.Params) != len(bt.Params) || !Equal(at.ReturnType, bt.ReturnType) {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Assignable reports whether a value of type src can be used where dst is expected.
// Any accepts and provides every type; array assignability is element-wise;
// everything else is structural equality.
func Assignable(dst, src Type) bool {
	if p, ok := dst.(Primitive); ok && p.Name == Any.Name {
		return true
	}
	if p, ok := src.(Primitive); ok && p.Name == Any.Name {
		return true
	}
	if da, ok := dst.(TArray); ok {
		sa, ok := src.(TArray)
		return ok && Assignable(da.Elem, sa.Elem)
	}
	return Equal(dst, src)
}
