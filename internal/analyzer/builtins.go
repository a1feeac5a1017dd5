package analyzer

import (
	"github.com/quartzlang/quartz/internal/config"
	"github.com/quartzlang/quartz/internal/jsbackend/intrinsics"
	"github.com/quartzlang/quartz/internal/typesystem"
)

// arrayKind describes one element category of the array builtins: the
// element type, the constructor name (IntArray) and the vararg factory
// name (intArrayOf). The generic category uses Array / arrayOf.
type arrayKind struct {
	Elem        typesystem.Type
	CtorName    string
	FactoryName string
}

// arrayKinds is the closed list of array element categories the surface
// language exposes. Element types and names come from the intrinsic
// lowering table, so the checked surface and the lowered surface cannot
// drift apart.
var arrayKinds = buildArrayKinds()

func buildArrayKinds() []arrayKind {
	kinds := make([]arrayKind, 0, len(intrinsics.Kinds))
	for _, k := range intrinsics.Kinds {
		kinds = append(kinds, arrayKind{
			Elem:        k.ElemType(),
			CtorName:    k.CtorName(),
			FactoryName: k.FactoryName(),
		})
	}
	return kinds
}

func ctorKind(name string) (arrayKind, bool) {
	for _, k := range arrayKinds {
		if k.CtorName == name {
			return k, true
		}
	}
	return arrayKind{}, false
}

func factoryKind(name string) (arrayKind, bool) {
	for _, k := range arrayKinds {
		if k.FactoryName == name {
			return k, true
		}
	}
	return arrayKind{}, false
}

// isReservedName reports whether name is claimed by an array builtin and
// therefore cannot be declared by user code.
func isReservedName(name string) bool {
	if name == config.ArrayOfNullsFuncName {
		return true
	}
	if _, ok := ctorKind(name); ok {
		return true
	}
	_, ok := factoryKind(name)
	return ok
}

// namedTypes resolves type annotation names.
var namedTypes = map[string]typesystem.Type{
	"Bool":   typesystem.Bool,
	"Char":   typesystem.Char,
	"Byte":   typesystem.Byte,
	"Short":  typesystem.Short,
	"Int":    typesystem.Int,
	"Float":  typesystem.Float,
	"Long":   typesystem.Long,
	"Double": typesystem.Double,
	"String": typesystem.String,
	"Any":    typesystem.Any,
}
