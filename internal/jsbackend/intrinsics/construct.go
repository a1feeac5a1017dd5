package intrinsics

import (
	"fmt"

	"github.com/quartzlang/quartz/internal/config"
	"github.com/quartzlang/quartz/internal/jsast"
)

// withType wraps value in the runtime tagging call: withType("<tag>", value).
// The tag goes through the unit's string literal pool.
func withType(tag string, value jsast.Expression, ctx Context) jsast.Expression {
	return ctx.InvokeRuntimeFunction(config.WithTypeFuncName, ctx.GetStringLiteral(tag), value)
}

// SizedConstruction lowers KindArray(size):
//
//	Byte/Short/Int/Float/Double → new <TypedArray>(size)
//	Boolean/Char/Long           → withType("<Kind>Array", newArray(size))
//
// Generic never reaches this table; its constructor is not an intrinsic.
func SizedConstruction(kind ElementKind, size jsast.Expression, ctx Context) jsast.Expression {
	switch kind.BackingStrategy() {
	case DirectNativeTyped:
		return &jsast.NewExpression{
			Callee:    &jsast.Name{Value: kind.TypedArrayName()},
			Arguments: []jsast.Expression{size},
		}
	case TaggedGeneric:
		return withType(kind.Tag(), ctx.InvokeRuntimeFunction(config.NewArrayFuncName, size), ctx)
	}
	panic(fmt.Sprintf("intrinsics: sized construction of %s arrays has no lowering rule", kind))
}

// FilledConstruction lowers KindArray(size, filler), substituting
// newArrayF(size, filler) for the allocation in both branches of the
// sized-construction split.
func FilledConstruction(kind ElementKind, size, filler jsast.Expression, ctx Context) jsast.Expression {
	fill := ctx.InvokeRuntimeFunction(config.NewArrayFFuncName, size, filler)
	switch kind.BackingStrategy() {
	case DirectNativeTyped:
		return &jsast.NewExpression{
			Callee:    &jsast.Name{Value: kind.TypedArrayName()},
			Arguments: []jsast.Expression{fill},
		}
	case TaggedGeneric:
		return withType(kind.Tag(), fill, ctx)
	}
	panic(fmt.Sprintf("intrinsics: filled construction of %s arrays has no lowering rule", kind))
}

// LowerArrayLiteral wraps an already-lowered array literal in the
// representation of its statically known element kind:
//
//	Byte/Short/Int/Float/Double → new <TypedArray>(literal)
//	Boolean/Char/Long           → withType("<Kind>Array", literal)
//	Generic                     → literal, untouched
func LowerArrayLiteral(kind ElementKind, literal jsast.Expression, ctx Context) jsast.Expression {
	switch kind.BackingStrategy() {
	case DirectNativeTyped:
		return &jsast.NewExpression{
			Callee:    &jsast.Name{Value: kind.TypedArrayName()},
			Arguments: []jsast.Expression{literal},
		}
	case TaggedGeneric:
		return withType(kind.Tag(), literal, ctx)
	case Untagged:
		return literal
	}
	panic(fmt.Sprintf("intrinsics: array literal of %s has no lowering rule", kind))
}
