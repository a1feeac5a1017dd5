package intrinsics

import (
	"fmt"

	"github.com/quartzlang/quartz/internal/config"
	"github.com/quartzlang/quartz/internal/jsast"
)

// requireShape guards the generator preconditions. Arity is checked by the
// analyzer before lowering, so a violation here is a defect in an earlier
// phase, never a user error.
func requireShape(name string, receiver jsast.Expression, args []jsast.Expression, wantReceiver bool, wantArgs int) {
	if wantReceiver && receiver == nil {
		panic(fmt.Sprintf("intrinsics: %s lowered without a receiver", name))
	}
	if !wantReceiver && receiver != nil {
		panic(fmt.Sprintf("intrinsics: %s lowered with an unexpected receiver", name))
	}
	if len(args) != wantArgs {
		panic(fmt.Sprintf("intrinsics: %s lowered with %d arguments, want %d", name, len(args), wantArgs))
	}
}

// indexedRead lowers recv.get(i) to recv[i].
func indexedRead(receiver jsast.Expression, args []jsast.Expression, _ Context) jsast.Expression {
	requireShape(config.ArrayGetMethodName, receiver, args, true, 1)
	return &jsast.ElementAccess{Object: receiver, Index: args[0]}
}

// indexedWrite lowers recv.set(i, v) to recv[i] = v.
func indexedWrite(receiver jsast.Expression, args []jsast.Expression, _ Context) jsast.Expression {
	requireShape(config.ArraySetMethodName, receiver, args, true, 2)
	return &jsast.Assignment{
		Target: &jsast.ElementAccess{Object: receiver, Index: args[0]},
		Value:  args[1],
	}
}

// lengthRead lowers recv.size to recv.length. Arguments are ignored: the
// member is a property, so there are none to consider.
func lengthRead(receiver jsast.Expression, _ []jsast.Expression, _ Context) jsast.Expression {
	if receiver == nil {
		panic("intrinsics: size lowered without a receiver")
	}
	return &jsast.PropertyAccess{Object: receiver, Name: "length"}
}

// iteratorCall lowers recv.iterator() to arrayIterator(recv).
func iteratorCall(receiver jsast.Expression, args []jsast.Expression, ctx Context) jsast.Expression {
	requireShape(config.ArrayIteratorMethodName, receiver, args, true, 0)
	return ctx.InvokeRuntimeFunction(config.ArrayIteratorFuncName, receiver)
}

func registerArrayMembers(r *Registry) {
	r.Register(CallPattern{Receiver: IsArray, Member: config.ArrayGetMethodName}, indexedRead)
	r.Register(CallPattern{Receiver: IsArray, Member: config.ArraySetMethodName}, indexedWrite)
	r.Register(CallPattern{Receiver: IsArray, Member: config.ArraySizeMemberName}, lengthRead)
	r.Register(CallPattern{Receiver: IsArray, Member: config.ArrayIteratorMethodName}, iteratorCall)
}

// registerConstructors binds KindArray(size) and KindArray(size, filler)
// for every kind with a specialized representation. The Generic Array
// constructor is deliberately absent: it falls through to default call
// lowering.
func registerConstructors(r *Registry) {
	for _, kind := range Kinds {
		if kind == GenericKind {
			continue
		}
		k := kind
		r.Register(CallPattern{Member: k.CtorName()}, func(receiver jsast.Expression, args []jsast.Expression, ctx Context) jsast.Expression {
			switch len(args) {
			case 1:
				requireShape(k.CtorName(), receiver, args, false, 1)
				return SizedConstruction(k, args[0], ctx)
			case 2:
				requireShape(k.CtorName(), receiver, args, false, 2)
				return FilledConstruction(k, args[0], args[1], ctx)
			}
			panic(fmt.Sprintf("intrinsics: %s lowered with %d arguments", k.CtorName(), len(args)))
		})
	}

	r.Register(CallPattern{Member: config.ArrayOfNullsFuncName}, arrayOfNulls)
}

// arrayOfNulls is a Generic sized construction whose filler is the null
// sentinel, allocated through the untagged runtime call.
func arrayOfNulls(receiver jsast.Expression, args []jsast.Expression, ctx Context) jsast.Expression {
	requireShape(config.ArrayOfNullsFuncName, receiver, args, false, 1)
	return ctx.InvokeRuntimeFunction(config.NewArrayFuncName, args[0], &jsast.NullLiteral{})
}

// registerFactories binds the vararg <kind>ArrayOf factories, including the
// Generic arrayOf. The names are derived once here, at build time. By the
// time a factory call is lowered its argument list has already been
// collected into a (possibly tagged) array literal, so the factory itself
// carries no semantics and erases to identity.
func registerFactories(r *Registry) {
	for _, kind := range Kinds {
		name := kind.FactoryName()
		r.Register(CallPattern{Member: name}, func(receiver jsast.Expression, args []jsast.Expression, _ Context) jsast.Expression {
			requireShape(name, receiver, args, false, 1)
			return args[0]
		})
	}
}
