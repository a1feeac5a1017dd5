package analyzer

import (
	"github.com/quartzlang/quartz/internal/ast"
	"github.com/quartzlang/quartz/internal/config"
	"github.com/quartzlang/quartz/internal/diagnostics"
	"github.com/quartzlang/quartz/internal/typesystem"
)

// checkExpression types expr, records the result and returns it. When the
// surrounding context expects a particular type it is passed in so literals
// (numeric and array) can adopt it; expected may be nil.
func (a *Analyzer) checkExpression(expr ast.Expression, expected typesystem.Type) typesystem.Type {
	t := a.typeExpression(expr, expected)
	a.types[expr] = t
	return t
}

func (a *Analyzer) typeExpression(expr ast.Expression, expected typesystem.Type) typesystem.Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		if p, ok := expected.(typesystem.Primitive); ok && isIntegerAdoptable(p) {
			return p
		}
		return typesystem.Int

	case *ast.FloatLiteral:
		if p, ok := expected.(typesystem.Primitive); ok && (p == typesystem.Float || p == typesystem.Double) {
			return p
		}
		return typesystem.Double

	case *ast.BooleanLiteral:
		return typesystem.Bool

	case *ast.CharLiteral:
		return typesystem.Char

	case *ast.StringLiteral:
		return typesystem.String

	case *ast.NullLiteral:
		return typesystem.Nil

	case *ast.ArrayLiteral:
		return a.typeArrayLiteral(e, expected)

	case *ast.Identifier:
		if t, ok := a.scope.Lookup(e.Value); ok {
			return t
		}
		a.errorf(diagnostics.ErrA001, e, "unknown identifier %s", e.Value)
		return typesystem.Any

	case *ast.PrefixExpression:
		operand := a.checkExpression(e.Right, expected)
		if e.Operator == "!" {
			return typesystem.Bool
		}
		return operand

	case *ast.InfixExpression:
		return a.typeInfix(e)

	case *ast.IndexExpression:
		return a.checkIndexTarget(e)

	case *ast.MemberExpression:
		return a.typeMember(e, false)

	case *ast.LambdaExpression:
		return a.typeLambda(e, expected)

	case *ast.CallExpression:
		return a.typeCall(e)
	}

	return typesystem.Any
}

func isIntegerAdoptable(p typesystem.Primitive) bool {
	switch p {
	case typesystem.Byte, typesystem.Short, typesystem.Int, typesystem.Long,
		typesystem.Float, typesystem.Double:
		return true
	}
	return false
}

func (a *Analyzer) typeArrayLiteral(lit *ast.ArrayLiteral, expected typesystem.Type) typesystem.Type {
	var elemExpected typesystem.Type
	if arr, ok := expected.(typesystem.TArray); ok {
		elemExpected = arr.Elem
	}

	var elem typesystem.Type
	for _, el := range lit.Elements {
		t := a.checkExpression(el, elemExpected)
		if elemExpected != nil {
			if !typesystem.Assignable(elemExpected, t) {
				a.errorf(diagnostics.ErrA002, el, "cannot use %s in array of %s", t, elemExpected)
			}
			continue
		}
		if elem == nil {
			elem = t
		} else if !typesystem.Equal(elem, t) {
			elem = typesystem.Any
		}
	}

	if elemExpected != nil {
		return typesystem.TArray{Elem: elemExpected}
	}
	if elem == nil {
		elem = typesystem.Any
	}
	return typesystem.TArray{Elem: elem}
}

func (a *Analyzer) typeInfix(e *ast.InfixExpression) typesystem.Type {
	left := a.checkExpression(e.Left, nil)
	right := a.checkExpression(e.Right, left)

	if !typesystem.Assignable(left, right) && !typesystem.Assignable(right, left) {
		a.errorf(diagnostics.ErrA002, e, "operator %s: mismatched operands %s and %s", e.Operator, left, right)
	}

	switch e.Operator {
	case "==", "!=", "<", ">", "<=", ">=":
		return typesystem.Bool
	}
	return left
}

// typeMember types a member access. called reports whether the member is the
// callee of a call. Array methods have no value form: the backend lowers them
// at call sites only, so a bare reference to one is rejected here.
func (a *Analyzer) typeMember(e *ast.MemberExpression, called bool) typesystem.Type {
	leftType := a.checkExpression(e.Left, nil)

	if arr, ok := leftType.(typesystem.TArray); ok {
		if e.Member.Value == config.ArraySizeMemberName {
			return typesystem.Int
		}

		var fn typesystem.TFunc
		switch e.Member.Value {
		case config.ArrayGetMethodName:
			fn = typesystem.TFunc{Params: []typesystem.Type{typesystem.Int}, ReturnType: arr.Elem}
		case config.ArraySetMethodName:
			fn = typesystem.TFunc{Params: []typesystem.Type{typesystem.Int, arr.Elem}, ReturnType: typesystem.Nil}
		case config.ArrayIteratorMethodName:
			fn = typesystem.TFunc{Params: nil, ReturnType: typesystem.Any}
		default:
			a.errorf(diagnostics.ErrA004, e.Member, "array has no member %s", e.Member.Value)
			return typesystem.Any
		}
		if !called {
			a.errorf(diagnostics.ErrA004, e.Member, "array method %s must be called", e.Member.Value)
			return typesystem.Any
		}
		return fn
	}

	if p, ok := leftType.(typesystem.Primitive); ok && p == typesystem.Any {
		return typesystem.Any
	}

	a.errorf(diagnostics.ErrA004, e.Member, "%s has no member %s", leftType, e.Member.Value)
	return typesystem.Any
}

func (a *Analyzer) typeLambda(e *ast.LambdaExpression, expected typesystem.Type) typesystem.Type {
	fn, _ := expected.(typesystem.TFunc)

	outer := a.scope
	a.scope = NewScope(outer)
	defer func() { a.scope = outer }()

	params := make([]typesystem.Type, len(e.Params))
	for i, p := range e.Params {
		t := typesystem.Type(typesystem.Any)
		if i < len(fn.Params) {
			t = fn.Params[i]
		}
		if isReservedName(p.Value) {
			a.errorf(diagnostics.ErrA005, p, "%s is a builtin name and cannot be declared", p.Value)
		}
		params[i] = t
		a.scope.Define(p.Value, t)
		a.types[p] = t
	}

	ret := a.checkExpression(e.Body, fn.ReturnType)
	if fn.ReturnType != nil {
		if !typesystem.Assignable(fn.ReturnType, ret) {
			a.errorf(diagnostics.ErrA002, e.Body, "lambda returns %s, expected %s", ret, fn.ReturnType)
		}
		ret = fn.ReturnType
	}
	return typesystem.TFunc{Params: params, ReturnType: ret}
}

func (a *Analyzer) typeCall(e *ast.CallExpression) typesystem.Type {
	if ident, ok := e.Callee.(*ast.Identifier); ok {
		if t, handled := a.typeBuiltinCall(e, ident.Value); handled {
			// Builtin constructor and factory names are not values; record
			// the call result only.
			a.types[ident] = typesystem.Any
			return t
		}
	}

	var calleeType typesystem.Type
	if member, ok := e.Callee.(*ast.MemberExpression); ok {
		calleeType = a.typeMember(member, true)
		a.types[member] = calleeType
	} else {
		calleeType = a.checkExpression(e.Callee, nil)
	}

	switch ct := calleeType.(type) {
	case typesystem.TFunc:
		if len(e.Arguments) != len(ct.Params) {
			a.errorf(diagnostics.ErrA003, e, "expected %d arguments, got %d", len(ct.Params), len(e.Arguments))
		}
		for i, arg := range e.Arguments {
			var want typesystem.Type
			if i < len(ct.Params) {
				want = ct.Params[i]
			}
			got := a.checkExpression(arg, want)
			if want != nil && !typesystem.Assignable(want, got) {
				a.errorf(diagnostics.ErrA002, arg, "cannot use %s as %s in argument %d", got, want, i+1)
			}
		}
		return ct.ReturnType
	case typesystem.Primitive:
		if ct == typesystem.Any {
			for _, arg := range e.Arguments {
				a.checkExpression(arg, nil)
			}
			return typesystem.Any
		}
	}

	a.errorf(diagnostics.ErrA002, e.Callee, "%s is not callable", calleeType)
	for _, arg := range e.Arguments {
		a.checkExpression(arg, nil)
	}
	return typesystem.Any
}

// typeBuiltinCall handles the array constructor, factory and arrayOfNulls
// call forms. Returns handled=false when name is not an array builtin.
func (a *Analyzer) typeBuiltinCall(e *ast.CallExpression, name string) (typesystem.Type, bool) {
	if name == config.ArrayOfNullsFuncName {
		if len(e.Arguments) != 1 {
			a.errorf(diagnostics.ErrA003, e, "%s expects 1 argument, got %d", name, len(e.Arguments))
		}
		for _, arg := range e.Arguments {
			got := a.checkExpression(arg, typesystem.Int)
			if !typesystem.Assignable(typesystem.Int, got) {
				a.errorf(diagnostics.ErrA002, arg, "array size must be Int, got %s", got)
			}
		}
		return typesystem.TArray{Elem: typesystem.Any}, true
	}

	if kind, ok := ctorKind(name); ok {
		a.typeCtorArgs(e, name, kind)
		return typesystem.TArray{Elem: kind.Elem}, true
	}

	if kind, ok := factoryKind(name); ok {
		for _, arg := range e.Arguments {
			got := a.checkExpression(arg, kind.Elem)
			if !typesystem.Assignable(kind.Elem, got) {
				a.errorf(diagnostics.ErrA002, arg, "cannot use %s in %s", got, name)
			}
		}
		return typesystem.TArray{Elem: kind.Elem}, true
	}

	return nil, false
}

// typeCtorArgs checks KindArray(size) and KindArray(size, filler).
func (a *Analyzer) typeCtorArgs(e *ast.CallExpression, name string, kind arrayKind) {
	switch len(e.Arguments) {
	case 1:
		if name == config.GenericArrayCtorName {
			a.errorf(diagnostics.ErrA003, e, "%s expects a size and a filler function", name)
		}
	case 2:
	default:
		a.errorf(diagnostics.ErrA003, e, "%s expects 1 or 2 arguments, got %d", name, len(e.Arguments))
	}

	if len(e.Arguments) >= 1 {
		got := a.checkExpression(e.Arguments[0], typesystem.Int)
		if !typesystem.Assignable(typesystem.Int, got) {
			a.errorf(diagnostics.ErrA002, e.Arguments[0], "array size must be Int, got %s", got)
		}
	}
	if len(e.Arguments) >= 2 {
		fillerType := typesystem.TFunc{Params: []typesystem.Type{typesystem.Int}, ReturnType: kind.Elem}
		got := a.checkExpression(e.Arguments[1], fillerType)
		if !typesystem.Assignable(fillerType, got) {
			a.errorf(diagnostics.ErrA002, e.Arguments[1], "filler must be %s, got %s", fillerType, got)
		}
	}
	for _, extra := range e.Arguments[min(len(e.Arguments), 2):] {
		a.checkExpression(extra, nil)
	}
}
