// Package jsbackend lowers the analyzed source AST to the JavaScript
// target AST. Every call site is first offered to the intrinsic registry;
// on a hit the registered generator produces the replacement expression,
// on a miss the call lowers as an ordinary JavaScript call.
package jsbackend

import (
	"fmt"
	"strconv"

	"github.com/quartzlang/quartz/internal/ast"
	"github.com/quartzlang/quartz/internal/config"
	"github.com/quartzlang/quartz/internal/jsast"
	"github.com/quartzlang/quartz/internal/jsbackend/intrinsics"
	"github.com/quartzlang/quartz/internal/typesystem"
)

type Lowerer struct {
	types map[ast.Expression]typesystem.Type
	jsctx *Context
}

func NewLowerer(types map[ast.Expression]typesystem.Type) *Lowerer {
	return &Lowerer{types: types, jsctx: NewContext()}
}

func (l *Lowerer) typeOf(expr ast.Expression) typesystem.Type {
	if t, ok := l.types[expr]; ok {
		return t
	}
	return typesystem.Any
}

// LowerProgram lowers every statement of the analyzed program.
func (l *Lowerer) LowerProgram(program *ast.Program) *jsast.Program {
	out := &jsast.Program{}
	for _, stmt := range program.Statements {
		out.Statements = append(out.Statements, l.lowerStatement(stmt))
	}
	return out
}

func (l *Lowerer) lowerStatement(stmt ast.Statement) jsast.Statement {
	switch s := stmt.(type) {
	case *ast.ValStatement:
		return &jsast.LetStatement{Name: s.Name.Value, Value: l.lowerExpression(s.Value)}

	case *ast.AssignStatement:
		return l.lowerAssign(s)

	case *ast.ExpressionStatement:
		return &jsast.ExpressionStatement{Expression: l.lowerExpression(s.Expression)}
	}
	panic(fmt.Sprintf("jsbackend: unknown statement %T", stmt))
}

func (l *Lowerer) lowerAssign(s *ast.AssignStatement) jsast.Statement {
	switch target := s.Target.(type) {
	case *ast.Identifier:
		return &jsast.ExpressionStatement{Expression: &jsast.Assignment{
			Target: &jsast.Name{Value: target.Value},
			Value:  l.lowerExpression(s.Value),
		}}

	case *ast.IndexExpression:
		receiver := l.lowerExpression(target.Left)
		index := l.lowerExpression(target.Index)
		value := l.lowerExpression(s.Value)
		if gen := intrinsics.Lookup(l.typeOf(target.Left), config.ArraySetMethodName); gen != nil {
			return &jsast.ExpressionStatement{Expression: gen(receiver, []jsast.Expression{index, value}, l.jsctx)}
		}
		return &jsast.ExpressionStatement{Expression: &jsast.Assignment{
			Target: &jsast.ElementAccess{Object: receiver, Index: index},
			Value:  value,
		}}
	}
	panic(fmt.Sprintf("jsbackend: invalid assignment target %T", s.Target))
}

func (l *Lowerer) lowerExpression(expr ast.Expression) jsast.Expression {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return &jsast.NumberLiteral{Value: float64(e.Value), Raw: strconv.FormatInt(e.Value, 10)}

	case *ast.FloatLiteral:
		return &jsast.NumberLiteral{Value: e.Value, Raw: e.Token.Lexeme}

	case *ast.BooleanLiteral:
		return &jsast.BoolLiteral{Value: e.Value}

	case *ast.CharLiteral:
		// Chars are numbers in the target; the tagged array representation
		// recovers their kind.
		return &jsast.NumberLiteral{Value: float64(e.Value), Raw: strconv.FormatInt(int64(e.Value), 10)}

	case *ast.StringLiteral:
		return l.jsctx.GetStringLiteral(e.Value)

	case *ast.NullLiteral:
		return &jsast.NullLiteral{}

	case *ast.ArrayLiteral:
		return l.lowerArrayLiteral(e)

	case *ast.Identifier:
		return &jsast.Name{Value: e.Value}

	case *ast.PrefixExpression:
		return &jsast.UnaryExpression{Operator: e.Operator, Operand: l.lowerExpression(e.Right)}

	case *ast.InfixExpression:
		return &jsast.BinaryExpression{
			Operator: jsOperator(e.Operator),
			Left:     l.lowerExpression(e.Left),
			Right:    l.lowerExpression(e.Right),
		}

	case *ast.IndexExpression:
		receiver := l.lowerExpression(e.Left)
		index := l.lowerExpression(e.Index)
		if gen := intrinsics.Lookup(l.typeOf(e.Left), config.ArrayGetMethodName); gen != nil {
			return gen(receiver, []jsast.Expression{index}, l.jsctx)
		}
		return &jsast.ElementAccess{Object: receiver, Index: index}

	case *ast.MemberExpression:
		receiver := l.lowerExpression(e.Left)
		// size is the only member intrinsic with a value form; method
		// intrinsics dispatch from call sites only.
		if e.Member.Value == config.ArraySizeMemberName {
			if gen := intrinsics.Lookup(l.typeOf(e.Left), e.Member.Value); gen != nil {
				return gen(receiver, nil, l.jsctx)
			}
		}
		return &jsast.PropertyAccess{Object: receiver, Name: e.Member.Value}

	case *ast.LambdaExpression:
		params := make([]string, len(e.Params))
		for i, p := range e.Params {
			params[i] = p.Value
		}
		return &jsast.FunctionExpression{Params: params, Body: l.lowerExpression(e.Body)}

	case *ast.CallExpression:
		return l.lowerCall(e)
	}
	panic(fmt.Sprintf("jsbackend: unknown expression %T", expr))
}

func (l *Lowerer) lowerCall(call *ast.CallExpression) jsast.Expression {
	args := make([]jsast.Expression, len(call.Arguments))
	for i, arg := range call.Arguments {
		args[i] = l.lowerExpression(arg)
	}

	switch callee := call.Callee.(type) {
	case *ast.MemberExpression:
		receiver := l.lowerExpression(callee.Left)
		if gen := intrinsics.Lookup(l.typeOf(callee.Left), callee.Member.Value); gen != nil {
			return gen(receiver, args, l.jsctx)
		}
		return &jsast.CallExpression{
			Callee:    &jsast.PropertyAccess{Object: receiver, Name: callee.Member.Value},
			Arguments: args,
		}

	case *ast.Identifier:
		if kind, ok := intrinsics.FactoryKind(callee.Value); ok {
			// Vararg factory: the argument list becomes one array literal,
			// wrapped for its kind, before the factory erases to identity.
			literal := intrinsics.LowerArrayLiteral(kind, &jsast.ArrayLiteral{Elements: args}, l.jsctx)
			gen := intrinsics.Lookup(nil, callee.Value)
			return gen(nil, []jsast.Expression{literal}, l.jsctx)
		}
		if gen := intrinsics.Lookup(nil, callee.Value); gen != nil {
			return gen(nil, args, l.jsctx)
		}
		return &jsast.CallExpression{Callee: &jsast.Name{Value: callee.Value}, Arguments: args}
	}

	return &jsast.CallExpression{Callee: l.lowerExpression(call.Callee), Arguments: args}
}

func (l *Lowerer) lowerArrayLiteral(lit *ast.ArrayLiteral) jsast.Expression {
	elements := make([]jsast.Expression, len(lit.Elements))
	for i, el := range lit.Elements {
		elements[i] = l.lowerExpression(el)
	}
	raw := &jsast.ArrayLiteral{Elements: elements}

	arr, ok := l.typeOf(lit).(typesystem.TArray)
	if !ok {
		return raw
	}
	return intrinsics.LowerArrayLiteral(intrinsics.KindOf(arr.Elem), raw, l.jsctx)
}

// jsOperator maps source operators to their JavaScript spelling. Equality
// lowers to the strict forms.
func jsOperator(op string) string {
	switch op {
	case "==":
		return "==="
	case "!=":
		return "!=="
	}
	return op
}
