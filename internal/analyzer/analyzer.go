// Package analyzer resolves names and checks types ahead of code
// generation. It records the resolved type of every expression so the
// backend can dispatch array intrinsics on receiver types without
// re-deriving them.
package analyzer

import (
	"github.com/quartzlang/quartz/internal/ast"
	"github.com/quartzlang/quartz/internal/diagnostics"
	"github.com/quartzlang/quartz/internal/pipeline"
	"github.com/quartzlang/quartz/internal/token"
	"github.com/quartzlang/quartz/internal/typesystem"
)

type Analyzer struct {
	ctx   *pipeline.Context
	scope *Scope
	types map[ast.Expression]typesystem.Type
}

func New(ctx *pipeline.Context) *Analyzer {
	return &Analyzer{
		ctx:   ctx,
		scope: NewScope(nil),
		types: make(map[ast.Expression]typesystem.Type),
	}
}

func (a *Analyzer) errorf(code diagnostics.ErrorCode, node ast.Node, format string, args ...interface{}) {
	a.ctx.Errors = append(a.ctx.Errors, diagnostics.NewError(code, astToken(node), format, args...))
}

func astToken(node ast.Node) token.Token {
	switch n := node.(type) {
	case ast.Expression:
		return n.GetToken()
	case ast.Statement:
		return n.GetToken()
	}
	return token.Token{}
}

// Analyze checks the program and returns the expression type table.
func (a *Analyzer) Analyze(program *ast.Program) map[ast.Expression]typesystem.Type {
	for _, stmt := range program.Statements {
		a.checkStatement(stmt)
	}
	return a.types
}

func (a *Analyzer) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ValStatement:
		var expected typesystem.Type
		if s.TypeAnnotation != nil {
			expected = a.resolveTypeAnnotation(s.TypeAnnotation)
		}
		got := a.checkExpression(s.Value, expected)
		if expected != nil {
			if !typesystem.Assignable(expected, got) {
				a.errorf(diagnostics.ErrA002, s.Value, "cannot use %s as %s", got, expected)
			}
			got = expected
		}
		if a.scope.DefinedLocally(s.Name.Value) {
			a.errorf(diagnostics.ErrA005, s.Name, "%s is already declared", s.Name.Value)
		}
		if isReservedName(s.Name.Value) {
			a.errorf(diagnostics.ErrA005, s.Name, "%s is a builtin name and cannot be declared", s.Name.Value)
		}
		a.scope.Define(s.Name.Value, got)
		a.types[s.Name] = got

	case *ast.AssignStatement:
		switch target := s.Target.(type) {
		case *ast.Identifier:
			declared, ok := a.scope.Lookup(target.Value)
			if !ok {
				a.errorf(diagnostics.ErrA001, target, "unknown identifier %s", target.Value)
				declared = typesystem.Any
			}
			a.types[target] = declared
			got := a.checkExpression(s.Value, declared)
			if ok && !typesystem.Assignable(declared, got) {
				a.errorf(diagnostics.ErrA002, s.Value, "cannot assign %s to %s", got, declared)
			}
		case *ast.IndexExpression:
			elem := a.checkIndexTarget(target)
			got := a.checkExpression(s.Value, elem)
			if !typesystem.Assignable(elem, got) {
				a.errorf(diagnostics.ErrA002, s.Value, "cannot assign %s to element of type %s", got, elem)
			}
		default:
			a.errorf(diagnostics.ErrA005, s.Target, "invalid assignment target")
		}

	case *ast.ExpressionStatement:
		a.checkExpression(s.Expression, nil)
	}
}

// checkIndexTarget types the receiver and index of an index-assignment
// target and returns the element type values must be assignable to.
func (a *Analyzer) checkIndexTarget(target *ast.IndexExpression) typesystem.Type {
	leftType := a.checkExpression(target.Left, nil)
	idxType := a.checkExpression(target.Index, typesystem.Int)
	if !typesystem.Assignable(typesystem.Int, idxType) {
		a.errorf(diagnostics.ErrA002, target.Index, "array index must be Int, got %s", idxType)
	}

	elem := typesystem.Type(typesystem.Any)
	switch lt := leftType.(type) {
	case typesystem.TArray:
		elem = lt.Elem
	case typesystem.Primitive:
		if lt.Name != typesystem.Any.Name {
			a.errorf(diagnostics.ErrA002, target.Left, "%s is not indexable", leftType)
		}
	default:
		a.errorf(diagnostics.ErrA002, target.Left, "%s is not indexable", leftType)
	}
	a.types[target] = elem
	return elem
}

func (a *Analyzer) resolveTypeAnnotation(t ast.Type) typesystem.Type {
	switch tt := t.(type) {
	case *ast.NamedType:
		if resolved, ok := namedTypes[tt.Name]; ok {
			return resolved
		}
		a.errorf(diagnostics.ErrA001, tt, "unknown type %s", tt.Name)
		return typesystem.Any
	case *ast.ArrayType:
		return typesystem.TArray{Elem: a.resolveTypeAnnotation(tt.Elem)}
	}
	return typesystem.Any
}

// Processor runs the analyzer as a pipeline stage.
type Processor struct{}

func (ap *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}

	a := New(ctx)
	ctx.Types = a.Analyze(ctx.AstRoot)

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}
