package parser_test

import (
	"testing"

	"github.com/quartzlang/quartz/internal/ast"
	"github.com/quartzlang/quartz/internal/lexer"
	"github.com/quartzlang/quartz/internal/parser"
	"github.com/quartzlang/quartz/internal/pipeline"
	"github.com/quartzlang/quartz/internal/token"
)

func parseProgram(t *testing.T, input string) (*ast.Program, *pipeline.Context) {
	t.Helper()
	ctx := &pipeline.Context{SourceCode: input}

	l := lexer.New(input)
	for {
		tok := l.NextToken()
		ctx.Tokens = append(ctx.Tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	p := parser.New(ctx.Tokens, ctx)
	return p.ParseProgram(), ctx
}

func parseOK(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, ctx := parseProgram(t, input)
	if len(ctx.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", ctx.Errors[0])
	}
	return program
}

func TestValStatement(t *testing.T) {
	program := parseOK(t, "val nums: [Int] = intArrayOf(1, 2, 3)")
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements", len(program.Statements))
	}

	vs, ok := program.Statements[0].(*ast.ValStatement)
	if !ok {
		t.Fatalf("statement is %T", program.Statements[0])
	}
	if vs.Name.Value != "nums" {
		t.Errorf("name = %s", vs.Name.Value)
	}

	arr, ok := vs.TypeAnnotation.(*ast.ArrayType)
	if !ok {
		t.Fatalf("annotation is %T", vs.TypeAnnotation)
	}
	named, ok := arr.Elem.(*ast.NamedType)
	if !ok || named.Name != "Int" {
		t.Fatalf("element annotation = %v", arr.Elem)
	}

	call, ok := vs.Value.(*ast.CallExpression)
	if !ok {
		t.Fatalf("value is %T", vs.Value)
	}
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok || callee.Value != "intArrayOf" {
		t.Fatalf("callee = %v", call.Callee)
	}
	if len(call.Arguments) != 3 {
		t.Errorf("got %d arguments", len(call.Arguments))
	}
}

func TestIndexAssignment(t *testing.T) {
	program := parseOK(t, "nums[i + 1] = v")

	as, ok := program.Statements[0].(*ast.AssignStatement)
	if !ok {
		t.Fatalf("statement is %T", program.Statements[0])
	}
	idx, ok := as.Target.(*ast.IndexExpression)
	if !ok {
		t.Fatalf("target is %T", as.Target)
	}
	if _, ok := idx.Index.(*ast.InfixExpression); !ok {
		t.Errorf("index is %T", idx.Index)
	}
	if _, ok := as.Value.(*ast.Identifier); !ok {
		t.Errorf("value is %T", as.Value)
	}
}

func TestMethodCallAndMember(t *testing.T) {
	program := parseOK(t, "nums.set(0, nums.size)")

	es := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := es.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expression is %T", es.Expression)
	}
	member, ok := call.Callee.(*ast.MemberExpression)
	if !ok || member.Member.Value != "set" {
		t.Fatalf("callee = %v", call.Callee)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("got %d arguments", len(call.Arguments))
	}
	sizeMember, ok := call.Arguments[1].(*ast.MemberExpression)
	if !ok || sizeMember.Member.Value != "size" {
		t.Errorf("second argument = %v", call.Arguments[1])
	}
}

func TestLambda(t *testing.T) {
	program := parseOK(t, `val f = \i, j -> i * j + 1`)

	vs := program.Statements[0].(*ast.ValStatement)
	lambda, ok := vs.Value.(*ast.LambdaExpression)
	if !ok {
		t.Fatalf("value is %T", vs.Value)
	}
	if len(lambda.Params) != 2 || lambda.Params[0].Value != "i" || lambda.Params[1].Value != "j" {
		t.Fatalf("params = %v", lambda.Params)
	}
	// * binds tighter than +, so the body is (i*j) + 1.
	body, ok := lambda.Body.(*ast.InfixExpression)
	if !ok || body.Operator != "+" {
		t.Fatalf("body = %v", lambda.Body)
	}
}

func TestPrecedence(t *testing.T) {
	program := parseOK(t, "val x = a + b * c == d")

	vs := program.Statements[0].(*ast.ValStatement)
	eq, ok := vs.Value.(*ast.InfixExpression)
	if !ok || eq.Operator != "==" {
		t.Fatalf("top operator = %v", vs.Value)
	}
	sum, ok := eq.Left.(*ast.InfixExpression)
	if !ok || sum.Operator != "+" {
		t.Fatalf("left of == is %v", eq.Left)
	}
	prod, ok := sum.Right.(*ast.InfixExpression)
	if !ok || prod.Operator != "*" {
		t.Fatalf("right of + is %v", sum.Right)
	}
}

func TestMultipleStatements(t *testing.T) {
	program := parseOK(t, "val a = 1\n\nval b = 2\na = b\n")
	if len(program.Statements) != 3 {
		t.Fatalf("got %d statements", len(program.Statements))
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"missing_value", "val x ="},
		{"missing_name", "val = 1"},
		{"bad_assign_target", "1 + 2 = 3"},
		{"unclosed_paren", "val x = (1 + 2"},
		{"unclosed_index", "val x = a[1"},
		{"bad_type", "val x: = 1"},
		{"dangling_dot", "val x = a."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ctx := parseProgram(t, tc.input)
			if len(ctx.Errors) == 0 {
				t.Error("no diagnostics reported")
			}
		})
	}
}

func TestRecoversAtStatementBoundary(t *testing.T) {
	program, ctx := parseProgram(t, "val = 1\nval ok = 2")
	if len(ctx.Errors) == 0 {
		t.Fatal("no diagnostics reported")
	}
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements after recovery", len(program.Statements))
	}
	vs, ok := program.Statements[0].(*ast.ValStatement)
	if !ok || vs.Name.Value != "ok" {
		t.Errorf("did not recover to the next statement: %v", program.Statements[0])
	}
}
