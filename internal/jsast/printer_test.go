package jsast_test

import (
	"testing"

	"github.com/quartzlang/quartz/internal/jsast"
)

func TestPrintExpressions(t *testing.T) {
	testCases := []struct {
		name string
		expr jsast.Expression
		want string
	}{
		{"name", &jsast.Name{Value: "x"}, "x"},
		{"string", &jsast.StringLiteral{Value: `say "hi"`}, `"say \"hi\""`},
		{"number_raw", &jsast.NumberLiteral{Value: 3, Raw: "3"}, "3"},
		{"number_formatted", &jsast.NumberLiteral{Value: 2.5}, "2.5"},
		{"bool", &jsast.BoolLiteral{Value: true}, "true"},
		{"null", &jsast.NullLiteral{}, "null"},
		{
			"array",
			&jsast.ArrayLiteral{Elements: []jsast.Expression{
				&jsast.NumberLiteral{Raw: "1"}, &jsast.NumberLiteral{Raw: "2"},
			}},
			"[1, 2]",
		},
		{
			"object",
			&jsast.ObjectLiteral{Properties: []jsast.Property{
				{Key: "a", Value: &jsast.NumberLiteral{Raw: "1"}},
				{Key: "b", Value: &jsast.BoolLiteral{}},
			}},
			"{a: 1, b: false}",
		},
		{
			"element_access",
			&jsast.ElementAccess{Object: &jsast.Name{Value: "a"}, Index: &jsast.Name{Value: "i"}},
			"a[i]",
		},
		{
			"element_access_on_new",
			&jsast.ElementAccess{
				Object: &jsast.NewExpression{Callee: &jsast.Name{Value: "Int32Array"}, Arguments: []jsast.Expression{&jsast.NumberLiteral{Raw: "4"}}},
				Index:  &jsast.NumberLiteral{Raw: "0"},
			},
			"(new Int32Array(4))[0]",
		},
		{
			"property_access",
			&jsast.PropertyAccess{Object: &jsast.Name{Value: "a"}, Name: "length"},
			"a.length",
		},
		{
			"assignment",
			&jsast.Assignment{
				Target: &jsast.ElementAccess{Object: &jsast.Name{Value: "a"}, Index: &jsast.Name{Value: "i"}},
				Value:  &jsast.Name{Value: "v"},
			},
			"a[i] = v",
		},
		{
			"call",
			&jsast.CallExpression{
				Callee:    &jsast.PropertyAccess{Object: &jsast.Name{Value: "$qz"}, Name: "newArray"},
				Arguments: []jsast.Expression{&jsast.Name{Value: "n"}},
			},
			"$qz.newArray(n)",
		},
		{
			"arrow",
			&jsast.FunctionExpression{Params: []string{"i"}, Body: &jsast.BinaryExpression{
				Operator: "*", Left: &jsast.Name{Value: "i"}, Right: &jsast.NumberLiteral{Raw: "2"},
			}},
			"(i) => i * 2",
		},
		{
			"nested_binary",
			&jsast.BinaryExpression{
				Operator: "*",
				Left: &jsast.BinaryExpression{
					Operator: "+", Left: &jsast.Name{Value: "a"}, Right: &jsast.Name{Value: "b"},
				},
				Right: &jsast.Name{Value: "c"},
			},
			"(a + b) * c",
		},
		{
			"unary",
			&jsast.UnaryExpression{Operator: "-", Operand: &jsast.Name{Value: "x"}},
			"-x",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := jsast.NewPrinter().PrintExpression(tc.expr); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPrintProgram(t *testing.T) {
	program := &jsast.Program{Statements: []jsast.Statement{
		&jsast.LetStatement{Name: "a", Value: &jsast.NumberLiteral{Raw: "1"}},
		&jsast.ExpressionStatement{Expression: &jsast.CallExpression{
			Callee:    &jsast.Name{Value: "f"},
			Arguments: []jsast.Expression{&jsast.Name{Value: "a"}},
		}},
	}}
	want := "let a = 1;\nf(a);\n"
	if got := jsast.NewPrinter().Print(program); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
