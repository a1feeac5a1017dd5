package jsbackend_test

import (
	"strings"
	"testing"

	"github.com/quartzlang/quartz/internal/analyzer"
	"github.com/quartzlang/quartz/internal/jsbackend"
	"github.com/quartzlang/quartz/internal/lexer"
	"github.com/quartzlang/quartz/internal/parser"
	"github.com/quartzlang/quartz/internal/pipeline"
)

func compile(t *testing.T, input string) string {
	t.Helper()
	ctx := &pipeline.Context{FilePath: "test.qz", SourceCode: input}
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&analyzer.Processor{},
		&jsbackend.Processor{},
	)
	ctx = p.Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Errors[0])
	}
	return ctx.Output
}

func TestLowering(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"sized_int_ctor",
			"val a = IntArray(4)",
			"let a = new Int32Array(4);\n",
		},
		{
			"sized_tagged_ctor",
			"val n = 8\nval b = BooleanArray(n)",
			"let n = 8;\nlet b = $qz.withType(\"BooleanArray\", $qz.newArray(n));\n",
		},
		{
			"filled_tagged_ctor",
			"val b = BooleanArray(4, \\i -> true)",
			"let b = $qz.withType(\"BooleanArray\", $qz.newArrayF(4, (i) => true));\n",
		},
		{
			"filled_typed_ctor",
			"val d = DoubleArray(3, \\i -> 0.5)",
			"let d = new Float64Array($qz.newArrayF(3, (i) => 0.5));\n",
		},
		{
			"index_read",
			"val a = IntArray(4)\nval x = a[2]",
			"let a = new Int32Array(4);\nlet x = a[2];\n",
		},
		{
			"index_write",
			"val a = IntArray(4)\na[2] = 9",
			"let a = new Int32Array(4);\na[2] = 9;\n",
		},
		{
			"get_set_methods",
			"val a = IntArray(4)\na.set(0, a.get(1))",
			"let a = new Int32Array(4);\na[0] = a[1];\n",
		},
		{
			"size",
			"val a = IntArray(4)\nval n = a.size",
			"let a = new Int32Array(4);\nlet n = a.length;\n",
		},
		{
			"iterator",
			"val a = IntArray(4)\nval it = a.iterator()",
			"let a = new Int32Array(4);\nlet it = $qz.arrayIterator(a);\n",
		},
		{
			"int_factory",
			"val a = intArrayOf(1, 2, 3)",
			"let a = new Int32Array([1, 2, 3]);\n",
		},
		{
			"tagged_factory",
			"val a = longArrayOf(1, 2)",
			"let a = $qz.withType(\"LongArray\", [1, 2]);\n",
		},
		{
			"generic_factory",
			`val a = arrayOf(1, "two")`,
			"let a = [1, \"two\"];\n",
		},
		{
			"char_factory",
			"val a = charArrayOf('a', 'b')",
			"let a = $qz.withType(\"CharArray\", [97, 98]);\n",
		},
		{
			"array_of_nulls",
			"val a = arrayOfNulls(5)",
			"let a = $qz.newArray(5, null);\n",
		},
		{
			"typed_literal",
			"val a: [Int] = [1, 2, 3]",
			"let a = new Int32Array([1, 2, 3]);\n",
		},
		{
			"tagged_literal",
			"val a: [Bool] = [true]",
			"let a = $qz.withType(\"BooleanArray\", [true]);\n",
		},
		{
			"untyped_literal_is_generic",
			`val a = ["x", 1]`,
			"let a = [\"x\", 1];\n",
		},
		{
			"generic_ctor_is_not_intrinsic",
			"val a = Array(4, \\i -> i)",
			"let a = Array(4, (i) => i);\n",
		},
		{
			"non_array_call_falls_through",
			"val f = \\x -> x + 1\nval y = f(2)",
			"let f = (x) => x + 1;\nlet y = f(2);\n",
		},
		{
			"member_call_on_any_falls_through",
			"val g = \\obj -> obj.update(1)",
			"let g = (obj) => obj.update(1);\n",
		},
		{
			"bare_member_on_any_falls_through",
			"val g = \\obj -> obj.anything",
			"let g = (obj) => obj.anything;\n",
		},
		{
			"index_on_any_falls_through",
			"val g = \\obj -> obj[0]",
			"let g = (obj) => obj[0];\n",
		},
		{
			"strict_equality",
			"val p = \\a, b -> a == b\nval q = \\a, b -> a != b",
			"let p = (a, b) => a === b;\nlet q = (a, b) => a !== b;\n",
		},
		{
			"reassignment",
			"val a = 1\na = 2",
			"let a = 1;\na = 2;\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := compile(t, tc.input); got != tc.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestLoweringIsDeterministic(t *testing.T) {
	input := "val a = BooleanArray(4, \\i -> true)\nval b = a[0]\na[1] = b\nval n = a.size"
	first := compile(t, input)
	second := compile(t, input)
	if first != second {
		t.Errorf("two lowerings of the same unit diverged:\n%s\nvs:\n%s", first, second)
	}
}

func TestEmitRuntimePrelude(t *testing.T) {
	ctx := &pipeline.Context{FilePath: "test.qz", SourceCode: "val a = IntArray(1)"}
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&analyzer.Processor{},
		&jsbackend.Processor{EmitRuntime: true},
	)
	ctx = p.Run(ctx)
	if ctx.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Errors[0])
	}
	if !strings.HasPrefix(ctx.Output, jsbackend.Runtime()) {
		t.Error("runtime prelude missing from output")
	}
	if !strings.Contains(ctx.Output, "let a = new Int32Array(1);") {
		t.Error("module body missing from output")
	}
}

func TestStringLiteralPooling(t *testing.T) {
	// Two tagged constructions of the same kind share one pooled tag node;
	// the printed output simply repeats the literal.
	out := compile(t, "val a = BooleanArray(1)\nval b = BooleanArray(2)")
	if strings.Count(out, `"BooleanArray"`) != 2 {
		t.Errorf("expected two tag occurrences in output:\n%s", out)
	}
}

func TestBackendSkipsOnEarlierErrors(t *testing.T) {
	ctx := &pipeline.Context{FilePath: "test.qz", SourceCode: "val x = unknownName"}
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&analyzer.Processor{},
		&jsbackend.Processor{},
	)
	ctx = p.Run(ctx)
	if !ctx.HasErrors() {
		t.Fatal("expected diagnostics")
	}
	if ctx.Output != "" {
		t.Errorf("backend produced output despite errors: %q", ctx.Output)
	}
}
