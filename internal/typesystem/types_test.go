package typesystem

import "testing"

func TestString(t *testing.T) {
	testCases := []struct {
		typ  Type
		want string
	}{
		{Int, "Int"},
		{TArray{Elem: Bool}, "[Bool]"},
		{TArray{Elem: TArray{Elem: Double}}, "[[Double]]"},
		{TFunc{Params: []Type{Int}, ReturnType: Long}, "(Int) -> Long"},
		{TFunc{Params: []Type{Int, Any}, ReturnType: Nil}, "(Int, Any) -> Nil"},
		{TFunc{ReturnType: Any}, "() -> Any"},
	}
	for _, tc := range testCases {
		if got := tc.typ.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		a, b Type
		want bool
	}{
		{Int, Int, true},
		{Int, Long, false},
		{Any, Int, false},
		{TArray{Elem: Int}, TArray{Elem: Int}, true},
		{TArray{Elem: Int}, TArray{Elem: Short}, false},
		{TArray{Elem: Int}, Int, false},
		{TFunc{Params: []Type{Int}, ReturnType: Bool}, TFunc{Params: []Type{Int}, ReturnType: Bool}, true},
		{TFunc{Params: []Type{Int}, ReturnType: Bool}, TFunc{Params: []Type{Long}, ReturnType: Bool}, false},
		{TFunc{Params: []Type{Int}, ReturnType: Bool}, TFunc{ReturnType: Bool}, false},
	}
	for _, tc := range testCases {
		if got := Equal(tc.a, tc.b); got != tc.want {
			t.Errorf("Equal(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAssignable(t *testing.T) {
	testCases := []struct {
		dst, src Type
		want     bool
	}{
		{Int, Int, true},
		{Int, Long, false},
		{Any, Int, true},
		{Any, TArray{Elem: Bool}, true},
		{Int, Any, true},
		{TArray{Elem: Any}, TArray{Elem: Int}, true},
		{TArray{Elem: Int}, TArray{Elem: Any}, true},
		{TArray{Elem: Int}, TArray{Elem: Bool}, false},
		{TArray{Elem: Int}, Int, false},
	}
	for _, tc := range testCases {
		if got := Assignable(tc.dst, tc.src); got != tc.want {
			t.Errorf("Assignable(%s, %s) = %v, want %v", tc.dst, tc.src, got, tc.want)
		}
	}
}
