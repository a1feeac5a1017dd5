package diagnostics

import (
	"sort"
	"strings"
	"testing"

	"github.com/quartzlang/quartz/internal/token"
)

func diag(code ErrorCode, file string, line, col int, msg string) *DiagnosticError {
	e := NewError(code, token.Token{Line: line, Column: col}, "%s", msg)
	e.File = file
	return e
}

func TestErrorString(t *testing.T) {
	e := diag(ErrA001, "main.qz", 3, 7, "unknown identifier x")
	want := "[A001] main.qz:3:7: unknown identifier x"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestErrorStringWithoutPosition(t *testing.T) {
	e := diag(ErrC001, "main.qz", 0, 0, "write failed")
	want := "[C001] main.qz: write failed"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestFormatContainsCodeAndLocation(t *testing.T) {
	// Colorization depends on the environment the test runs in, so assert
	// on the uncolored substrings only.
	s := Format(diag(ErrP001, "main.qz", 2, 1, "unexpected token ]"))
	for _, want := range []string{"P001", "main.qz:2:1", "unexpected token ]"} {
		if !strings.Contains(s, want) {
			t.Errorf("Format() = %q, missing %q", s, want)
		}
	}
}

func TestSortKeyOrdersByFileThenPosition(t *testing.T) {
	errs := []*DiagnosticError{
		diag(ErrA001, "b.qz", 1, 1, "third"),
		diag(ErrA001, "a.qz", 2, 5, "second"),
		diag(ErrA001, "a.qz", 2, 1, "first"),
	}
	sort.Slice(errs, func(i, j int) bool { return SortKey(errs[i]) < SortKey(errs[j]) })

	got := []string{errs[0].Message, errs[1].Message, errs[2].Message}
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestDedupe(t *testing.T) {
	errs := []*DiagnosticError{
		diag(ErrP001, "main.qz", 1, 1, "unexpected token )"),
		diag(ErrP001, "main.qz", 1, 1, "unexpected token )"),
		diag(ErrP001, "main.qz", 1, 1, "unexpected token ]"),
		diag(ErrA001, "main.qz", 1, 1, "unexpected token )"),
	}
	out := Dedupe(errs)
	if len(out) != 3 {
		t.Fatalf("Dedupe kept %d diagnostics, want 3", len(out))
	}
}

func TestPrintSummaryLine(t *testing.T) {
	var sb strings.Builder
	Print(&sb, []*DiagnosticError{
		diag(ErrA001, "main.qz", 1, 1, "unknown identifier x"),
	})
	if !strings.Contains(sb.String(), "1 error") {
		t.Errorf("Print output missing summary: %q", sb.String())
	}

	sb.Reset()
	Print(&sb, []*DiagnosticError{
		diag(ErrA001, "main.qz", 1, 1, "unknown identifier x"),
		diag(ErrA001, "main.qz", 2, 1, "unknown identifier y"),
	})
	if !strings.Contains(sb.String(), "2 errors") {
		t.Errorf("Print output missing summary: %q", sb.String())
	}
}

func TestPrintNothingWhenClean(t *testing.T) {
	var sb strings.Builder
	Print(&sb, nil)
	if sb.String() != "" {
		t.Errorf("Print wrote %q for an empty diagnostic list", sb.String())
	}
}
