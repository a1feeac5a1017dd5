package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

var (
	colorOnce sync.Once
	colorOn   bool
)

// colorEnabled reports whether stderr supports ANSI colors.
// NO_COLOR always wins over terminal detection.
func colorEnabled() bool {
	colorOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorOn = false
			return
		}
		fd := os.Stderr.Fd()
		colorOn = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	})
	return colorOn
}

func ansiFg(colorCode int, s string) string {
	if !colorEnabled() {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[39m", colorCode, s)
}

func ansiBold(s string) string {
	if !colorEnabled() {
		return s
	}
	return "\033[1m" + s + "\033[22m"
}

// Format renders a single diagnostic as a one-line report.
func Format(err *DiagnosticError) string {
	loc := err.File
	if err.Token.Line > 0 {
		loc = fmt.Sprintf("%s:%d:%d", err.File, err.Token.Line, err.Token.Column)
	}
	return fmt.Sprintf("%s %s %s",
		ansiFg(31, "error["+err.Code+"]"),
		ansiBold(loc+":"),
		err.Message)
}

// Print writes all diagnostics to w, one per line, followed by a summary.
func Print(w io.Writer, errs []*DiagnosticError) {
	for _, err := range errs {
		fmt.Fprintln(w, Format(err))
	}
	if n := len(errs); n > 0 {
		noun := "errors"
		if n == 1 {
			noun = "error"
		}
		fmt.Fprintln(w, ansiFg(31, fmt.Sprintf("%d %s", n, noun)))
	}
}

// SortKey orders diagnostics by file, then position, for stable output.
func SortKey(err *DiagnosticError) string {
	return fmt.Sprintf("%s:%08d:%08d", err.File, err.Token.Line, err.Token.Column)
}

// Dedupe removes diagnostics that share code, position and message.
// Cascading parse errors frequently repeat at one position.
func Dedupe(errs []*DiagnosticError) []*DiagnosticError {
	seen := make(map[string]bool, len(errs))
	out := errs[:0]
	for _, err := range errs {
		key := strings.Join([]string{err.Code, SortKey(err), err.Message}, "\x00")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, err)
	}
	return out
}
