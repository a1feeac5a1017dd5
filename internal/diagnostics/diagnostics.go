// Package diagnostics defines the coded errors produced by every compiler
// stage and the terminal formatter that renders them.
//
// Codes are grouped by stage: Lxxx lexer, Pxxx parser, Axxx analyzer,
// Cxxx code generation. A diagnostic always refers to the program being
// compiled; defects inside the compiler itself are panics, not diagnostics.
package diagnostics

import (
	"fmt"

	"github.com/quartzlang/quartz/internal/token"
)

// ErrorCode identifies a diagnostic class.
type ErrorCode = string

const (
	ErrL001 ErrorCode = "L001" // illegal character
	ErrL002 ErrorCode = "L002" // unterminated string or char literal

	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // malformed expression
	ErrP003 ErrorCode = "P003" // malformed type annotation

	ErrA001 ErrorCode = "A001" // unknown identifier
	ErrA002 ErrorCode = "A002" // type mismatch
	ErrA003 ErrorCode = "A003" // wrong argument count
	ErrA004 ErrorCode = "A004" // unknown member
	ErrA005 ErrorCode = "A005" // invalid assignment target

	ErrC001 ErrorCode = "C001" // code generation failure
)

// DiagnosticError is a single diagnostic attached to a source location.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string // set by the pipeline once the owning file is known
}

func (e *DiagnosticError) Error() string {
	if e.Token.Line > 0 {
		return fmt.Sprintf("[%s] %s:%d:%d: %s", e.Code, e.File, e.Token.Line, e.Token.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.File, e.Message)
}

// NewError creates a diagnostic for the given code and location.
func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: fmt.Sprintf(format, args...),
	}
}
