package ast

import (
	"github.com/quartzlang/quartz/internal/token"
)

// Type is a syntactic type annotation.
type Type interface {
	Node
	typeNode()
	GetToken() token.Token
}

// NamedType is a reference to a type by name, e.g. Int, String, Any.
type NamedType struct {
	Token token.Token
	Name  string
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// ArrayType is an array annotation, e.g. [Int].
type ArrayType struct {
	Token token.Token // the '[' token
	Elem  Type
}

func (at *ArrayType) typeNode()             {}
func (at *ArrayType) TokenLiteral() string  { return at.Token.Lexeme }
func (at *ArrayType) GetToken() token.Token { return at.Token }
