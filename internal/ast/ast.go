// Package ast defines the source-level syntax tree produced by the parser.
package ast

import (
	"github.com/quartzlang/quartz/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // source file path
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// ValStatement represents a binding: val x = expr, or val x: T = expr.
type ValStatement struct {
	Token          token.Token // the 'val' token
	Name           *Identifier
	TypeAnnotation Type // optional
	Value          Expression
}

func (vs *ValStatement) statementNode()        {}
func (vs *ValStatement) TokenLiteral() string  { return vs.Token.Lexeme }
func (vs *ValStatement) GetToken() token.Token { return vs.Token }

// AssignStatement represents an assignment to a name or an index target.
// x = expr, arr[i] = expr
type AssignStatement struct {
	Token  token.Token // the '=' token
	Target Expression  // *Identifier or *IndexExpression
	Value  Expression
}

func (as *AssignStatement) statementNode()        {}
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Lexeme }
func (as *AssignStatement) GetToken() token.Token { return as.Token }

// ExpressionStatement is a statement that consists of a single expression.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
