// Package jsast defines the JavaScript target AST the backend lowers to,
// and a printer that renders it as source text.
//
// The tree is deliberately small: it only contains the node shapes the
// lowering emits, not the full JavaScript grammar.
package jsast

// Node is the base interface for all target nodes.
type Node interface {
	jsNode()
}

// Expression is a Node that can appear in value position.
type Expression interface {
	Node
	jsExpression()
}

// Statement is a top-level or block-level node.
type Statement interface {
	Node
	jsStatement()
}

// Program is an emitted module body.
type Program struct {
	Statements []Statement
}

func (p *Program) jsNode() {}

// Name is an identifier reference.
type Name struct {
	Value string
}

func (n *Name) jsNode()       {}
func (n *Name) jsExpression() {}

// StringLiteral is a quoted string.
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) jsNode()       {}
func (s *StringLiteral) jsExpression() {}

// NumberLiteral is a numeric literal. Raw preserves the source spelling
// when one exists; otherwise the printer formats Value.
type NumberLiteral struct {
	Value float64
	Raw   string
}

func (n *NumberLiteral) jsNode()       {}
func (n *NumberLiteral) jsExpression() {}

// BoolLiteral is true or false.
type BoolLiteral struct {
	Value bool
}

func (b *BoolLiteral) jsNode()       {}
func (b *BoolLiteral) jsExpression() {}

// NullLiteral is the null value.
type NullLiteral struct{}

func (n *NullLiteral) jsNode()       {}
func (n *NullLiteral) jsExpression() {}

// ArrayLiteral is [e1, e2, ...].
type ArrayLiteral struct {
	Elements []Expression
}

func (a *ArrayLiteral) jsNode()       {}
func (a *ArrayLiteral) jsExpression() {}

// Property is a single key/value entry of an ObjectLiteral.
type Property struct {
	Key   string
	Value Expression
}

// ObjectLiteral is {k1: v1, k2: v2, ...}.
type ObjectLiteral struct {
	Properties []Property
}

func (o *ObjectLiteral) jsNode()       {}
func (o *ObjectLiteral) jsExpression() {}

// ElementAccess is obj[index].
type ElementAccess struct {
	Object Expression
	Index  Expression
}

func (e *ElementAccess) jsNode()       {}
func (e *ElementAccess) jsExpression() {}

// PropertyAccess is obj.name.
type PropertyAccess struct {
	Object Expression
	Name   string
}

func (p *PropertyAccess) jsNode()       {}
func (p *PropertyAccess) jsExpression() {}

// Assignment is target = value, usable in expression position.
type Assignment struct {
	Target Expression
	Value  Expression
}

func (a *Assignment) jsNode()       {}
func (a *Assignment) jsExpression() {}

// CallExpression is callee(args...).
type CallExpression struct {
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) jsNode()       {}
func (c *CallExpression) jsExpression() {}

// NewExpression is new callee(args...).
type NewExpression struct {
	Callee    Expression
	Arguments []Expression
}

func (n *NewExpression) jsNode()       {}
func (n *NewExpression) jsExpression() {}

// FunctionExpression is an arrow function (p1, p2) => body.
type FunctionExpression struct {
	Params []string
	Body   Expression
}

func (f *FunctionExpression) jsNode()       {}
func (f *FunctionExpression) jsExpression() {}

// BinaryExpression is left op right.
type BinaryExpression struct {
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) jsNode()       {}
func (b *BinaryExpression) jsExpression() {}

// UnaryExpression is op operand, e.g. -x or !x.
type UnaryExpression struct {
	Operator string
	Operand  Expression
}

func (u *UnaryExpression) jsNode()       {}
func (u *UnaryExpression) jsExpression() {}

// LetStatement is let name = value;
type LetStatement struct {
	Name  string
	Value Expression
}

func (l *LetStatement) jsNode()      {}
func (l *LetStatement) jsStatement() {}

// ExpressionStatement is expr;
type ExpressionStatement struct {
	Expression Expression
}

func (e *ExpressionStatement) jsNode()      {}
func (e *ExpressionStatement) jsStatement() {}
