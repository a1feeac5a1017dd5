package jsast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// --- Printer (renders the target AST as JavaScript source) ---

type Printer struct {
	buf bytes.Buffer
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Print renders a whole program, one statement per line.
func (p *Printer) Print(program *Program) string {
	p.buf.Reset()
	for _, stmt := range program.Statements {
		p.printStatement(stmt)
		p.buf.WriteString("\n")
	}
	return p.buf.String()
}

// PrintExpression renders a single expression.
func (p *Printer) PrintExpression(expr Expression) string {
	p.buf.Reset()
	p.printExpression(expr)
	return p.buf.String()
}

func (p *Printer) printStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *LetStatement:
		p.buf.WriteString("let ")
		p.buf.WriteString(s.Name)
		p.buf.WriteString(" = ")
		p.printExpression(s.Value)
		p.buf.WriteString(";")
	case *ExpressionStatement:
		p.printExpression(s.Expression)
		p.buf.WriteString(";")
	default:
		panic(fmt.Sprintf("jsast: unknown statement %T", stmt))
	}
}

func (p *Printer) printExpression(expr Expression) {
	switch e := expr.(type) {
	case *Name:
		p.buf.WriteString(e.Value)
	case *StringLiteral:
		p.buf.WriteString(strconv.Quote(e.Value))
	case *NumberLiteral:
		if e.Raw != "" {
			p.buf.WriteString(e.Raw)
		} else {
			p.buf.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
		}
	case *BoolLiteral:
		p.buf.WriteString(strconv.FormatBool(e.Value))
	case *NullLiteral:
		p.buf.WriteString("null")
	case *ArrayLiteral:
		p.buf.WriteString("[")
		p.printList(e.Elements)
		p.buf.WriteString("]")
	case *ObjectLiteral:
		p.buf.WriteString("{")
		for i, prop := range e.Properties {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.buf.WriteString(prop.Key)
			p.buf.WriteString(": ")
			p.printExpression(prop.Value)
		}
		p.buf.WriteString("}")
	case *ElementAccess:
		p.printOperand(e.Object)
		p.buf.WriteString("[")
		p.printExpression(e.Index)
		p.buf.WriteString("]")
	case *PropertyAccess:
		p.printOperand(e.Object)
		p.buf.WriteString(".")
		p.buf.WriteString(e.Name)
	case *Assignment:
		p.printExpression(e.Target)
		p.buf.WriteString(" = ")
		p.printExpression(e.Value)
	case *CallExpression:
		p.printOperand(e.Callee)
		p.buf.WriteString("(")
		p.printList(e.Arguments)
		p.buf.WriteString(")")
	case *NewExpression:
		p.buf.WriteString("new ")
		p.printOperand(e.Callee)
		p.buf.WriteString("(")
		p.printList(e.Arguments)
		p.buf.WriteString(")")
	case *FunctionExpression:
		p.buf.WriteString("(")
		p.buf.WriteString(strings.Join(e.Params, ", "))
		p.buf.WriteString(") => ")
		p.printExpression(e.Body)
	case *BinaryExpression:
		p.printBinaryOperand(e.Left)
		p.buf.WriteString(" ")
		p.buf.WriteString(e.Operator)
		p.buf.WriteString(" ")
		p.printBinaryOperand(e.Right)
	case *UnaryExpression:
		p.buf.WriteString(e.Operator)
		p.printBinaryOperand(e.Operand)
	default:
		panic(fmt.Sprintf("jsast: unknown expression %T", expr))
	}
}

func (p *Printer) printList(exprs []Expression) {
	for i, e := range exprs {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.printExpression(e)
	}
}

// printOperand parenthesizes expressions that would not parse as the head
// of an access or call.
func (p *Printer) printOperand(expr Expression) {
	switch expr.(type) {
	case *NewExpression, *FunctionExpression, *Assignment, *BinaryExpression, *UnaryExpression:
		p.buf.WriteString("(")
		p.printExpression(expr)
		p.buf.WriteString(")")
	default:
		p.printExpression(expr)
	}
}

// printBinaryOperand parenthesizes nested binary and assignment operands
// instead of tracking precedence. The lowering emits flat trees, so the
// extra parentheses stay rare.
func (p *Printer) printBinaryOperand(expr Expression) {
	switch expr.(type) {
	case *BinaryExpression, *Assignment, *FunctionExpression:
		p.buf.WriteString("(")
		p.printExpression(expr)
		p.buf.WriteString(")")
	default:
		p.printExpression(expr)
	}
}
