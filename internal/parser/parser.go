package parser

import (
	"strconv"

	"github.com/quartzlang/quartz/internal/ast"
	"github.com/quartzlang/quartz/internal/diagnostics"
	"github.com/quartzlang/quartz/internal/pipeline"
	"github.com/quartzlang/quartz/internal/token"
)

// Operator precedence (higher = binds tighter)
const (
	LOWEST      = iota
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x !x
	CALL        // f(x) arr[i] obj.member
)

var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: CALL,
	token.DOT:      CALL,
}

type Parser struct {
	tokens []token.Token
	pos    int
	ctx    *pipeline.Context
}

func New(tokens []token.Token, ctx *pipeline.Context) *Parser {
	return &Parser{tokens: tokens, ctx: ctx}
}

func (p *Parser) curToken() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekToken() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() { p.pos++ }

func (p *Parser) expect(t token.Type) bool {
	if p.curToken().Type == t {
		p.advance()
		return true
	}
	p.errorf(diagnostics.ErrP001, p.curToken(), "expected %s, got %s", t, p.curToken().Type)
	return false
}

func (p *Parser) errorf(code diagnostics.ErrorCode, tok token.Token, format string, args ...interface{}) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, tok, format, args...))
}

// skipNewlines consumes consecutive statement separators.
func (p *Parser) skipNewlines() {
	for p.curToken().Type == token.NEWLINE {
		p.advance()
	}
}

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	p.skipNewlines()
	for p.curToken().Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			// Recover at the next statement boundary.
			for p.curToken().Type != token.NEWLINE && p.curToken().Type != token.EOF {
				p.advance()
			}
		}
		p.skipNewlines()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken().Type {
	case token.VAL:
		return p.parseValStatement()
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

func (p *Parser) parseValStatement() ast.Statement {
	stmt := &ast.ValStatement{Token: p.curToken()}
	p.advance() // val

	nameTok := p.curToken()
	if nameTok.Type != token.IDENT {
		p.errorf(diagnostics.ErrP001, nameTok, "expected identifier after 'val', got %s", nameTok.Type)
		return nil
	}
	stmt.Name = &ast.Identifier{Token: nameTok, Value: nameTok.Literal}
	p.advance()

	if p.curToken().Type == token.COLON {
		p.advance()
		stmt.TypeAnnotation = p.parseType()
		if stmt.TypeAnnotation == nil {
			return nil
		}
	}

	if !p.expect(token.ASSIGN) {
		return nil
	}
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	startTok := p.curToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if p.curToken().Type == token.ASSIGN {
		assignTok := p.curToken()
		switch expr.(type) {
		case *ast.Identifier, *ast.IndexExpression:
		default:
			p.errorf(diagnostics.ErrP002, assignTok, "invalid assignment target")
			return nil
		}
		p.advance() // =
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		return &ast.AssignStatement{Token: assignTok, Target: expr, Value: value}
	}

	return &ast.ExpressionStatement{Token: startTok, Expression: expr}
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for precedence < p.curPrecedence() {
		switch p.curToken().Type {
		case token.LPAREN:
			left = p.parseCallExpression(left)
		case token.LBRACKET:
			left = p.parseIndexExpression(left)
		case token.DOT:
			left = p.parseMemberExpression(left)
		default:
			left = p.parseInfixExpression(left)
		}
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken().Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parsePrefix() ast.Expression {
	tok := p.curToken()
	switch tok.Type {
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.INT:
		p.advance()
		val, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.errorf(diagnostics.ErrP002, tok, "invalid integer literal %q", tok.Lexeme)
			return nil
		}
		return &ast.IntegerLiteral{Token: tok, Value: val}
	case token.FLOAT:
		p.advance()
		val, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errorf(diagnostics.ErrP002, tok, "invalid float literal %q", tok.Lexeme)
			return nil
		}
		return &ast.FloatLiteral{Token: tok, Value: val}
	case token.STRING:
		p.advance()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}
	case token.CHAR:
		p.advance()
		r := []rune(tok.Literal)
		if len(r) != 1 {
			p.errorf(diagnostics.ErrP002, tok, "invalid char literal %q", tok.Lexeme)
			return nil
		}
		return &ast.CharLiteral{Token: tok, Value: r[0]}
	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Type == token.TRUE}
	case token.NULL:
		p.advance()
		return &ast.NullLiteral{Token: tok}
	case token.MINUS, token.BANG:
		p.advance()
		right := p.parseExpression(PREFIX)
		if right == nil {
			return nil
		}
		return &ast.PrefixExpression{Token: tok, Operator: tok.Lexeme, Right: right}
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return expr
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.BACKSLASH:
		return p.parseLambda()
	default:
		p.errorf(diagnostics.ErrP001, tok, "unexpected token %s", tok.Type)
		return nil
	}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken()
	prec := p.curPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return &ast.InfixExpression{Token: tok, Left: left, Operator: tok.Lexeme, Right: right}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken() // '('
	p.advance()

	var args []ast.Expression
	for p.curToken().Type != token.RPAREN {
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if p.curToken().Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return &ast.CallExpression{Token: tok, Callee: callee, Arguments: args}
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := p.curToken() // '['
	p.advance()
	index := p.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	if !p.expect(token.RBRACKET) {
		return nil
	}
	return &ast.IndexExpression{Token: tok, Left: left, Index: index}
}

func (p *Parser) parseMemberExpression(left ast.Expression) ast.Expression {
	tok := p.curToken() // '.'
	p.advance()
	memberTok := p.curToken()
	if memberTok.Type != token.IDENT {
		p.errorf(diagnostics.ErrP001, memberTok, "expected member name after '.', got %s", memberTok.Type)
		return nil
	}
	p.advance()
	return &ast.MemberExpression{
		Token:  tok,
		Left:   left,
		Member: &ast.Identifier{Token: memberTok, Value: memberTok.Literal},
	}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken() // '['
	p.advance()

	var elements []ast.Expression
	for p.curToken().Type != token.RBRACKET {
		elem := p.parseExpression(LOWEST)
		if elem == nil {
			return nil
		}
		elements = append(elements, elem)
		if p.curToken().Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(token.RBRACKET) {
		return nil
	}
	return &ast.ArrayLiteral{Token: tok, Elements: elements}
}

func (p *Parser) parseLambda() ast.Expression {
	tok := p.curToken() // '\'
	p.advance()

	var params []*ast.Identifier
	for p.curToken().Type == token.IDENT {
		params = append(params, &ast.Identifier{Token: p.curToken(), Value: p.curToken().Literal})
		p.advance()
		if p.curToken().Type == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(token.ARROW) {
		return nil
	}
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}
	return &ast.LambdaExpression{Token: tok, Params: params, Body: body}
}

func (p *Parser) parseType() ast.Type {
	tok := p.curToken()
	switch tok.Type {
	case token.IDENT:
		p.advance()
		return &ast.NamedType{Token: tok, Name: tok.Literal}
	case token.LBRACKET:
		p.advance()
		elem := p.parseType()
		if elem == nil {
			return nil
		}
		if !p.expect(token.RBRACKET) {
			return nil
		}
		return &ast.ArrayType{Token: tok, Elem: elem}
	default:
		p.errorf(diagnostics.ErrP003, tok, "expected type, got %s", tok.Type)
		return nil
	}
}
