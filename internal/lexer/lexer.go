package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/quartzlang/quartz/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '\n':
		tok = newToken(token.NEWLINE, l.ch, l.line, l.column)
	case '=':
		if l.peekChar() == '=' {
			startCol := l.column
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Literal: "==", Line: l.line, Column: startCol}
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, l.line, l.column)
	case '-':
		if l.peekChar() == '>' {
			startCol := l.column
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Literal: "->", Line: l.line, Column: startCol}
		} else {
			tok = newToken(token.MINUS, l.ch, l.line, l.column)
		}
	case '*':
		tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
	case '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case '%':
		tok = newToken(token.PERCENT, l.ch, l.line, l.column)
	case '!':
		if l.peekChar() == '=' {
			startCol := l.column
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Lexeme: "!=", Literal: "!=", Line: l.line, Column: startCol}
		} else {
			tok = newToken(token.BANG, l.ch, l.line, l.column)
		}
	case '<':
		if l.peekChar() == '=' {
			startCol := l.column
			l.readChar()
			tok = token.Token{Type: token.LTE, Lexeme: "<=", Literal: "<=", Line: l.line, Column: startCol}
		} else {
			tok = newToken(token.LT, l.ch, l.line, l.column)
		}
	case '>':
		if l.peekChar() == '=' {
			startCol := l.column
			l.readChar()
			tok = token.Token{Type: token.GTE, Lexeme: ">=", Literal: ">=", Line: l.line, Column: startCol}
		} else {
			tok = newToken(token.GT, l.ch, l.line, l.column)
		}
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case ':':
		tok = newToken(token.COLON, l.ch, l.line, l.column)
	case '.':
		tok = newToken(token.DOT, l.ch, l.line, l.column)
	case '\\':
		tok = newToken(token.BACKSLASH, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '"':
		return l.readString()
	case '\'':
		return l.readCharLiteral()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Literal: "", Line: l.line, Column: l.column}
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdentifier() token.Token {
	position := l.position
	startLine, startCol := l.line, l.column
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[position:l.position]
	return token.Token{
		Type:    token.LookupIdent(lexeme),
		Lexeme:  lexeme,
		Literal: lexeme,
		Line:    startLine,
		Column:  startCol,
	}
}

func (l *Lexer) readNumber() token.Token {
	position := l.position
	startLine, startCol := l.line, l.column
	isFloat := false

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar() // .
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.input[position:l.position]
	typ := token.Type(token.INT)
	if isFloat {
		typ = token.FLOAT
	}
	return token.Token{Type: typ, Lexeme: lexeme, Literal: lexeme, Line: startLine, Column: startCol}
}

func (l *Lexer) readString() token.Token {
	startLine, startCol := l.line, l.column
	l.readChar() // opening quote

	var sb []rune
	for l.ch != '"' && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				sb = append(sb, '\n')
			case 't':
				sb = append(sb, '\t')
			case 'r':
				sb = append(sb, '\r')
			case '\\':
				sb = append(sb, '\\')
			case '"':
				sb = append(sb, '"')
			default:
				sb = append(sb, l.ch)
			}
			l.readChar()
			continue
		}
		sb = append(sb, l.ch)
		l.readChar()
	}

	if l.ch != '"' {
		return token.Token{Type: token.ILLEGAL, Lexeme: string(sb), Literal: "unterminated string", Line: startLine, Column: startCol}
	}
	l.readChar() // closing quote
	value := string(sb)
	return token.Token{Type: token.STRING, Lexeme: `"` + value + `"`, Literal: value, Line: startLine, Column: startCol}
}

func (l *Lexer) readCharLiteral() token.Token {
	startLine, startCol := l.line, l.column
	l.readChar() // opening quote

	var ch rune
	if l.ch == '\\' {
		l.readChar()
		switch l.ch {
		case 'n':
			ch = '\n'
		case 't':
			ch = '\t'
		case 'r':
			ch = '\r'
		case '\\':
			ch = '\\'
		case '\'':
			ch = '\''
		default:
			ch = l.ch
		}
	} else {
		ch = l.ch
	}
	l.readChar()

	if l.ch != '\'' {
		return token.Token{Type: token.ILLEGAL, Lexeme: string(ch), Literal: "unterminated char literal", Line: startLine, Column: startCol}
	}
	l.readChar() // closing quote
	return token.Token{Type: token.CHAR, Lexeme: "'" + string(ch) + "'", Literal: string(ch), Line: startLine, Column: startCol}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_' || (ch >= 0x80 && unicode.IsLetter(ch))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func newToken(tokenType token.Type, ch rune, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		// Line comments only; there is no block comment syntax.
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		break
	}
}
