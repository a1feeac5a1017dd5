package lexer_test

import (
	"testing"

	"github.com/quartzlang/quartz/internal/lexer"
	"github.com/quartzlang/quartz/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `val nums = intArrayOf(1, 2, 3) // trailing comment
nums[0] = 4
val f = \i -> i * 2.5
val s: [Char] = ['a']
val ok = s.size >= 1 != false
"text"`

	expected := []struct {
		typ     token.Type
		lexeme  string
		literal string
	}{
		{token.VAL, "val", "val"},
		{token.IDENT, "nums", "nums"},
		{token.ASSIGN, "=", "="},
		{token.IDENT, "intArrayOf", "intArrayOf"},
		{token.LPAREN, "(", "("},
		{token.INT, "1", "1"},
		{token.COMMA, ",", ","},
		{token.INT, "2", "2"},
		{token.COMMA, ",", ","},
		{token.INT, "3", "3"},
		{token.RPAREN, ")", ")"},
		{token.NEWLINE, "\n", "\n"},
		{token.IDENT, "nums", "nums"},
		{token.LBRACKET, "[", "["},
		{token.INT, "0", "0"},
		{token.RBRACKET, "]", "]"},
		{token.ASSIGN, "=", "="},
		{token.INT, "4", "4"},
		{token.NEWLINE, "\n", "\n"},
		{token.VAL, "val", "val"},
		{token.IDENT, "f", "f"},
		{token.ASSIGN, "=", "="},
		{token.BACKSLASH, "\\", "\\"},
		{token.IDENT, "i", "i"},
		{token.ARROW, "->", "->"},
		{token.IDENT, "i", "i"},
		{token.ASTERISK, "*", "*"},
		{token.FLOAT, "2.5", "2.5"},
		{token.NEWLINE, "\n", "\n"},
		{token.VAL, "val", "val"},
		{token.IDENT, "s", "s"},
		{token.COLON, ":", ":"},
		{token.LBRACKET, "[", "["},
		{token.IDENT, "Char", "Char"},
		{token.RBRACKET, "]", "]"},
		{token.ASSIGN, "=", "="},
		{token.LBRACKET, "[", "["},
		{token.CHAR, "'a'", "a"},
		{token.RBRACKET, "]", "]"},
		{token.NEWLINE, "\n", "\n"},
		{token.VAL, "val", "val"},
		{token.IDENT, "ok", "ok"},
		{token.ASSIGN, "=", "="},
		{token.IDENT, "s", "s"},
		{token.DOT, ".", "."},
		{token.IDENT, "size", "size"},
		{token.GTE, ">=", ">="},
		{token.INT, "1", "1"},
		{token.NOT_EQ, "!=", "!="},
		{token.FALSE, "false", "false"},
		{token.NEWLINE, "\n", "\n"},
		{token.STRING, `"text"`, "text"},
		{token.EOF, "", ""},
	}

	l := lexer.New(input)
	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Type != exp.typ {
			t.Fatalf("token %d: type = %q, want %q (lexeme %q)", i, tok.Type, exp.typ, tok.Lexeme)
		}
		if tok.Lexeme != exp.lexeme {
			t.Fatalf("token %d: lexeme = %q, want %q", i, tok.Lexeme, exp.lexeme)
		}
		if tok.Literal != exp.literal {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, exp.literal)
		}
	}
}

func TestPositions(t *testing.T) {
	l := lexer.New("val a = 1\nval b = 2")

	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	// "b" is the second token of line 2.
	for _, tok := range tokens {
		if tok.Lexeme == "b" {
			if tok.Line != 2 || tok.Column != 5 {
				t.Errorf("b at %d:%d, want 2:5", tok.Line, tok.Column)
			}
			return
		}
	}
	t.Fatal("token b not found")
}

func TestIllegalInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"stray_char", "val a = @"},
		{"unterminated_string", `val s = "oops`},
		{"unterminated_char", "val c = 'x"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := lexer.New(tc.input)
			for {
				tok := l.NextToken()
				if tok.Type == token.ILLEGAL {
					return
				}
				if tok.Type == token.EOF {
					t.Fatal("no ILLEGAL token produced")
				}
			}
		})
	}
}
