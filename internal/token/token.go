package token

// Type identifies the lexical class of a token.
type Type string

// Token is a single lexeme with its source position.
// Line and Column are 1-based; Column points at the first rune of the lexeme.
type Token struct {
	Type    Type
	Lexeme  string // the raw source text
	Literal string // the interpreted value (e.g. unquoted string contents)
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	IDENT  = "IDENT"
	INT    = "INT"
	FLOAT  = "FLOAT"
	STRING = "STRING"
	CHAR   = "CHAR"

	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"
	BANG     = "!"

	EQ     = "=="
	NOT_EQ = "!="
	LT     = "<"
	GT     = ">"
	LTE    = "<="
	GTE    = ">="

	COMMA     = ","
	COLON     = ":"
	DOT       = "."
	ARROW     = "->"
	BACKSLASH = "\\"

	LPAREN   = "("
	RPAREN   = ")"
	LBRACKET = "["
	RBRACKET = "]"
	LBRACE   = "{"
	RBRACE   = "}"

	VAL   = "VAL"
	TRUE  = "TRUE"
	FALSE = "FALSE"
	NULL  = "NULL"
)

var keywords = map[string]Type{
	"val":   VAL,
	"true":  TRUE,
	"false": FALSE,
	"null":  NULL,
}

// LookupIdent returns the keyword type for ident, or IDENT if it is not a keyword.
func LookupIdent(ident string) Type {
	if t, ok := keywords[ident]; ok {
		return t
	}
	return IDENT
}
