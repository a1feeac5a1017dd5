package lexer

import (
	"github.com/quartzlang/quartz/internal/diagnostics"
	"github.com/quartzlang/quartz/internal/pipeline"
	"github.com/quartzlang/quartz/internal/token"
)

// Processor tokenizes the source code into ctx.Tokens.
type Processor struct{}

func (lp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	l := New(ctx.SourceCode)

	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			code := diagnostics.ErrL001
			if tok.Literal == "unterminated string" || tok.Literal == "unterminated char literal" {
				code = diagnostics.ErrL002
			}
			ctx.Errors = append(ctx.Errors, diagnostics.NewError(code, tok, "%s", illegalMessage(tok)))
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	ctx.Tokens = tokens

	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}

func illegalMessage(tok token.Token) string {
	if tok.Literal != tok.Lexeme && tok.Literal != "" {
		return tok.Literal
	}
	return "illegal character " + string(tok.Lexeme)
}
