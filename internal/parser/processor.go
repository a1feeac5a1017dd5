package parser

import (
	"github.com/quartzlang/quartz/internal/diagnostics"
	"github.com/quartzlang/quartz/internal/pipeline"
	"github.com/quartzlang/quartz/internal/token"
)

type Processor struct{}

func (pp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	if ctx.Tokens == nil {
		// This case should ideally not be hit if the lexer runs first, but as a safeguard:
		err := diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	p := New(ctx.Tokens, ctx)
	ctx.AstRoot = p.ParseProgram()
	ctx.AstRoot.File = ctx.FilePath

	// Ensure all errors have file path set
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	return ctx
}
