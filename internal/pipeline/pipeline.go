package pipeline

import (
	"github.com/quartzlang/quartz/internal/ast"
	"github.com/quartzlang/quartz/internal/diagnostics"
	"github.com/quartzlang/quartz/internal/token"
	"github.com/quartzlang/quartz/internal/typesystem"
)

// Context is the shared state threaded through the compilation stages of a
// single source file. Each stage reads what earlier stages produced and fills
// in its own outputs.
type Context struct {
	FilePath   string
	SourceCode string

	Tokens  []token.Token
	AstRoot *ast.Program

	// Types maps every analyzed expression to its resolved type.
	// Populated by the analyzer, consumed by the backend.
	Types map[ast.Expression]typesystem.Type

	// Output is the emitted JavaScript module text.
	Output string

	Errors []*diagnostics.DiagnosticError
}

// HasErrors reports whether any stage has produced a diagnostic so far.
func (c *Context) HasErrors() bool { return len(c.Errors) > 0 }

// Processor is a single compilation stage.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors to collect diagnostics from all stages.
	}
	return ctx
}
