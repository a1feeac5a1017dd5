package jsbackend

import (
	"strings"

	"github.com/quartzlang/quartz/internal/jsast"
	"github.com/quartzlang/quartz/internal/pipeline"
)

// Processor runs the lowering as a pipeline stage and renders the result.
type Processor struct {
	// EmitRuntime prepends the runtime prelude to the emitted module.
	EmitRuntime bool
}

func (bp *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	// If previous stages failed, don't generate code.
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}

	lowerer := NewLowerer(ctx.Types)
	program := lowerer.LowerProgram(ctx.AstRoot)

	var sb strings.Builder
	if bp.EmitRuntime {
		sb.WriteString(Runtime())
		sb.WriteString("\n")
	}
	sb.WriteString(jsast.NewPrinter().Print(program))
	ctx.Output = sb.String()
	return ctx
}
