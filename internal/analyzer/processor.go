package analyzer

import (
	"github.com/lyra-lang/lyra/internal/pipeline"
)

// ConstCheckProcessor exposes const-context checking as a pipeline stage.
type ConstCheckProcessor struct{}

func (p *ConstCheckProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}

	a := New(ctx.Table, ctx.Session)
	errs, notes := a.CheckConstBodies(ctx.AstRoot)

	for _, err := range errs {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	if len(errs) > 0 {
		ctx.Errors = append(ctx.Errors, errs...)
	}
	if ctx.Sink != nil {
		ctx.Sink.Append(errs...)
		ctx.Sink.AppendNotes(notes...)
	}

	return ctx
}
