package pipeline

import (
	"github.com/google/uuid"

	"github.com/lyra-lang/lyra/internal/ast"
	"github.com/lyra-lang/lyra/internal/diagnostics"
	"github.com/lyra-lang/lyra/internal/session"
	"github.com/lyra-lang/lyra/internal/symbols"
)

// Processor is a single pipeline stage operating on the shared context.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext is the state threaded through the stages processing one
// module. The driver may run many module contexts concurrently against a
// shared DeclTable, Session and Sink; those collaborators are read-only or
// append-only for the stages here.
type PipelineContext struct {
	// RunID correlates diagnostics and logs from this module run when many
	// modules are processed concurrently.
	RunID uuid.UUID

	FilePath string
	AstRoot  ast.Node

	Table   *symbols.DeclTable
	Session *session.Session
	Sink    *diagnostics.Sink

	Errors []*diagnostics.DiagnosticError
}

// NewContext creates a context for one module run. A nil sink gets a fresh
// private one.
func NewContext(filePath string, root ast.Node, table *symbols.DeclTable, sess *session.Session, sink *diagnostics.Sink) *PipelineContext {
	if sink == nil {
		sink = diagnostics.NewSink()
	}
	return &PipelineContext{
		RunID:    uuid.New(),
		FilePath: filePath,
		AstRoot:  root,
		Table:    table,
		Session:  sess,
		Sink:     sink,
	}
}
