// Package analyzer implements the const-context checker: the front-end pass
// that walks one module's tree and rejects restricted control flow inside
// compile-time-evaluated regions (const initializers, const fun bodies,
// static initializers, and anonymous const blocks).
//
// Surface `if`/`match` and plain loops are long since allowed in const code;
// what remains gated are the lowered forms of `for` iteration and the `?`
// operator, controlled by experimental features and, under the staged
// stability protocol, by per-declaration allow lists. By the time the
// back-end const verifier runs, these constructs have been lowered to raw
// jumps that are hard to attribute, so the readable errors are emitted here.
package analyzer

import (
	"fmt"

	"github.com/lyra-lang/lyra/internal/ast"
	"github.com/lyra-lang/lyra/internal/diagnostics"
	"github.com/lyra-lang/lyra/internal/session"
	"github.com/lyra-lang/lyra/internal/symbols"
)

// Analyzer runs const-context checking over module trees. One Analyzer may
// check many trees; per-tree state lives in the walker.
type Analyzer struct {
	table *symbols.DeclTable
	sess  *session.Session
}

// New creates an Analyzer backed by the given declaration table and build
// session. Both are injected so tests can fabricate capability sets.
func New(table *symbols.DeclTable, sess *session.Session) *Analyzer {
	return &Analyzer{table: table, sess: sess}
}

// CheckConstBodies walks node and returns the diagnostics for every
// disallowed construct found in a compile-time-evaluated region, plus any
// non-error notes (e.g. checks skipped under the debug escape). The walk
// always runs to completion; diagnostics never abort it.
func (a *Analyzer) CheckConstBodies(node ast.Node) ([]*diagnostics.DiagnosticError, []diagnostics.Note) {
	w := &constWalker{
		table:    a.table,
		sess:     a.sess,
		resolver: gateResolver{sess: a.sess},
		errorSet: make(map[string]bool),
	}
	node.Accept(w)
	return w.errors, w.notes
}

// addError records an error, deduplicating by position and code. Errors keep
// emission order: the walk is deterministic, and nested violations must
// precede any impl-level summary raised after them.
func (w *constWalker) addError(err *diagnostics.DiagnosticError) {
	if err.File == "" && w.currentFile != "" {
		err.File = w.currentFile
	}
	key := fmt.Sprintf("%d:%d:%s", err.Token.Line, err.Token.Column, err.Code)
	if w.errorSet[key] {
		return
	}
	w.errorSet[key] = true
	w.errors = append(w.errors, err)
}
