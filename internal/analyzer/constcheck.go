package analyzer

import (
	"github.com/lyra-lang/lyra/internal/ast"
	"github.com/lyra-lang/lyra/internal/diagnostics"
	"github.com/lyra-lang/lyra/internal/session"
	"github.com/lyra-lang/lyra/internal/symbols"
	"github.com/lyra-lang/lyra/internal/token"
)

// constWalker is the per-tree visitor. Besides the error set it carries only
// the active (const context, enclosing declaration) pair, which is scoped
// strictly via recurseInto: it is never shared across sibling subtrees and
// never survives a scope exit.
type constWalker struct {
	table    *symbols.DeclTable
	sess     *session.Session
	resolver gateResolver

	errorSet    map[string]bool // dedup key: "line:col:code"
	errors      []*diagnostics.DiagnosticError
	notes       []diagnostics.Note
	currentFile string

	constKind symbols.ConstContext
	decl      *symbols.Decl // nil inside anonymous const blocks
}

// recurseInto saves the active (context, declaration) pair, installs the
// given one, runs f, and restores the parent pair on every exit path.
func (w *constWalker) recurseInto(kind symbols.ConstContext, decl *symbols.Decl, f func()) {
	parentKind := w.constKind
	parentDecl := w.decl
	w.constKind = kind
	w.decl = decl
	defer func() {
		w.constKind = parentKind
		w.decl = parentDecl
	}()
	f()
}

// constCheckViolated reports an unsupported expression found in a const
// context. Must only be called while a const context is active.
func (w *constWalker) constCheckViolated(expr nonConstExpr, tok token.Token) {
	diag, note := w.resolver.evaluate(expr, tok, w.constKind, w.decl)
	if note != "" {
		w.notes = append(w.notes, diagnostics.Note{Token: tok, File: w.currentFile, Message: note})
	}
	if diag != nil {
		w.addError(diag)
	}
}

// bodyConstContext derives the context for a function-like body: the table's
// classification when the declaration is known, otherwise the node's own
// const marker.
func (w *constWalker) bodyConstContext(n *ast.FunctionDeclaration, decl *symbols.Decl) symbols.ConstContext {
	if decl != nil {
		return w.table.BodyConstContext(decl)
	}
	if n.Const {
		return symbols.ConstCtxConstFn
	}
	return symbols.ConstCtxNone
}

func (w *constWalker) VisitProgram(n *ast.Program) {
	if n.File != "" {
		w.currentFile = n.File
	}
	for _, stmt := range n.Statements {
		if stmt == nil {
			continue
		}
		stmt.Accept(w)
	}
}

func (w *constWalker) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	var decl *symbols.Decl
	if n.Name != nil {
		decl = w.table.Lookup(n.Name.Value)
	}
	kind := w.bodyConstContext(n, decl)
	w.recurseInto(kind, decl, func() {
		if n.Body != nil {
			n.Body.Accept(w)
		}
	})
}

func (w *constWalker) VisitConstantDeclaration(n *ast.ConstantDeclaration) {
	var decl *symbols.Decl
	if n.Name != nil {
		decl = w.table.Lookup(n.Name.Value)
	}
	w.recurseInto(symbols.ConstCtxConst, decl, func() {
		if n.Value != nil {
			n.Value.Accept(w)
		}
	})
}

func (w *constWalker) VisitStaticDeclaration(n *ast.StaticDeclaration) {
	var decl *symbols.Decl
	if n.Name != nil {
		decl = w.table.Lookup(n.Name.Value)
	}
	w.recurseInto(symbols.ConstCtxStatic, decl, func() {
		if n.Value != nil {
			n.Value.Accept(w)
		}
	})
}

func (w *constWalker) VisitTraitDeclaration(n *ast.TraitDeclaration) {
	for _, method := range n.Methods {
		if method == nil || method.Body == nil {
			continue
		}
		var decl *symbols.Decl
		if method.Name != nil {
			decl = w.table.Lookup(method.Name.Value)
		}
		kind := symbols.ConstCtxNone
		switch {
		case decl != nil:
			kind = w.table.BodyConstContext(decl)
		case method.ConstDefault:
			kind = symbols.ConstCtxConstFn
		}
		body := method.Body
		w.recurseInto(kind, decl, func() {
			body.Accept(w)
		})
	}
}

func (w *constWalker) VisitImplDeclaration(n *ast.ImplDeclaration) {
	// Children first, so diagnostics for violations inside method bodies
	// precede the impl-level summary.
	for _, method := range n.Methods {
		if method == nil {
			continue
		}
		method.Accept(w)
	}
	w.checkConstImpl(n)
}

func (w *constWalker) VisitBlockStatement(n *ast.BlockStatement) {
	for _, stmt := range n.Statements {
		if stmt == nil {
			continue
		}
		stmt.Accept(w)
	}
}

func (w *constWalker) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if n.Expression != nil {
		n.Expression.Accept(w)
	}
}

func (w *constWalker) VisitLetStatement(n *ast.LetStatement) {
	if n.Value != nil {
		n.Value.Accept(w)
	}
}

func (w *constWalker) VisitReturnStatement(n *ast.ReturnStatement) {
	if n.Value != nil {
		n.Value.Accept(w)
	}
}

func (w *constWalker) VisitBreakStatement(n *ast.BreakStatement)       {}
func (w *constWalker) VisitContinueStatement(n *ast.ContinueStatement) {}
func (w *constWalker) VisitIdentifier(n *ast.Identifier)               {}
func (w *constWalker) VisitIntegerLiteral(n *ast.IntegerLiteral)       {}
func (w *constWalker) VisitBooleanLiteral(n *ast.BooleanLiteral)       {}
func (w *constWalker) VisitStringLiteral(n *ast.StringLiteral)         {}

func (w *constWalker) VisitPrefixExpression(n *ast.PrefixExpression) {
	if n.Right != nil {
		n.Right.Accept(w)
	}
}

func (w *constWalker) VisitInfixExpression(n *ast.InfixExpression) {
	if n.Left != nil {
		n.Left.Accept(w)
	}
	if n.Right != nil {
		n.Right.Accept(w)
	}
}

func (w *constWalker) VisitCallExpression(n *ast.CallExpression) {
	if n.Function != nil {
		n.Function.Accept(w)
	}
	for _, arg := range n.Arguments {
		if arg != nil {
			arg.Accept(w)
		}
	}
}

func (w *constWalker) VisitIfExpression(n *ast.IfExpression) {
	if n.Condition != nil {
		n.Condition.Accept(w)
	}
	if n.Consequence != nil {
		n.Consequence.Accept(w)
	}
	if n.Alternative != nil {
		n.Alternative.Accept(w)
	}
}

func (w *constWalker) VisitLoopExpression(n *ast.LoopExpression) {
	if w.constKind != symbols.ConstCtxNone {
		w.constCheckViolated(loopExpr(n.Source), n.Token)
	}
	if n.Condition != nil {
		n.Condition.Accept(w)
	}
	if n.Body != nil {
		n.Body.Accept(w)
	}
}

func (w *constWalker) VisitMatchExpression(n *ast.MatchExpression) {
	if w.constKind != symbols.ConstCtxNone {
		// The dispatch inside a lowered `for` loop is covered by the check
		// on its enclosing LoopExpression; reporting it separately would
		// turn one written loop into two violations.
		if n.Source != ast.MatchSourceForDesugar {
			w.constCheckViolated(matchExpr(n.Source), n.Token)
		}
	}
	if n.Subject != nil {
		n.Subject.Accept(w)
	}
	for _, arm := range n.Arms {
		if arm == nil {
			continue
		}
		if arm.Pattern != nil {
			arm.Pattern.Accept(w)
		}
		if arm.Body != nil {
			arm.Body.Accept(w)
		}
	}
}

func (w *constWalker) VisitConstBlockExpression(n *ast.ConstBlockExpression) {
	// Anonymous const blocks always evaluate in a `const` context and have
	// no enclosing declaration of their own.
	w.recurseInto(symbols.ConstCtxConst, nil, func() {
		if n.Body != nil {
			n.Body.Accept(w)
		}
	})
}
