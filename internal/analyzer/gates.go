package analyzer

import (
	"fmt"

	"github.com/lyra-lang/lyra/internal/ast"
	"github.com/lyra-lang/lyra/internal/diagnostics"
	"github.com/lyra-lang/lyra/internal/session"
	"github.com/lyra-lang/lyra/internal/symbols"
	"github.com/lyra-lang/lyra/internal/token"
)

// nonConstExpr is an expression that is not always legal in a const context:
// a loop or a match, tagged with its originating surface syntax.
type nonConstExpr struct {
	isLoop bool
	loop   ast.LoopSource
	match  ast.MatchSource
}

func loopExpr(src ast.LoopSource) nonConstExpr {
	return nonConstExpr{isLoop: true, loop: src}
}

func matchExpr(src ast.MatchSource) nonConstExpr {
	return nonConstExpr{isLoop: false, match: src}
}

func (e nonConstExpr) name() string {
	if e.isLoop {
		return "`" + e.loop.Name() + "`"
	}
	return "`" + e.match.Name() + "`"
}

// requiredGates returns the experimental capabilities that must be enabled
// for this expression in a const context. checked=false means the expression
// is exempt and never reported (await lowerings are verified later, against
// the suspension transform itself). An empty, checked gate list means the
// expression is always allowed.
func (e nonConstExpr) requiredGates() (gates []session.Feature, checked bool) {
	if e.isLoop {
		switch e.loop {
		case ast.LoopSourceFor:
			return []session.Feature{session.FeatureConstFor}, true
		case ast.LoopSourceLoop, ast.LoopSourceWhile:
			return nil, true
		}
		panic(fmt.Sprintf("analyzer: unknown LoopSource %d", int(e.loop)))
	}

	switch e.match {
	case ast.MatchSourceAwaitDesugar:
		return nil, false
	case ast.MatchSourceForDesugar:
		return []session.Feature{session.FeatureConstFor}, true
	case ast.MatchSourceTryDesugar:
		return []session.Feature{session.FeatureConstTry}, true
	case ast.MatchSourceNormal:
		return nil, true
	}
	panic(fmt.Sprintf("analyzer: unknown MatchSource %d", int(e.match)))
}

// gateResolver decides, for one offending construct, whether the active
// capability and stability state allow it, and synthesizes the diagnostic
// when it does not. The session is injected at construction.
type gateResolver struct {
	sess *session.Session
}

// evaluate returns a diagnostic if expr is disallowed in the given context,
// plus an optional non-error note. kind must be an active const context.
func (r *gateResolver) evaluate(expr nonConstExpr, tok token.Token, kind symbols.ConstContext, decl *symbols.Decl) (*diagnostics.DiagnosticError, string) {
	gates, checked := expr.requiredGates()
	if !checked {
		return nil, ""
	}
	return r.resolveGates(expr.name(), gates, tok, kind, decl)
}

// resolveGates applies the gate policy to an ordered capability list and
// synthesizes the diagnostic for the first failure.
func (r *gateResolver) resolveGates(name string, gates []session.Feature, tok token.Token, kind symbols.ConstContext, decl *symbols.Decl) (*diagnostics.DiagnosticError, string) {
	if len(gates) == 0 {
		// Always-allowed construct. The unchecked-eval escape only exists on
		// this branch; it is deliberately not generalized to gated
		// constructs, which should use feature opt-ins instead.
		if r.sess.UncheckedConstEval {
			return nil, "skipping const checks"
		}
		return nil, ""
	}

	allowed := true
	for _, gate := range gates {
		if !r.gateAllowed(gate, decl) {
			allowed = false
			break
		}
	}
	if allowed {
		return nil, ""
	}

	msg := fmt.Sprintf("%s is not allowed in a `%s`", name, kind.Keyword())

	var missing []session.Feature
	for _, gate := range gates {
		if !r.sess.Enabled(gate) {
			missing = append(missing, gate)
		}
	}

	if len(missing) == 0 {
		// Every gate is enabled but stability rules rejected one: a plain
		// error, not a feature request.
		return diagnostics.NewError(diagnostics.ErrC001, tok, msg), ""
	}

	primary := missing[0]
	diag := diagnostics.NewError(diagnostics.ErrC001, tok,
		fmt.Sprintf("%s: the `%s` feature is experimental", msg, primary))

	// Suggest opt-ins only on builds that can accept them; on a build that
	// forbids experimental features the suggestion would mislead.
	if r.sess.AllowExperimental {
		for _, gate := range missing {
			diag.WithHints(fmt.Sprintf("add %q to the features list in lyra.yaml to enable", string(gate)))
		}
	}

	return diag, ""
}

// gateAllowed applies the layered policy for one required capability:
//  1. the capability must be globally enabled;
//  2. with no enclosing declaration there are no stability restrictions;
//  3. trait-owned declarations may use enabled capabilities freely;
//  4. outside the staged-stability protocol, or on a declaration not
//     claiming a stable const surface, enabling is enough; otherwise the
//     declaration's allow-list must name this exact capability.
func (r *gateResolver) gateAllowed(gate session.Feature, decl *symbols.Decl) bool {
	if !r.sess.Enabled(gate) {
		return false
	}

	if decl == nil {
		return true
	}

	if decl.BelongsToTrait() {
		return true
	}

	if !r.sess.StagedAPI || decl.ConstUnstable {
		return true
	}

	return decl.AllowsConstUnstable(gate)
}
