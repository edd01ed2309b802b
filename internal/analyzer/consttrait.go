package analyzer

import (
	"strings"

	"github.com/lyra-lang/lyra/internal/ast"
	"github.com/lyra-lang/lyra/internal/diagnostics"
)

// checkConstImpl verifies that a const trait implementation overrides every
// trait default method not itself certified compile-time-safe. Methods with
// no default body are skipped: an ordinary missing-method error is the type
// checker's job. All gaps are reported in one diagnostic, never one per
// method.
func (w *constWalker) checkConstImpl(n *ast.ImplDeclaration) {
	if !n.Const || n.Trait == nil || n.TypeName == nil {
		return
	}

	trait := w.table.Trait(n.Trait.Value)
	if trait == nil {
		// Unknown trait; the resolver reports that.
		return
	}

	var toImplement []string
	for _, method := range trait.Methods {
		if !method.HasDefault || method.ConstDefault {
			continue
		}

		leaf, ok := w.table.LeafDef(trait.Name, n.TypeName.Value, method.Name)
		if !ok || leaf.FromTrait {
			toImplement = append(toImplement, method.Name)
		}
	}

	if len(toImplement) == 0 {
		return
	}

	diag := diagnostics.NewError(diagnostics.ErrC002, n.Token,
		"const trait implementations may not use non-const default functions")
	diag.WithHints("`" + strings.Join(toImplement, "`, `") + "` not implemented")
	w.addError(diag)
}
