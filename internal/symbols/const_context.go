package symbols

import "github.com/lyra-lang/lyra/internal/config"

// ConstContext identifies which kind of compile-time-evaluated region is
// active at a traversal position. The zero value means ordinary runtime code.
type ConstContext int

const (
	ConstCtxNone    ConstContext = iota // not in a compile-time context
	ConstCtxConstFn                     // body of a const fun
	ConstCtxStatic                      // initializer of a static
	ConstCtxConst                       // constant initializer or anonymous const block
)

// Keyword returns the user-facing keyword for the enclosing context, for use
// in diagnostics. It must not be called on ConstCtxNone.
func (c ConstContext) Keyword() string {
	switch c {
	case ConstCtxConstFn:
		return config.ConstFnKeyword
	case ConstCtxStatic:
		return config.StaticKeyword
	case ConstCtxConst:
		return config.ConstKeyword
	}
	panic("symbols: Keyword called outside a const context")
}

func (c ConstContext) String() string {
	if c == ConstCtxNone {
		return "none"
	}
	return c.Keyword()
}
