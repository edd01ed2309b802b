package ast

import "fmt"

// LoopSource records which surface syntax a LoopExpression was lowered from.
// The set is closed: every consumer must handle all variants exhaustively so
// that a new lowering added to the language is a compile-visible obligation.
type LoopSource int

const (
	LoopSourceLoop LoopSource = iota // plain `loop`
	LoopSourceWhile
	LoopSourceFor
)

// Name returns the user-facing keyword of the originating syntax.
func (s LoopSource) Name() string {
	switch s {
	case LoopSourceLoop:
		return "loop"
	case LoopSourceWhile:
		return "while"
	case LoopSourceFor:
		return "for"
	}
	panic(fmt.Sprintf("ast: unknown LoopSource %d", int(s)))
}

func (s LoopSource) String() string { return s.Name() }

// MatchSource records which surface syntax a MatchExpression was lowered
// from. Like LoopSource, the set is closed.
type MatchSource int

const (
	MatchSourceNormal     MatchSource = iota // a written `match`
	MatchSourceForDesugar                    // the dispatch inside a lowered `for` loop
	MatchSourceTryDesugar                    // the `?` propagation operator
	MatchSourceAwaitDesugar                  // the `await` suspension operator
)

// Name returns the user-facing spelling of the originating syntax.
func (s MatchSource) Name() string {
	switch s {
	case MatchSourceNormal:
		return "match"
	case MatchSourceForDesugar:
		return "for"
	case MatchSourceTryDesugar:
		return "?"
	case MatchSourceAwaitDesugar:
		return "await"
	}
	panic(fmt.Sprintf("ast: unknown MatchSource %d", int(s)))
}

func (s MatchSource) String() string { return s.Name() }
