package ast

import (
	"github.com/lyra-lang/lyra/internal/token"
)

// Identifier represents an identifier, e.g. a variable name.
type Identifier struct {
	Token token.Token // the token.IDENT_LOWER or token.IDENT_UPPER token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) Accept(v Visitor)     { v.VisitIntegerLiteral(il) }
func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// BooleanLiteral represents boolean literals true/false.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) Accept(v Visitor)     { v.VisitBooleanLiteral(b) }
func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Lexeme }
func (b *BooleanLiteral) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// StringLiteral represents a string, e.g. "hello"
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) Accept(v Visitor)     { v.VisitStringLiteral(sl) }
func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token {
	if sl == nil {
		return token.Token{}
	}
	return sl.Token
}

// PrefixExpression represents a prefix operator application, e.g. !x or -x.
type PrefixExpression struct {
	Token    token.Token // The operator token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) Accept(v Visitor)      { v.VisitPrefixExpression(pe) }
func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }

// InfixExpression represents a binary operator application, e.g. a + b.
type InfixExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) Accept(v Visitor)      { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// CallExpression represents a function call, e.g. f(a, b).
type CallExpression struct {
	Token     token.Token // The '(' token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) Accept(v Visitor)      { v.VisitCallExpression(ce) }
func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// IfExpression represents an if-else expression.
type IfExpression struct {
	Token       token.Token // The 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // Optional
}

func (ie *IfExpression) Accept(v Visitor)      { v.VisitIfExpression(ie) }
func (ie *IfExpression) expressionNode()       {}
func (ie *IfExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IfExpression) GetToken() token.Token { return ie.Token }

// LoopExpression is the single primitive loop node. Higher-level iteration
// syntax is lowered onto it with Source recording the originating form:
// a `for` loop becomes a LoopExpression tagged LoopSourceFor whose body
// drives a MatchExpression tagged MatchSourceForDesugar.
type LoopExpression struct {
	Token     token.Token // The 'loop', 'while' or 'for' token
	Source    LoopSource
	Condition Expression // nil for plain loops and for-desugarings
	Body      *BlockStatement
}

func (le *LoopExpression) Accept(v Visitor)      { v.VisitLoopExpression(le) }
func (le *LoopExpression) expressionNode()       {}
func (le *LoopExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LoopExpression) GetToken() token.Token { return le.Token }

// MatchArm is one arm of a match expression.
type MatchArm struct {
	Token   token.Token
	Pattern Expression // nil for the wildcard arm
	Body    Expression
}

func (ma *MatchArm) GetToken() token.Token {
	if ma == nil {
		return token.Token{}
	}
	return ma.Token
}

// MatchExpression is the single primitive dispatch node. Besides written
// `match` expressions it carries the desugarings of `for` iteration, the `?`
// propagation operator, and `await` suspension, distinguished by Source.
type MatchExpression struct {
	Token   token.Token // The 'match' token (or the desugared construct's token)
	Source  MatchSource
	Subject Expression
	Arms    []*MatchArm
}

func (me *MatchExpression) Accept(v Visitor)      { v.VisitMatchExpression(me) }
func (me *MatchExpression) expressionNode()       {}
func (me *MatchExpression) TokenLiteral() string  { return me.Token.Lexeme }
func (me *MatchExpression) GetToken() token.Token { return me.Token }

// ConstBlockExpression is an anonymous compile-time sub-expression,
// e.g. const { N * 2 } in a runtime position.
type ConstBlockExpression struct {
	Token token.Token // The 'const' token
	Body  *BlockStatement
}

func (cb *ConstBlockExpression) Accept(v Visitor)      { v.VisitConstBlockExpression(cb) }
func (cb *ConstBlockExpression) expressionNode()       {}
func (cb *ConstBlockExpression) TokenLiteral() string  { return cb.Token.Lexeme }
func (cb *ConstBlockExpression) GetToken() token.Token { return cb.Token }
