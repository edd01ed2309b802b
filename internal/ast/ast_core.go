package ast

import (
	"github.com/lyra-lang/lyra/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary
// token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every module tree.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// FunctionDeclaration represents a named function.
// fun f(x) { ... } or const fun f(x) { ... }
type FunctionDeclaration struct {
	Token  token.Token // The 'fun' token (or 'const' for const fun)
	Name   *Identifier
	Params []*Identifier
	Const  bool // Declared compile-time-evaluable
	Body   *BlockStatement
}

func (fd *FunctionDeclaration) Accept(v Visitor)     { v.VisitFunctionDeclaration(fd) }
func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// ConstantDeclaration represents a constant binding whose initializer is
// evaluated at compile time.
// const kVAL = 123
type ConstantDeclaration struct {
	Token token.Token // The 'const' token
	Name  *Identifier
	Value Expression
}

func (cd *ConstantDeclaration) Accept(v Visitor)     { v.VisitConstantDeclaration(cd) }
func (cd *ConstantDeclaration) statementNode()       {}
func (cd *ConstantDeclaration) TokenLiteral() string { return cd.Token.Lexeme }
func (cd *ConstantDeclaration) GetToken() token.Token {
	if cd == nil {
		return token.Token{}
	}
	return cd.Token
}

// StaticDeclaration represents a static binding whose initializer is
// evaluated at compile time.
// static counter = 0
type StaticDeclaration struct {
	Token token.Token // The 'static' token
	Name  *Identifier
	Value Expression
}

func (sd *StaticDeclaration) Accept(v Visitor)     { v.VisitStaticDeclaration(sd) }
func (sd *StaticDeclaration) statementNode()       {}
func (sd *StaticDeclaration) TokenLiteral() string { return sd.Token.Lexeme }
func (sd *StaticDeclaration) GetToken() token.Token {
	if sd == nil {
		return token.Token{}
	}
	return sd.Token
}

// TraitMethod is one associated function of a trait declaration.
// Body is nil when the trait only declares the signature.
type TraitMethod struct {
	Token        token.Token
	Name         *Identifier
	Params       []*Identifier
	Body         *BlockStatement // Optional default body
	ConstDefault bool            // Default body is certified compile-time-safe
}

func (tm *TraitMethod) GetToken() token.Token {
	if tm == nil {
		return token.Token{}
	}
	return tm.Token
}

// HasDefault reports whether this method carries a default body.
func (tm *TraitMethod) HasDefault() bool {
	return tm != nil && tm.Body != nil
}

// TraitDeclaration represents a trait definition.
// trait Show { fun show(x) { ... } }
type TraitDeclaration struct {
	Token   token.Token // The 'trait' token
	Name    *Identifier
	Methods []*TraitMethod // In definition order
}

func (td *TraitDeclaration) Accept(v Visitor)     { v.VisitTraitDeclaration(td) }
func (td *TraitDeclaration) statementNode()       {}
func (td *TraitDeclaration) TokenLiteral() string { return td.Token.Lexeme }
func (td *TraitDeclaration) GetToken() token.Token {
	if td == nil {
		return token.Token{}
	}
	return td.Token
}

// ImplDeclaration represents a trait implementation for a type.
// impl Show for Point { ... } or const impl Show for Point { ... }
type ImplDeclaration struct {
	Token    token.Token // The 'impl' token (or 'const' for const impl)
	Const    bool        // Declared compile-time-evaluable
	Trait    *Identifier // nil for inherent impls
	TypeName *Identifier
	Methods  []*FunctionDeclaration
}

func (id *ImplDeclaration) Accept(v Visitor)     { v.VisitImplDeclaration(id) }
func (id *ImplDeclaration) statementNode()       {}
func (id *ImplDeclaration) TokenLiteral() string { return id.Token.Lexeme }
func (id *ImplDeclaration) GetToken() token.Token {
	if id == nil {
		return token.Token{}
	}
	return id.Token
}

// BlockStatement represents a list of statements within curly braces.
type BlockStatement struct {
	Token      token.Token // The '{' token
	Statements []Statement
}

func (bs *BlockStatement) Accept(v Visitor)     { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// ExpressionStatement is a statement that consists of a single expression.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) Accept(v Visitor)     { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}

// LetStatement represents a local binding.
// let x = 1
type LetStatement struct {
	Token token.Token // The 'let' token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) Accept(v Visitor)     { v.VisitLetStatement(ls) }
func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Lexeme }
func (ls *LetStatement) GetToken() token.Token {
	if ls == nil {
		return token.Token{}
	}
	return ls.Token
}

// ReturnStatement represents an early return from a function body.
type ReturnStatement struct {
	Token token.Token // The 'return' token
	Value Expression  // Optional
}

func (rs *ReturnStatement) Accept(v Visitor)     { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}

// BreakStatement exits the innermost loop.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) Accept(v Visitor)     { v.VisitBreakStatement(bs) }
func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Lexeme }
func (bs *BreakStatement) GetToken() token.Token {
	if bs == nil {
		return token.Token{}
	}
	return bs.Token
}

// ContinueStatement continues the innermost loop.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) Accept(v Visitor)     { v.VisitContinueStatement(cs) }
func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Lexeme }
func (cs *ContinueStatement) GetToken() token.Token {
	if cs == nil {
		return token.Token{}
	}
	return cs.Token
}
