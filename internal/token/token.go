package token

// TokenType identifies the lexical class of a token.
type TokenType string

// Token is a single lexical token with its source position.
// Line and Column are 1-based.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT_LOWER TokenType = "IDENT_LOWER" // values, functions
	IDENT_UPPER TokenType = "IDENT_UPPER" // types, traits
	INT         TokenType = "INT"
	STRING      TokenType = "STRING"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"
	BANG     TokenType = "!"
	LT       TokenType = "<"
	GT       TokenType = ">"
	EQ       TokenType = "=="
	NOT_EQ   TokenType = "!="
	ARROW    TokenType = "->"
	QUESTION TokenType = "?"

	// Delimiters
	COMMA     TokenType = ","
	COLON     TokenType = ":"
	SEMICOLON TokenType = ";"
	DOT       TokenType = "."
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords
	FUN      TokenType = "FUN"
	CONST    TokenType = "CONST"
	STATIC   TokenType = "STATIC"
	LET      TokenType = "LET"
	RETURN   TokenType = "RETURN"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	LOOP     TokenType = "LOOP"
	WHILE    TokenType = "WHILE"
	FOR      TokenType = "FOR"
	IN       TokenType = "IN"
	MATCH    TokenType = "MATCH"
	BREAK    TokenType = "BREAK"
	CONTINUE TokenType = "CONTINUE"
	TRAIT    TokenType = "TRAIT"
	IMPL     TokenType = "IMPL"
	TRUE     TokenType = "TRUE"
	FALSE    TokenType = "FALSE"
	AWAIT    TokenType = "AWAIT"
)

var keywords = map[string]TokenType{
	"fun":      FUN,
	"const":    CONST,
	"static":   STATIC,
	"let":      LET,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
	"loop":     LOOP,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"match":    MATCH,
	"break":    BREAK,
	"continue": CONTINUE,
	"trait":    TRAIT,
	"impl":     IMPL,
	"true":     TRUE,
	"false":    FALSE,
	"await":    AWAIT,
}

// LookupIdent returns the keyword token type for ident, or the
// identifier class based on the first rune's case.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if len(ident) > 0 && ident[0] >= 'A' && ident[0] <= 'Z' {
		return IDENT_UPPER
	}
	return IDENT_LOWER
}
