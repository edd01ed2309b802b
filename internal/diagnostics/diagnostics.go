// Package diagnostics defines the error values produced by the front end
// and the sink they are collected into.
//
// Every analysis problem is a *DiagnosticError carrying a stable error code,
// the offending token, and an optional list of follow-up hints. Diagnostics
// are values, never panics: passes keep walking after reporting one.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/lyra-lang/lyra/internal/token"
)

// ErrorCode is a stable, user-visible identifier for a class of errors.
type ErrorCode string

const (
	// ErrC001 — construct not allowed in a compile-time-evaluated region.
	ErrC001 ErrorCode = "C001"
	// ErrC002 — const trait implementation relies on a non-const default method.
	ErrC002 ErrorCode = "C002"
)

// DiagnosticError is a single reported problem, positioned at a token.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
	Hints   []string // ordered follow-up suggestions, may be empty
}

// NewError creates a diagnostic at the given token.
func NewError(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

// WithHints appends follow-up hints and returns the receiver for chaining.
func (e *DiagnosticError) WithHints(hints ...string) *DiagnosticError {
	e.Hints = append(e.Hints, hints...)
	return e
}

func (e *DiagnosticError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(":")
	}
	fmt.Fprintf(&sb, "%d:%d: [%s] %s", e.Token.Line, e.Token.Column, e.Code, e.Message)
	for _, h := range e.Hints {
		sb.WriteString("\n  help: ")
		sb.WriteString(h)
	}
	return sb.String()
}

// Note is a non-error remark attached to a position (e.g. a check that was
// deliberately skipped). Notes never fail a compilation.
type Note struct {
	Token   token.Token
	File    string
	Message string
}

func (n Note) String() string {
	if n.File != "" {
		return fmt.Sprintf("%s:%d:%d: note: %s", n.File, n.Token.Line, n.Token.Column, n.Message)
	}
	return fmt.Sprintf("%d:%d: note: %s", n.Token.Line, n.Token.Column, n.Message)
}
