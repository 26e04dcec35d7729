package diagnostics

import (
	"fmt"

	"github.com/univc/univc/internal/token"
)

// DiagnosticError is a compile-time diagnostic carrying its code and the
// token it was reported at. All resolution failures surface as diagnostics;
// nothing in this subsystem is recoverable at run time.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string

	// Candidates lists the conflicting candidate descriptions for
	// ambiguity diagnostics (M002). Empty otherwise.
	Candidates []string
}

func (e *DiagnosticError) Error() string {
	pos := ""
	if e.Token.Line > 0 {
		pos = fmt.Sprintf("%d:%d: ", e.Token.Line, e.Token.Column)
	}
	if e.File != "" {
		pos = e.File + ":" + pos
	}
	return fmt.Sprintf("%s[%s] %s: %s", pos, e.Code, Title(e.Code), e.Message)
}

// NewError creates a diagnostic at the given token.
func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

// NewErrorWithCandidates creates a diagnostic listing conflicting candidates.
func NewErrorWithCandidates(code ErrorCode, tok token.Token, message string, candidates []string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message, Candidates: candidates}
}
