package diagnostics

// ErrorCode identifies a diagnostic category. Codes are grouped by the
// stage that emits them: P (parser), C (argument classifier), B (parameter
// binder), M (specialization matcher), V (use-site validator).
type ErrorCode string

const (
	// Parser
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected token not found
	ErrP003 ErrorCode = "P003" // unterminated construct
	ErrP004 ErrorCode = "P004" // wildcard declared as a named parameter
	ErrP005 ErrorCode = "P005" // recursion depth exceeded
	ErrP006 ErrorCode = "P006" // malformed literal

	// Argument classifier
	ErrC001 ErrorCode = "C001" // argument ill-formed
	ErrC002 ErrorCode = "C002" // unknown name in argument position

	// Parameter binder
	ErrB001 ErrorCode = "B001" // kind mismatch
	ErrB002 ErrorCode = "B002" // arity mismatch

	// Specialization matcher
	ErrM001 ErrorCode = "M001" // no matching specialization
	ErrM002 ErrorCode = "M002" // ambiguous specialization
	ErrM003 ErrorCode = "M003" // deleted primary selected

	// Use-site validator
	ErrV001 ErrorCode = "V001" // illegal universal parameter use
)

var titles = map[ErrorCode]string{
	ErrP001: "unexpected token",
	ErrP002: "expected token",
	ErrP003: "unterminated construct",
	ErrP004: "wildcard is not a declarable parameter",
	ErrP005: "expression too complex",
	ErrP006: "malformed literal",
	ErrC001: "argument ill-formed",
	ErrC002: "unknown name",
	ErrB001: "kind mismatch",
	ErrB002: "arity mismatch",
	ErrM001: "no matching specialization",
	ErrM002: "ambiguous specialization",
	ErrM003: "deleted primary selected",
	ErrV001: "illegal universal parameter use",
}

// Title returns the short human-readable name for a code.
func Title(code ErrorCode) string {
	if t, ok := titles[code]; ok {
		return t
	}
	return "error"
}
