package token

type TokenType string

// Token is a single lexical token with its source position.
// Literal carries the decoded value (string for identifiers and
// operators, int64/bool/rune for literals).
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers and literals
	IDENT  = "IDENT"  // vec, is_type, T
	INT    = "INT"    // 42
	CHAR   = "CHAR"   // 'a'
	STRING = "STRING" // "..." (diagnostics only, not a template argument)

	// Operators and punctuation
	ASSIGN    = "="
	PLUS      = "+"
	MINUS     = "-"
	ASTERISK  = "*"
	SLASH     = "/"
	PERCENT   = "%"
	BANG      = "!"
	EQ        = "=="
	NOT_EQ    = "!="
	LT        = "<"
	GT        = ">"
	LSHIFT    = "<<"
	RSHIFT    = ">>"
	AMP       = "&"
	COMMA     = ","
	SEMICOLON = ";"
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"
	LBRACKET  = "["
	RBRACKET  = "]"
	DOT       = "."
	ARROW     = "->"
	SCOPE     = "::"
	ELLIPSIS  = "..."

	// Keywords
	TEMPLATE = "TEMPLATE"
	TYPENAME = "TYPENAME"
	CLASS    = "CLASS"
	STRUCT   = "STRUCT"
	USING    = "USING"
	AUTO     = "AUTO"
	DELETE   = "DELETE"
	TRUE     = "TRUE"
	FALSE    = "FALSE"
	WILDCARD = "WILDCARD" // the __ pattern spelling

	// Builtin type keywords
	KW_INT    = "KW_INT"
	KW_BOOL   = "KW_BOOL"
	KW_CHAR   = "KW_CHAR"
	KW_DOUBLE = "KW_DOUBLE"
	KW_VOID   = "KW_VOID"
)

var keywords = map[string]TokenType{
	"template": TEMPLATE,
	"typename": TYPENAME,
	"class":    CLASS,
	"struct":   STRUCT,
	"using":    USING,
	"auto":     AUTO,
	"delete":   DELETE,
	"true":     TRUE,
	"false":    FALSE,
	"__":       WILDCARD,
	"int":      KW_INT,
	"bool":     KW_BOOL,
	"char":     KW_CHAR,
	"double":   KW_DOUBLE,
	"void":     KW_VOID,
}

// LookupIdent maps identifier spellings to keyword token types.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsBuiltinType reports whether t names one of the builtin value types.
func IsBuiltinType(t TokenType) bool {
	switch t {
	case KW_INT, KW_BOOL, KW_CHAR, KW_DOUBLE, KW_VOID:
		return true
	}
	return false
}
