package ast

import (
	"strings"

	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
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
	String() string
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File       string // Source file path
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

// ParamDecl is a single template parameter declaration.
// typename T | class T | int N | auto V | template <...> typename F | template auto X
type ParamDecl struct {
	Token token.Token // first token of the declaration
	Name  string      // may be empty for unnamed parameters
	Kind  kinds.Kind  // declared kind, computed from syntax at parse time
}

func (pd *ParamDecl) TokenLiteral() string { return pd.Token.Lexeme }
func (pd *ParamDecl) GetToken() token.Token {
	if pd == nil {
		return token.Token{}
	}
	return pd.Token
}

func (pd *ParamDecl) String() string {
	if pd.Name == "" {
		return pd.Kind.String()
	}
	return pd.Kind.String() + " " + pd.Name
}

// TemplateDecl declares a primary template or a partial specialization.
// template <typename T> struct vec;
// template <typename T> struct is_ptr<T*>;   (Pattern non-nil)
// template <typename T> struct always = delete;
type TemplateDecl struct {
	Token   token.Token // the 'template' token
	Params  []*ParamDecl
	Name    *Identifier
	Pattern []Expression  // nil for a primary template
	Body    *TemplateBody // nil when declared without a body
	Deleted bool          // primary declared `= delete`
}

func (td *TemplateDecl) statementNode()       {}
func (td *TemplateDecl) TokenLiteral() string { return td.Token.Lexeme }
func (td *TemplateDecl) GetToken() token.Token {
	if td == nil {
		return token.Token{}
	}
	return td.Token
}

// IsSpecialization reports whether this declaration carries an argument
// pattern (i.e. is a partial specialization of its primary).
func (td *TemplateDecl) IsSpecialization() bool { return td.Pattern != nil }

func (td *TemplateDecl) String() string {
	var sb strings.Builder
	sb.WriteString("template <")
	for i, p := range td.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString("> struct ")
	sb.WriteString(td.Name.Value)
	if td.Pattern != nil {
		sb.WriteString("<")
		for i, a := range td.Pattern {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteString(">")
	}
	if td.Deleted {
		sb.WriteString(" = delete")
	}
	return sb.String()
}

// UsingDecl is a top-level instantiation request.
// using x = apply<G, int>;
type UsingDecl struct {
	Token  token.Token // the 'using' token
	Name   *Identifier
	Target Expression
}

func (ud *UsingDecl) statementNode()       {}
func (ud *UsingDecl) TokenLiteral() string { return ud.Token.Lexeme }
func (ud *UsingDecl) GetToken() token.Token {
	if ud == nil {
		return token.Token{}
	}
	return ud.Token
}

// TemplateBody is the brace-enclosed body of a template definition.
// Bodies exist so universal parameter uses have syntactic positions to
// be checked in.
type TemplateBody struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (tb *TemplateBody) TokenLiteral() string { return tb.Token.Lexeme }
func (tb *TemplateBody) GetToken() token.Token {
	if tb == nil {
		return token.Token{}
	}
	return tb.Token
}

// AliasDecl is a member alias inside a template body.
// using type = F<X>;
type AliasDecl struct {
	Token  token.Token // the 'using' token
	Name   *Identifier
	Target Expression
}

func (ad *AliasDecl) statementNode()       {}
func (ad *AliasDecl) TokenLiteral() string { return ad.Token.Lexeme }
func (ad *AliasDecl) GetToken() token.Token {
	if ad == nil {
		return token.Token{}
	}
	return ad.Token
}

// ExpressionStatement wraps an expression used at statement level inside
// a template body.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token {
	if es == nil {
		return token.Token{}
	}
	return es.Token
}
