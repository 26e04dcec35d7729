package ast

import (
	"fmt"
	"strings"

	"github.com/univc/univc/internal/token"
)

// Identifier is a plain name: a template parameter, a declared template,
// or a declared struct.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// TypeName is a builtin type keyword used as a type-id argument.
// apply<G, int>
type TypeName struct {
	Token token.Token
	Name  string
}

func (tn *TypeName) expressionNode()      {}
func (tn *TypeName) TokenLiteral() string { return tn.Token.Lexeme }
func (tn *TypeName) String() string       { return tn.Name }
func (tn *TypeName) GetToken() token.Token {
	if tn == nil {
		return token.Token{}
	}
	return tn.Token
}

// TemplateID is an instantiation expression: Name<args>.
type TemplateID struct {
	Token token.Token // token of Name
	Name  *Identifier
	Args  []Expression
}

func (ti *TemplateID) expressionNode()      {}
func (ti *TemplateID) TokenLiteral() string { return ti.Token.Lexeme }
func (ti *TemplateID) GetToken() token.Token {
	if ti == nil {
		return token.Token{}
	}
	return ti.Token
}

func (ti *TemplateID) String() string {
	parts := make([]string, len(ti.Args))
	for i, a := range ti.Args {
		parts[i] = a.String()
	}
	return ti.Name.Value + "<" + strings.Join(parts, ", ") + ">"
}

// Wildcard is the __ pattern spelling, legal only in specialization
// argument patterns.
type Wildcard struct {
	Token token.Token
}

func (w *Wildcard) expressionNode()      {}
func (w *Wildcard) TokenLiteral() string { return w.Token.Lexeme }
func (w *Wildcard) String() string       { return "__" }
func (w *Wildcard) GetToken() token.Token {
	if w == nil {
		return token.Token{}
	}
	return w.Token
}

// IntLiteral is an integer constant.
type IntLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntLiteral) expressionNode()      {}
func (il *IntLiteral) TokenLiteral() string { return il.Token.Lexeme }
func (il *IntLiteral) String() string       { return fmt.Sprintf("%d", il.Value) }
func (il *IntLiteral) GetToken() token.Token {
	if il == nil {
		return token.Token{}
	}
	return il.Token
}

// BoolLiteral is true or false.
type BoolLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BoolLiteral) expressionNode()      {}
func (bl *BoolLiteral) TokenLiteral() string { return bl.Token.Lexeme }
func (bl *BoolLiteral) String() string       { return fmt.Sprintf("%t", bl.Value) }
func (bl *BoolLiteral) GetToken() token.Token {
	if bl == nil {
		return token.Token{}
	}
	return bl.Token
}

// CharLiteral is a character constant such as 'a'.
type CharLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharLiteral) expressionNode()      {}
func (cl *CharLiteral) TokenLiteral() string { return cl.Token.Lexeme }
func (cl *CharLiteral) String() string       { return "'" + string(cl.Value) + "'" }
func (cl *CharLiteral) GetToken() token.Token {
	if cl == nil {
		return token.Token{}
	}
	return cl.Token
}

// PrefixExpression is a unary constant expression: -N, !B.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Lexeme }
func (pe *PrefixExpression) String() string       { return "(" + pe.Operator + pe.Right.String() + ")" }
func (pe *PrefixExpression) GetToken() token.Token {
	if pe == nil {
		return token.Token{}
	}
	return pe.Token
}

// InfixExpression is a binary expression: N + 1, X * p.
type InfixExpression struct {
	Token    token.Token // the operator token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Lexeme }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}
func (ie *InfixExpression) GetToken() token.Token {
	if ie == nil {
		return token.Token{}
	}
	return ie.Token
}

// MemberExpression is a member access: X.m, X->m or X::m.
// Operator is ".", "->" or "::".
type MemberExpression struct {
	Token    token.Token // the operator token
	Object   Expression
	Operator string
	Member   *Identifier
}

func (me *MemberExpression) expressionNode()      {}
func (me *MemberExpression) TokenLiteral() string { return me.Token.Lexeme }
func (me *MemberExpression) String() string {
	return me.Object.String() + me.Operator + me.Member.Value
}
func (me *MemberExpression) GetToken() token.Token {
	if me == nil {
		return token.Token{}
	}
	return me.Token
}

// CallExpression is a call with X as its target: X(args).
type CallExpression struct {
	Token  token.Token // the '(' token
	Target Expression
	Args   []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Lexeme }
func (ce *CallExpression) String() string {
	parts := make([]string, len(ce.Args))
	for i, a := range ce.Args {
		parts[i] = a.String()
	}
	return ce.Target.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (ce *CallExpression) GetToken() token.Token {
	if ce == nil {
		return token.Token{}
	}
	return ce.Token
}
