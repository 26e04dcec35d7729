package parser

import (
	"fmt"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/kinds"
	"github.com/univc/univc/internal/token"
)

// parseTemplateDecl parses a primary template, a partial specialization,
// or a deleted primary. curToken is the 'template' keyword.
//
//	template <typename T> struct vec;
//	template <typename T> struct is_ptr<T*> { ... };
//	template <template auto X> struct reject = delete;
func (p *Parser) parseTemplateDecl() ast.Statement {
	decl := &ast.TemplateDecl{Token: p.curToken}

	if !p.expectPeek(token.LT) {
		return nil
	}
	params, ok := p.parseParamList()
	if !ok {
		return nil
	}
	decl.Params = params

	if !p.expectPeek(token.STRUCT) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if p.peekTokenIs(token.LT) {
		p.nextToken()
		pattern, ok := p.parseTemplateArgList()
		if !ok {
			return nil
		}
		if pattern == nil {
			pattern = []ast.Expression{}
		}
		decl.Pattern = pattern
	}

	switch {
	case p.peekTokenIs(token.SEMICOLON):
		p.nextToken()
	case p.peekTokenIs(token.ASSIGN):
		p.nextToken()
		if !p.expectPeek(token.DELETE) {
			return nil
		}
		decl.Deleted = true
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
	case p.peekTokenIs(token.LBRACE):
		p.nextToken()
		body := p.parseTemplateBody()
		if body == nil {
			return nil
		}
		decl.Body = body
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	default:
		p.peekError(token.SEMICOLON)
		return nil
	}

	return decl
}

// parseParamList parses a template parameter list. curToken is '<' on
// entry and '>' on successful return. An empty list (`template <>`) is
// accepted for full specializations.
func (p *Parser) parseParamList() ([]*ast.ParamDecl, bool) {
	var params []*ast.ParamDecl

	p.splitPeekRShift()
	if p.peekTokenIs(token.GT) {
		p.nextToken()
		return params, true
	}

	for {
		p.nextToken()
		param := p.parseParamDecl()
		if param == nil {
			return nil, false
		}
		params = append(params, param)

		p.splitPeekRShift()
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if p.peekTokenIs(token.GT) {
			p.nextToken()
			return params, true
		}
		p.peekError(token.GT)
		return nil, false
	}
}

// parseParamDecl parses one parameter declaration. curToken is the first
// token of the declaration and the last token of it on return.
func (p *Parser) parseParamDecl() *ast.ParamDecl {
	param := &ast.ParamDecl{Token: p.curToken}

	switch p.curToken.Type {
	case token.TYPENAME, token.CLASS:
		param.Kind = kinds.Type
	case token.KW_INT:
		param.Kind = kinds.Value(kinds.VTInt)
	case token.KW_BOOL:
		param.Kind = kinds.Value(kinds.VTBool)
	case token.KW_CHAR:
		param.Kind = kinds.Value(kinds.VTChar)
	case token.KW_DOUBLE:
		param.Kind = kinds.Value(kinds.VTDouble)
	case token.AUTO:
		param.Kind = kinds.Value(kinds.VTAny)
	case token.TEMPLATE:
		return p.parseTemplateParam(param)
	case token.WILDCARD:
		// The wildcard spelling is a pattern, not a declarable
		// parameter: it has no name to bind.
		p.errorAtCur(diagnostics.ErrP004, "__ cannot be declared as a template parameter")
		return nil
	default:
		p.errorAtCur(diagnostics.ErrP001,
			fmt.Sprintf("expected a template parameter declaration, got %s", describeToken(p.curToken)))
		return nil
	}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		param.Name = p.curToken.Lexeme
	}
	return param
}

// parseTemplateParam parses the two 'template'-introduced parameter
// forms. curToken is the 'template' keyword.
//
//	template <typename> typename F    — template template parameter
//	template auto X                   — universal parameter
func (p *Parser) parseTemplateParam(param *ast.ParamDecl) *ast.ParamDecl {
	if p.peekTokenIs(token.AUTO) {
		p.nextToken()
		param.Kind = kinds.Universal
		if p.peekTokenIs(token.IDENT) {
			p.nextToken()
			param.Name = p.curToken.Lexeme
		}
		return param
	}

	if !p.expectPeek(token.LT) {
		return nil
	}
	inner, ok := p.parseParamList()
	if !ok {
		return nil
	}
	if !p.peekTokenIs(token.TYPENAME) && !p.peekTokenIs(token.CLASS) {
		p.peekError(token.TYPENAME)
		return nil
	}
	p.nextToken()

	slots := make([]kinds.Kind, len(inner))
	for i, ip := range inner {
		slots[i] = ip.Kind
	}
	param.Kind = kinds.KTemplate{Slots: slots}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		param.Name = p.curToken.Lexeme
	}
	return param
}

// parseUsingDecl parses a top-level instantiation request. curToken is
// the 'using' keyword.
//
//	using x = apply<G, int>;
func (p *Parser) parseUsingDecl() ast.Statement {
	decl := &ast.UsingDecl{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	decl.Target = p.parseExpression(LOWEST)
	if decl.Target == nil {
		return nil
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return decl
}
