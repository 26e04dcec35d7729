package parser

import (
	"fmt"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/token"
)

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		// Outside parentheses '<' opens a template-argument list and '>'
		// closes one; neither is a comparison operator there.
		if (p.peekToken.Type == token.LT || p.peekToken.Type == token.GT) && p.parenDepth == 0 {
			return LOWEST
		}
		return prec
	}
	return LOWEST
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.errorAtCur(diagnostics.ErrP005, "expression too complex: recursion depth limit exceeded")
		p.skipToStatementBoundary()
		return nil
	}

	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		next := p.parseInfix(left)
		if next == nil {
			return left
		}
		left = next
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.curToken.Type {
	case token.IDENT:
		return p.parseIdentifierExpression()
	case token.INT:
		value, ok := p.curToken.Literal.(int64)
		if !ok {
			p.errorAtCur(diagnostics.ErrP006, fmt.Sprintf("malformed integer literal %q", p.curToken.Lexeme))
			return nil
		}
		return &ast.IntLiteral{Token: p.curToken, Value: value}
	case token.TRUE:
		return &ast.BoolLiteral{Token: p.curToken, Value: true}
	case token.FALSE:
		return &ast.BoolLiteral{Token: p.curToken, Value: false}
	case token.CHAR:
		value, ok := p.curToken.Literal.(rune)
		if !ok {
			p.errorAtCur(diagnostics.ErrP006, fmt.Sprintf("malformed character literal %q", p.curToken.Lexeme))
			return nil
		}
		return &ast.CharLiteral{Token: p.curToken, Value: value}
	case token.WILDCARD:
		return &ast.Wildcard{Token: p.curToken}
	case token.MINUS, token.BANG:
		expr := &ast.PrefixExpression{Token: p.curToken, Operator: p.curToken.Lexeme}
		p.nextToken()
		expr.Right = p.parseExpression(PREFIX)
		if expr.Right == nil {
			return nil
		}
		return expr
	case token.LPAREN:
		return p.parseGroupedExpression()
	default:
		if token.IsBuiltinType(p.curToken.Type) {
			return &ast.TypeName{Token: p.curToken, Name: p.curToken.Lexeme}
		}
		p.errorAtCur(diagnostics.ErrP001,
			fmt.Sprintf("unexpected %s in template argument or expression", describeToken(p.curToken)))
		return nil
	}
}

// parseIdentifierExpression parses a bare name or, when followed by '<'
// outside parentheses, a template-id Name<args>.
func (p *Parser) parseIdentifierExpression() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
	if p.parenDepth == 0 && p.peekTokenIs(token.LT) {
		p.nextToken()
		args, ok := p.parseTemplateArgList()
		if !ok {
			return nil
		}
		return &ast.TemplateID{Token: ident.Token, Name: ident, Args: args}
	}
	return ident
}

// parseTemplateArgList parses the arguments of a template-id. curToken
// is '<' on entry and '>' on successful return.
func (p *Parser) parseTemplateArgList() ([]ast.Expression, bool) {
	var args []ast.Expression

	p.splitPeekRShift()
	if p.peekTokenIs(token.GT) {
		p.nextToken()
		return args, true
	}

	for {
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)

		p.splitPeekRShift()
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if p.peekTokenIs(token.GT) {
			p.nextToken()
			return args, true
		}
		if p.peekTokenIs(token.EOF) {
			p.peekError(token.GT)
			return nil, false
		}
		p.peekError(token.GT)
		return nil, false
	}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.parenDepth++
	defer func() { p.parenDepth-- }()

	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	switch p.peekToken.Type {
	case token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.PERCENT,
		token.EQ, token.NOT_EQ, token.LT, token.GT:
		p.nextToken()
		expr := &ast.InfixExpression{
			Token:    p.curToken,
			Left:     left,
			Operator: p.curToken.Lexeme,
		}
		prec := precedences[expr.Token.Type]
		p.nextToken()
		expr.Right = p.parseExpression(prec)
		if expr.Right == nil {
			return nil
		}
		return expr
	case token.DOT, token.ARROW, token.SCOPE:
		p.nextToken()
		expr := &ast.MemberExpression{
			Token:    p.curToken,
			Object:   left,
			Operator: p.curToken.Lexeme,
		}
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		expr.Member = &ast.Identifier{Token: p.curToken, Value: p.curToken.Lexeme}
		return expr
	case token.LPAREN:
		p.nextToken()
		return p.parseCallExpression(left)
	default:
		return nil
	}
}

// parseCallExpression parses X(args). curToken is '('.
func (p *Parser) parseCallExpression(target ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Target: target}

	p.parenDepth++
	defer func() { p.parenDepth-- }()

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return call
	}
	for {
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		call.Args = append(call.Args, arg)

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			continue
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return call
	}
}
