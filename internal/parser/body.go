package parser

import (
	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/token"
)

// parseTemplateBody parses the brace-enclosed definition body. curToken
// is '{' on entry and '}' on successful return.
func (p *Parser) parseTemplateBody() *ast.TemplateBody {
	body := &ast.TemplateBody{Token: p.curToken}

	for {
		p.nextToken()
		switch p.curToken.Type {
		case token.RBRACE:
			return body
		case token.SEMICOLON:
			continue
		case token.EOF:
			p.errorAtCur(diagnostics.ErrP003, "unterminated template body")
			return nil
		case token.USING:
			stmt := p.parseAliasDecl()
			if stmt == nil {
				return nil
			}
			body.Statements = append(body.Statements, stmt)
		default:
			stmt := p.parseBodyExpressionStatement()
			if stmt == nil {
				return nil
			}
			body.Statements = append(body.Statements, stmt)
		}
	}
}

// parseAliasDecl parses a member alias. curToken is 'using'.
//
//	using type = F<T>;
func (p *Parser) parseAliasDecl() ast.Statement {
	decl := &ast.AliasDecl{Token: p.curToken}

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

// parseBodyExpressionStatement parses a single expression statement of a
// template body. A trailing declarator name is tolerated (`T obj;`), so
// declaration-shaped statements parse without a separate grammar; the
// expression itself is what use-site checking looks at.
func (p *Parser) parseBodyExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}
	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return stmt
}
