package parser

import (
	"fmt"

	"github.com/univc/univc/internal/ast"
	"github.com/univc/univc/internal/diagnostics"
	"github.com/univc/univc/internal/pipeline"
	"github.com/univc/univc/internal/token"
)

// MaxRecursionDepth bounds nested expression parsing.
const MaxRecursionDepth = 200

// Operator precedences, lowest first.
const (
	LOWEST int = iota
	EQUALS         // == !=
	LESSGREATER    // < > (inside parentheses only)
	SUM            // + -
	PRODUCT        // * / %
	PREFIX         // -x !x
	CALL           // x(...) x.m x->m x::m
)

var precedences = map[token.TokenType]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.DOT:      CALL,
	token.ARROW:    CALL,
	token.SCOPE:    CALL,
}

type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	depth int

	// parenDepth tracks parenthesized sub-expressions. Outside
	// parentheses a '<' after a name opens a template-argument list and
	// '<'/'>' never act as comparison operators, mirroring C++.
	parenDepth int

	// pendingGT is set when a '>>' token has been split and one '>'
	// closer is still owed to the enclosing argument list.
	pendingGT bool
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}
	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pendingGT {
		p.peekToken = token.Token{
			Type:    token.GT,
			Lexeme:  ">",
			Literal: ">",
			Line:    p.curToken.Line,
			Column:  p.curToken.Column + 1,
		}
		p.pendingGT = false
		return
	}
	p.peekToken = p.stream.Next()
}

// splitPeekRShift turns a '>>' in peek position into two '>' closers, so
// nested template-argument lists `vec<vec<int>>` close both lists. The
// first '>' replaces the peek token; the second is owed via pendingGT.
func (p *Parser) splitPeekRShift() {
	if !p.peekTokenIs(token.RSHIFT) {
		return
	}
	p.peekToken = token.Token{
		Type:    token.GT,
		Lexeme:  ">",
		Literal: ">",
		Line:    p.peekToken.Line,
		Column:  p.peekToken.Column,
	}
	p.pendingGT = true
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances when the next token matches, otherwise reports P002.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP002,
		p.peekToken,
		fmt.Sprintf("expected %s, got %s", t, describeToken(p.peekToken)),
	))
}

func (p *Parser) errorAtCur(code diagnostics.ErrorCode, msg string) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, p.curToken, msg))
}

func describeToken(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}

// skipToStatementBoundary advances past the current statement after an
// error, so one mistake does not cascade.
func (p *Parser) skipToStatementBoundary() {
	braces := 0
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.LBRACE:
			braces++
		case token.RBRACE:
			if braces > 0 {
				braces--
			}
		case token.SEMICOLON:
			if braces == 0 {
				p.nextToken()
				return
			}
		}
		p.nextToken()
	}
}

// ParseProgram parses the whole token stream into a Program.
func (p *Parser) ParseProgram() ast.Node {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseTopLevelStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.skipToStatementBoundary()
		}
	}
	return program
}

func (p *Parser) parseTopLevelStatement() ast.Statement {
	switch p.curToken.Type {
	case token.TEMPLATE:
		return p.parseTemplateDecl()
	case token.USING:
		return p.parseUsingDecl()
	default:
		p.errorAtCur(diagnostics.ErrP001,
			fmt.Sprintf("expected a template declaration or using-declaration, got %s", describeToken(p.curToken)))
		return nil
	}
}
