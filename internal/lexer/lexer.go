package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/univc/univc/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
		l.ch = r
		l.position = l.readPosition
		l.readPosition += w
		l.column++
		return
	}

	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespaceAndComments()

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Literal: "==", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Lexeme: "!=", Literal: "!=", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.BANG, l.ch, l.line, l.column)
		}
	case '<':
		if l.peekChar() == '<' {
			l.readChar()
			tok = token.Token{Type: token.LSHIFT, Lexeme: "<<", Literal: "<<", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.LT, l.ch, l.line, l.column)
		}
	case '>':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.RSHIFT, Lexeme: ">>", Literal: ">>", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.GT, l.ch, l.line, l.column)
		}
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Literal: "->", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.MINUS, l.ch, l.line, l.column)
		}
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			tok = token.Token{Type: token.SCOPE, Lexeme: "::", Literal: "::", Line: l.line, Column: l.column}
		} else {
			tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, l.line, l.column)
	case '*':
		tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
	case '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case '%':
		tok = newToken(token.PERCENT, l.ch, l.line, l.column)
	case '&':
		tok = newToken(token.AMP, l.ch, l.line, l.column)
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, l.line, l.column)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, l.line, l.column)
	case '.':
		if l.peekChar() == '.' {
			// could only be an ellipsis; anything else is illegal here
			startCol := l.column
			l.readChar()
			if l.peekChar() == '.' {
				l.readChar()
				tok = token.Token{Type: token.ELLIPSIS, Lexeme: "...", Literal: "...", Line: l.line, Column: startCol}
			} else {
				tok = token.Token{Type: token.ILLEGAL, Lexeme: "..", Literal: "..", Line: l.line, Column: startCol}
			}
		} else {
			tok = newToken(token.DOT, l.ch, l.line, l.column)
		}
	case '\'':
		return l.readCharLiteral()
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Literal: "", Line: l.line, Column: l.column}
	default:
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		if unicode.IsDigit(l.ch) {
			return l.readNumber()
		}
		tok = newToken(token.ILLEGAL, l.ch, l.line, l.column)
	}

	l.readChar()
	return tok
}

// Tokenize consumes the whole input and returns every token up to and
// including EOF.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar() // consume '/'
			l.readChar() // consume '*'
			for l.ch != 0 && !(l.ch == '*' && l.peekChar() == '/') {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar() // consume '*'
				l.readChar() // consume '/'
			}
			continue
		}
		return
	}
}

func (l *Lexer) readIdentifier() token.Token {
	startCol := l.column
	startLine := l.line
	position := l.position
	for isIdentStart(l.ch) || unicode.IsDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[position:l.position]
	return token.Token{
		Type:    token.LookupIdent(lexeme),
		Lexeme:  lexeme,
		Literal: lexeme,
		Line:    startLine,
		Column:  startCol,
	}
}

func (l *Lexer) readNumber() token.Token {
	startCol := l.column
	startLine := l.line
	position := l.position
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[position:l.position]
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: lexeme, Line: startLine, Column: startCol}
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: value, Line: startLine, Column: startCol}
}

func (l *Lexer) readCharLiteral() token.Token {
	startCol := l.column
	startLine := l.line
	l.readChar() // consume opening quote
	if l.ch == 0 || l.ch == '\'' {
		tok := token.Token{Type: token.ILLEGAL, Lexeme: "'", Literal: "'", Line: startLine, Column: startCol}
		l.readChar()
		return tok
	}
	value := l.ch
	if l.ch == '\\' {
		l.readChar()
		switch l.ch {
		case 'n':
			value = '\n'
		case 't':
			value = '\t'
		case '\\':
			value = '\\'
		case '\'':
			value = '\''
		case '0':
			value = 0
		default:
			value = l.ch
		}
	}
	l.readChar()
	if l.ch != '\'' {
		return token.Token{Type: token.ILLEGAL, Lexeme: string(value), Literal: string(value), Line: startLine, Column: startCol}
	}
	l.readChar() // consume closing quote
	return token.Token{Type: token.CHAR, Lexeme: "'" + string(value) + "'", Literal: value, Line: startLine, Column: startCol}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func newToken(tokenType token.TokenType, ch rune, line, column int) token.Token {
	return token.Token{Type: tokenType, Lexeme: string(ch), Literal: string(ch), Line: line, Column: column}
}
