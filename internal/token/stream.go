package token

// Stream is a buffered token stream with arbitrary lookahead.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Next returns the next token and advances. Once the underlying slice is
// exhausted it keeps returning the final EOF token.
func (s *Stream) Next() Token {
	tok := s.at(s.pos)
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return tok
}

// Peek returns up to n upcoming tokens without advancing.
func (s *Stream) Peek(n int) []Token {
	out := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.at(s.pos+i))
	}
	return out
}

func (s *Stream) at(i int) Token {
	if i >= len(s.tokens) {
		if len(s.tokens) == 0 {
			return Token{Type: EOF}
		}
		return s.tokens[len(s.tokens)-1]
	}
	return s.tokens[i]
}
