package expr

// Lexer splits a formula into tokens. It never fails: unknown characters are
// returned as ILLEGAL tokens and reported by the parser.
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token, or EOF once the input is exhausted.
func (l *Lexer) Next() Token {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Type: EOF, Pos: l.pos, End: l.pos}
	}
	start := l.pos
	ch := l.input[l.pos]
	switch {
	case ch == '*':
		if l.peekByte(1) == '*' {
			l.pos += 2
			return l.token(POW, start)
		}
		l.pos++
		return l.token(ASTERISK, start)
	case ch == '+':
		l.pos++
		return l.token(PLUS, start)
	case ch == '-':
		l.pos++
		return l.token(MINUS, start)
	case ch == '/':
		l.pos++
		return l.token(SLASH, start)
	case ch == '^':
		l.pos++
		return l.token(CARET, start)
	case ch == '(':
		l.pos++
		return l.token(LPAREN, start)
	case ch == ')':
		l.pos++
		return l.token(RPAREN, start)
	case isDigit(ch) || (ch == '.' && isDigit(l.peekByte(1))):
		l.readNumber()
		return l.token(NUMBER, start)
	case isLetter(ch):
		for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
			l.pos++
		}
		return l.token(IDENT, start)
	}
	l.pos++

	return l.token(ILLEGAL, start)
}

// Tokens lexes the whole input, EOF included.
func (l *Lexer) Tokens() []Token {
	var out []Token
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok.Type == EOF {
			return out
		}
	}
}

func (l *Lexer) token(t TokenType, start int) Token {
	return Token{Type: t, Literal: l.input[start:l.pos], Pos: start, End: l.pos}
}

// readNumber consumes digits, an optional fraction and an optional exponent.
// An 'e' not followed by digits is left for the parser to reject.
func (l *Lexer) readNumber() {
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.input) && (l.input[l.pos] == 'e' || l.input[l.pos] == 'E') {
		off := 1
		if c := l.peekByte(1); c == '+' || c == '-' {
			off = 2
		}
		if isDigit(l.peekByte(off)) {
			l.pos += off
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
		}
	}
}

func (l *Lexer) peekByte(off int) byte {
	if l.pos+off >= len(l.input) {
		return 0
	}

	return l.input[l.pos+off]
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}
