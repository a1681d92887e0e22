package expr

// TokenType describes the type of a token as a string.
type TokenType string

// Token types
const (
	ILLEGAL  TokenType = "ILLEGAL"
	EOF      TokenType = "EOF"
	NUMBER   TokenType = "NUMBER"
	IDENT    TokenType = "IDENT"
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	POW      TokenType = "**"
	CARET    TokenType = "^"
	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
)

// Token represents one token lexed from a formula. Pos and End are byte
// offsets into the formula (End exclusive).
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
	End     int
}
