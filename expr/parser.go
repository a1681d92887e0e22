package expr

import (
	"fmt"
	"strconv"
)

// Precedence order for operators
const (
	_ int = iota
	LOWEST
	SUM     // + or -
	PRODUCT // * or /
	PREFIX  // -X or +X
	POWER   // ** or ^
)

var precedences = map[TokenType]int{
	PLUS:     SUM,
	MINUS:    SUM,
	ASTERISK: PRODUCT,
	SLASH:    PRODUCT,
	POW:      POWER,
	CARET:    POWER,
}

// MaxDepth bounds nesting so hostile input cannot exhaust the stack.
const MaxDepth = 500

type (
	prefixParseFn func() (Node, error)
	infixParseFn  func(Node) (Node, error)
)

// Parser builds an AST for a single formula. A Parser is used once.
type Parser struct {
	formula string
	tokens  []Token
	pos     int
	vars    map[string]int
	depth   int

	prefixParseFns map[TokenType]prefixParseFn
	infixParseFns  map[TokenType]infixParseFn
}

// NewParser prepares a parser for formula over the declared variables.
func NewParser(formula string, vars []string) *Parser {
	p := &Parser{
		formula: formula,
		tokens:  NewLexer(formula).Tokens(),
		vars:    make(map[string]int, len(vars)),
	}
	for i, v := range vars {
		p.vars[v] = i
	}
	p.prefixParseFns = map[TokenType]prefixParseFn{
		NUMBER: p.parseNumber,
		IDENT:  p.parseVariable,
		MINUS:  p.parseUnary,
		PLUS:   p.parseUnary,
		LPAREN: p.parseParen,
	}
	p.infixParseFns = map[TokenType]infixParseFn{
		PLUS:     p.parseBinary,
		MINUS:    p.parseBinary,
		ASTERISK: p.parseBinary,
		SLASH:    p.parseBinary,
		POW:      p.parseBinary,
		CARET:    p.parseBinary,
	}

	return p
}

// Parse returns the AST of the whole formula.
func (p *Parser) Parse() (Node, error) {
	if p.cur().Type == EOF {
		return nil, p.errorf(p.cur(), ErrSyntax, "empty formula")
	}
	n, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.next()
	if tok := p.cur(); tok.Type != EOF {
		return nil, p.errorf(tok, ErrSyntax, "unexpected %q", tok.Literal)
	}

	return n, nil
}

// Tokens returns the lexed token stream, EOF included.
func (p *Parser) Tokens() []Token { return p.tokens }

func (p *Parser) cur() Token { return p.tokens[p.pos] }

func (p *Parser) peek() Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}

	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) next() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek().Type]; ok {
		return prec
	}

	return LOWEST
}

// parseExpression is the Pratt loop: the current token starts an operand.
func (p *Parser) parseExpression(precedence int) (Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxDepth {
		return nil, p.errorf(p.cur(), ErrTooDeep, "nesting deeper than %d", MaxDepth)
	}

	tok := p.cur()
	prefix, ok := p.prefixParseFns[tok.Type]
	if !ok {
		if tok.Type == EOF {
			return nil, p.errorf(tok, ErrSyntax, "unexpected end of formula")
		}
		return nil, p.errorf(tok, ErrSyntax, "unexpected %q", tok.Literal)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}
	for p.peek().Type != EOF && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek().Type]
		if !ok {
			return left, nil
		}
		p.next()
		if left, err = infix(left); err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseNumber() (Node, error) {
	tok := p.cur()
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, p.errorf(tok, ErrSyntax, "invalid number %q", tok.Literal)
	}

	return &Number{Value: v, Literal: tok.Literal}, nil
}

func (p *Parser) parseVariable() (Node, error) {
	tok := p.cur()
	idx, ok := p.vars[tok.Literal]
	if !ok {
		return nil, p.errorf(tok, ErrUnknownVariable, "unknown variable %q", tok.Literal)
	}

	return &Variable{Name: tok.Literal, Index: idx}, nil
}

func (p *Parser) parseUnary() (Node, error) {
	op := p.cur().Literal
	p.next()
	x, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}

	return &Unary{Op: op, X: x}, nil
}

func (p *Parser) parseParen() (Node, error) {
	open := p.cur()
	p.next()
	x, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.peek().Type != RPAREN {
		return nil, p.errorf(open, ErrSyntax, "unclosed parenthesis")
	}
	p.next()

	return &Paren{X: x}, nil
}

func (p *Parser) parseBinary(left Node) (Node, error) {
	tok := p.cur()
	precedence := precedences[tok.Type]
	op := string(tok.Type)
	if tok.Type == CARET {
		op = string(POW)
	}
	// Exponentiation is right-associative.
	if precedence == POWER {
		precedence--
	}
	p.next()
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}

	return &Binary{Op: op, Lit: tok.Literal, L: left, R: right}, nil
}

func (p *Parser) errorf(tok Token, kind error, format string, args ...any) error {
	return &SyntaxError{
		Formula: p.formula,
		Pos:     tok.Pos,
		Msg:     fmt.Sprintf(format, args...),
		Err:     kind,
	}
}
