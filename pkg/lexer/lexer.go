package lexer

import "minicalc/pkg/token"

// Lexer scans one expression string left to right. It recognizes integer
// literals, identifiers, the five arithmetic operators and parentheses;
// every other byte, whitespace included, is skipped rather than rejected.
type Lexer struct {
	input        string
	position     int // current position in input (points to current char)
	readPosition int // current reading position in input (after current char)
	ch           byte
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
}

func (l *Lexer) NextToken() token.Token {
	// Skip everything the grammar has no token for.
	for l.ch != 0 && !isLetter(l.ch) && !isDigit(l.ch) && !isSymbol(l.ch) {
		l.readChar()
	}

	var tok token.Token

	switch l.ch {
	case '+':
		tok = newToken(token.PLUS, l.ch)
	case '-':
		tok = newToken(token.MINUS, l.ch)
	case '*':
		tok = newToken(token.ASTERISK, l.ch)
	case '/':
		tok = newToken(token.SLASH, l.ch)
	case '%':
		tok = newToken(token.PERCENT, l.ch)
	case '(':
		tok = newToken(token.LPAREN, l.ch)
	case ')':
		tok = newToken(token.RPAREN, l.ch)
	case 0:
		tok.Literal = ""
		tok.Type = token.EOF
	default:
		if isLetter(l.ch) {
			tok.Type = token.IDENT
			tok.Literal = l.readIdentifier()
			return tok
		}
		tok.Type = token.NUMBER
		tok.Literal = l.readNumber()
		return tok
	}

	l.readChar()
	return tok
}

// Tokens scans the remaining input to the end. An empty or all-noise
// input yields an empty slice; the line processor decides whether that
// is an error.
func (l *Lexer) Tokens() []token.Token {
	var tokens []token.Token
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}

func newToken(tokenType token.TokenType, ch byte) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSymbol(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '(', ')':
		return true
	}
	return false
}
