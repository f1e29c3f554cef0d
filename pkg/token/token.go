package token

import "fmt"

type TokenType string

const (
	// Special
	EOF = "EOF"

	// Literals
	NUMBER = "NUMBER"
	IDENT  = "IDENT"

	// Operators
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"

	// Delimiters
	LPAREN = "("
	RPAREN = ")"
)

type Token struct {
	Type    TokenType
	Literal string
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q)", t.Type, t.Literal)
}

var precedences = map[TokenType]int{
	PLUS:     1,
	MINUS:    1,
	ASTERISK: 2,
	SLASH:    2,
	PERCENT:  2,
}

// Precedence returns the binding strength used during infix-to-postfix
// conversion. Tokens that are not arithmetic operators bind at 0, which
// keeps parentheses below every operator on the conversion stack.
func Precedence(t TokenType) int {
	return precedences[t]
}

// IsOperator reports whether t is one of the five arithmetic operators.
func IsOperator(t TokenType) bool {
	_, ok := precedences[t]
	return ok
}
