package lexer

import (
	"minicalc/pkg/token"
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `(num1 + 25) * 3 - 4 / 2 % x`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LPAREN, "("},
		{token.IDENT, "num1"},
		{token.PLUS, "+"},
		{token.NUMBER, "25"},
		{token.RPAREN, ")"},
		{token.ASTERISK, "*"},
		{token.NUMBER, "3"},
		{token.MINUS, "-"},
		{token.NUMBER, "4"},
		{token.SLASH, "/"},
		{token.NUMBER, "2"},
		{token.PERCENT, "%"},
		{token.IDENT, "x"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q, literal=%q",
				i, tt.expectedType, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestUnknownCharactersAreSkipped(t *testing.T) {
	input := "2 @,$ + _? 3!"

	tokens := New(input).Tokens()

	expected := []token.Token{
		{Type: token.NUMBER, Literal: "2"},
		{Type: token.PLUS, Literal: "+"},
		{Type: token.NUMBER, Literal: "3"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("wrong token count. expected=%d, got=%d (%v)", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i] != want {
			t.Fatalf("tokens[%d] wrong. expected=%v, got=%v", i, want, tokens[i])
		}
	}
}

func TestIdentifierRuns(t *testing.T) {
	// A letter followed by letters or digits is one identifier, so x1
	// must not split into x and 1.
	tokens := New("x1 + y2z").Tokens()

	expected := []token.Token{
		{Type: token.IDENT, Literal: "x1"},
		{Type: token.PLUS, Literal: "+"},
		{Type: token.IDENT, Literal: "y2z"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("wrong token count. expected=%d, got=%d (%v)", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i] != want {
			t.Fatalf("tokens[%d] wrong. expected=%v, got=%v", i, want, tokens[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	if tokens := New("").Tokens(); len(tokens) != 0 {
		t.Fatalf("expected no tokens for empty input, got %v", tokens)
	}
	if tokens := New(" \t ?? ").Tokens(); len(tokens) != 0 {
		t.Fatalf("expected no tokens for all-noise input, got %v", tokens)
	}
}
