package compiler

import (
	"testing"

	"minicalc/pkg/lexer"
)

type compilerTestCase struct {
	input    string
	expected string
}

func TestPrecedence(t *testing.T) {
	tests := []compilerTestCase{
		{"2 + 3 * 4", "2 3 4 * +"},
		{"2 * 3 + 4", "2 3 * 4 +"},
		{"10 % 3 * 2", "10 3 % 2 *"},
		{"a + b - c", "a b + c -"},
		{"8 / 4 / 2", "8 4 / 2 /"},
		{"1 + 2 + 3", "1 2 + 3 +"},
	}

	runCompilerTests(t, tests)
}

func TestParentheses(t *testing.T) {
	tests := []compilerTestCase{
		{"(2 + 3) * 4", "2 3 + 4 *"},
		{"2 * (3 + 4)", "2 3 4 + *"},
		{"((1 + 2))", "1 2 +"},
		{"(a) % (b)", "a b %"},
	}

	runCompilerTests(t, tests)
}

func TestUnbalancedParentheses(t *testing.T) {
	// The converter stays permissive: a stray ")" pops whatever
	// operators exist and nothing more, and an unclosed "(" is flushed
	// into the output with the rest of the stack. The evaluator is the
	// one that rejects the result.
	tests := []compilerTestCase{
		{"2 + 3)", "2 3 +"},
		{"(2 + 3", "2 3 + ("},
		{")", ""},
		{"", ""},
	}

	runCompilerTests(t, tests)
}

func runCompilerTests(t *testing.T, tests []compilerTestCase) {
	t.Helper()

	for _, tt := range tests {
		program := Compile(lexer.New(tt.input).Tokens())

		if got := program.String(); got != tt.expected {
			t.Fatalf("wrong postfix for %q. want=%q, got=%q", tt.input, tt.expected, got)
		}
	}
}
