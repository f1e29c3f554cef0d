package vm

import (
	"errors"
	"testing"

	"minicalc/pkg/compiler"
	"minicalc/pkg/lexer"
)

type testBindings map[string]int64

func (b testBindings) Get(name string) (int64, bool) {
	value, ok := b[name]
	return value, ok
}

type vmTestCase struct {
	input    string
	expected int64
}

func TestIntegerArithmetic(t *testing.T) {
	tests := []vmTestCase{
		{"1 + 2", 3},
		{"5 - 2", 3},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"100 - 2 * 30", 40},
		{"7 / 2", 3},
		{"8 / 4 / 2", 1},
		{"10 % 3", 1},
		{"10 - 2 - 3", 5},
	}

	runVmTests(t, tests, testBindings{})
}

func TestVariables(t *testing.T) {
	env := testBindings{"x": 5, "y1": 7}

	tests := []vmTestCase{
		{"x + 1", 6},
		{"x * y1", 35},
		{"y1 % x", 2},
		{"(x + y1) / 2", 6},
	}

	runVmTests(t, tests, env)
}

func runVmTests(t *testing.T, tests []vmTestCase, env Bindings) {
	t.Helper()

	for _, tt := range tests {
		program := compiler.Compile(lexer.New(tt.input).Tokens())

		value, err := Run(program, env)
		if err != nil {
			t.Fatalf("vm error for %q: %s", tt.input, err)
		}
		if value != tt.expected {
			t.Fatalf("wrong result for %q. want=%d, got=%d", tt.input, tt.expected, value)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	inputs := []string{"4 / 0", "4 % 0", "1 + 2 / (3 - 3)"}

	for _, input := range inputs {
		program := compiler.Compile(lexer.New(input).Tokens())

		if _, err := Run(program, testBindings{}); !errors.Is(err, ErrDivisionByZero) {
			t.Fatalf("expected division-by-zero fault for %q, got %v", input, err)
		}
	}
}

func TestInvalidExpressions(t *testing.T) {
	// Operator with missing operands, leftover operands, empty input,
	// and a stray parenthesis flushed through the converter.
	inputs := []string{"+", "1 +", "2 3", "", "(1 + 2"}

	for _, input := range inputs {
		program := compiler.Compile(lexer.New(input).Tokens())

		if _, err := Run(program, testBindings{}); !errors.Is(err, ErrInvalidExpression) {
			t.Fatalf("expected invalid-expression fault for %q, got %v", input, err)
		}
	}
}

func TestUndefinedVariable(t *testing.T) {
	program := compiler.Compile(lexer.New("z + 1").Tokens())

	_, err := Run(program, testBindings{})

	var undefined *UndefinedVariableError
	if !errors.As(err, &undefined) {
		t.Fatalf("expected UndefinedVariableError, got %v", err)
	}
	if undefined.Name != "z" {
		t.Fatalf("wrong variable name. want=%q, got=%q", "z", undefined.Name)
	}
}
