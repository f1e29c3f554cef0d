package vm

import (
	"errors"
	"fmt"
	"strconv"

	"minicalc/pkg/postfix"
	"minicalc/pkg/token"
)

// Bindings is the evaluator's read-only view of the variable store.
type Bindings interface {
	Get(name string) (int64, bool)
}

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInvalidExpression = errors.New("invalid expression")
)

// UndefinedVariableError reports an identifier with no binding. The line
// processor pre-scans for unbound identifiers before evaluation, so the
// vm only returns one when it is driven directly.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %s", e.Name)
}

const StackSize = 256

// Run evaluates a postfix program against the given bindings and returns
// the single value left on the operand stack. Operators pop their right
// operand first, then their left. A stack holding anything other than
// exactly one value at the end is an invalid expression.
func Run(program postfix.Program, env Bindings) (int64, error) {
	stack := make([]int64, 0, StackSize)

	for _, tok := range program {
		switch {
		case tok.Type == token.NUMBER:
			value, err := strconv.ParseInt(tok.Literal, 10, 64)
			if err != nil {
				return 0, ErrInvalidExpression
			}
			stack = append(stack, value)

		case tok.Type == token.IDENT:
			value, ok := env.Get(tok.Literal)
			if !ok {
				return 0, &UndefinedVariableError{Name: tok.Literal}
			}
			stack = append(stack, value)

		case token.IsOperator(tok.Type):
			if len(stack) < 2 {
				return 0, ErrInvalidExpression
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			value, err := apply(a, b, tok.Type)
			if err != nil {
				return 0, err
			}
			stack = append(stack, value)

		default:
			// A stray parenthesis flushed out of the converter.
			return 0, ErrInvalidExpression
		}
	}

	if len(stack) != 1 {
		return 0, ErrInvalidExpression
	}
	return stack[0], nil
}

func apply(a, b int64, op token.TokenType) (int64, error) {
	switch op {
	case token.PLUS:
		return a + b, nil
	case token.MINUS:
		return a - b, nil
	case token.ASTERISK:
		return a * b, nil
	case token.SLASH:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case token.PERCENT:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a % b, nil
	}
	return 0, ErrInvalidExpression
}
