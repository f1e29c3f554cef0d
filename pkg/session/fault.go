package session

import (
	"errors"
	"fmt"

	"minicalc/pkg/vm"
)

// FaultKind classifies the line-scoped failures a session can record.
type FaultKind string

const (
	FaultInvalidVariableName FaultKind = "invalid-variable-name"
	FaultMalformedAssignment FaultKind = "malformed-assignment"
	FaultUndefinedVariable   FaultKind = "undefined-variable"
	FaultDivisionByZero      FaultKind = "division-by-zero"
	FaultInvalidExpression   FaultKind = "invalid-expression"
)

// Fault is a line-scoped failure. Faults never abort a session: the
// driver records the message against the line and moves on.
type Fault struct {
	Kind    FaultKind
	Message string
}

func (f *Fault) Error() string { return f.Message }

func invalidVariableName(name string) *Fault {
	return &Fault{
		Kind:    FaultInvalidVariableName,
		Message: fmt.Sprintf("Invalid variable name %q", name),
	}
}

func malformedAssignment() *Fault {
	return &Fault{
		Kind:    FaultMalformedAssignment,
		Message: `Malformed assignment: more than one "="`,
	}
}

func undefinedVariable(name string) *Fault {
	return &Fault{
		Kind:    FaultUndefinedVariable,
		Message: fmt.Sprintf("Undefined variable %s", name),
	}
}

// evalFault maps an evaluator error onto a session fault.
func evalFault(err error) *Fault {
	var undefined *vm.UndefinedVariableError
	switch {
	case errors.Is(err, vm.ErrDivisionByZero):
		return &Fault{Kind: FaultDivisionByZero, Message: "Division by zero"}
	case errors.As(err, &undefined):
		return undefinedVariable(undefined.Name)
	default:
		return &Fault{Kind: FaultInvalidExpression, Message: "Invalid expression"}
	}
}
