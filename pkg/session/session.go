package session

import (
	"fmt"
	"strings"

	"minicalc/pkg/compiler"
	"minicalc/pkg/lexer"
	"minicalc/pkg/token"
	"minicalc/pkg/vm"
)

// Session processes one multi-line program. It owns the variable store
// and the error accumulator for the whole run, threading them through
// every line in order. A session is single-threaded: line N may depend
// on bindings made by line N-1, so lines are never processed out of
// order or concurrently. Sessions are not reusable across runs.
type Session struct {
	env      *Environment
	outcomes []LineOutcome
	errors   []string
}

func New() *Session {
	return &Session{env: NewEnvironment()}
}

// Run processes every non-blank line of input with a fresh session and
// assembles the report. Lines keep their original 1-based numbering even
// when blank lines are skipped.
func Run(input string) *Report {
	s := New()
	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		s.ProcessLine(i+1, line)
	}
	return s.Report()
}

// ProcessLine runs one trimmed, non-blank line through the per-line
// state machine and records its outcome. The REPL shell calls this
// directly to keep one store alive across interactive lines.
func (s *Session) ProcessLine(number int, text string) LineOutcome {
	outcome := s.processLine(number, text)
	s.outcomes = append(s.outcomes, outcome)
	return outcome
}

// Report finalizes the session: the ordered outcomes, every assigned
// variable with its final value, and the accumulated error messages.
func (s *Session) Report() *Report {
	variables := make(map[string]int64, s.env.Len())
	for _, name := range s.env.Names() {
		value, _ := s.env.Get(name)
		variables[name] = value
	}
	return &Report{
		Outcomes:  s.outcomes,
		Variables: variables,
		Errors:    s.errors,
	}
}

func (s *Session) processLine(number int, text string) LineOutcome {
	outcome := LineOutcome{Number: number, Text: text}

	target := ""
	exprText := text
	if strings.Contains(text, "=") {
		parts := strings.Split(text, "=")
		if len(parts) != 2 {
			return s.fail(outcome, malformedAssignment())
		}
		target = strings.TrimSpace(parts[0])
		if !validName(target) {
			return s.fail(outcome, invalidVariableName(target))
		}
		exprText = parts[1]
	}

	tokens := lexer.New(exprText).Tokens()

	// Report unbound identifiers before conversion, so an undefined
	// variable surfaces even in expressions that would fail for other
	// reasons first.
	for _, tok := range tokens {
		if tok.Type == token.IDENT {
			if _, ok := s.env.Get(tok.Literal); !ok {
				return s.fail(outcome, undefinedVariable(tok.Literal))
			}
		}
	}

	outcome.Postfix = compiler.Compile(tokens)

	value, err := vm.Run(outcome.Postfix, s.env)
	if err != nil {
		return s.fail(outcome, evalFault(err))
	}

	outcome.Value = value
	if target != "" {
		s.env.Set(target, value)
		outcome.Variable = target
	}
	return outcome
}

// fail converts a fault into an error-flavored outcome and appends the
// line-prefixed message to the session accumulator. The outcome keeps
// whatever postfix was computed before the fault.
func (s *Session) fail(outcome LineOutcome, fault *Fault) LineOutcome {
	outcome.Err = fault
	s.errors = append(s.errors, fmt.Sprintf("Line %d: %s", outcome.Number, fault.Message))
	return outcome
}

// validName checks an assignment target: a letter followed by letters
// or digits, nothing else.
func validName(name string) bool {
	if name == "" || !isLetter(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isLetter(name[i]) && !isDigit(name[i]) {
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
