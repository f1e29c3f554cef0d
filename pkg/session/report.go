package session

import (
	"fmt"
	"io"
	"sort"

	"minicalc/pkg/postfix"
)

// LineOutcome records how one non-blank input line fared. Error outcomes
// carry the postfix computed before the fault, which is empty when
// tokenization never ran.
type LineOutcome struct {
	Number   int    // 1-based position in the input
	Text     string // the line as entered, trimmed
	Variable string // assignment target on success, "" otherwise
	Postfix  postfix.Program
	Value    int64
	Err      *Fault
}

// Report is the finalized result of one session run.
type Report struct {
	Outcomes  []LineOutcome
	Variables map[string]int64 // final value of every assigned variable
	Errors    []string         // "Line <n>: <message>", in line order
}

const divider = "-------------------------------------------"

// Render writes the conventional text form of the report: a block per
// line outcome, then the variable listing, then the error listing.
// Rendering the same report twice produces identical bytes.
func (r *Report) Render(w io.Writer) {
	for _, outcome := range r.Outcomes {
		fmt.Fprintf(w, "Line %d: %s\n", outcome.Number, outcome.Text)
		fmt.Fprintf(w, "Postfix: %s\n", outcome.Postfix.String())
		if outcome.Err != nil {
			fmt.Fprintf(w, "Result: Error: %s\n\n", outcome.Err.Message)
		} else {
			fmt.Fprintf(w, "Result: %d\n\n", outcome.Value)
		}
	}

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "Variables used:")
	if len(r.Variables) == 0 {
		fmt.Fprintln(w, "No variables were used")
	} else {
		names := make([]string, 0, len(r.Variables))
		for name := range r.Variables {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s = %d\n", name, r.Variables[name])
		}
	}

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "Errors found:")
	if len(r.Errors) == 0 {
		fmt.Fprintln(w, "No errors detected")
	} else {
		for _, message := range r.Errors {
			fmt.Fprintln(w, message)
		}
	}
}
