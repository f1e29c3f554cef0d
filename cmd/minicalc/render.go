package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"minicalc/pkg/session"
)

const divider = "-------------------------------------------"

var (
	resultColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
	headerColor = color.New(color.FgCyan)
)

// renderReport is the terminal-facing twin of Report.Render: the same
// layout, with results and errors accented for quick scanning.
func renderReport(w io.Writer, report *session.Report) {
	for _, outcome := range report.Outcomes {
		renderOutcome(w, outcome)
	}
	renderSummary(w, report)
}

func renderOutcome(w io.Writer, outcome session.LineOutcome) {
	fmt.Fprintf(w, "Line %d: %s\n", outcome.Number, outcome.Text)
	fmt.Fprintf(w, "Postfix: %s\n", outcome.Postfix.String())
	if outcome.Err != nil {
		errorColor.Fprintf(w, "Result: Error: %s\n", outcome.Err.Message)
	} else {
		resultColor.Fprintf(w, "Result: %d\n", outcome.Value)
	}
	fmt.Fprintln(w)
}

func renderSummary(w io.Writer, report *session.Report) {
	fmt.Fprintln(w, divider)
	headerColor.Fprintln(w, "Variables used:")
	if len(report.Variables) == 0 {
		fmt.Fprintln(w, "No variables were used")
	} else {
		names := make([]string, 0, len(report.Variables))
		for name := range report.Variables {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s = %d\n", name, report.Variables[name])
		}
	}

	fmt.Fprintln(w, divider)
	headerColor.Fprintln(w, "Errors found:")
	if len(report.Errors) == 0 {
		fmt.Fprintln(w, "No errors detected")
	} else {
		for _, message := range report.Errors {
			errorColor.Fprintln(w, message)
		}
	}
}
