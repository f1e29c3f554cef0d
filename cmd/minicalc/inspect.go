package main

import (
	"fmt"
	"os"
	"strings"

	"minicalc/pkg/lexer"
	"minicalc/pkg/token"
)

// printTokens dumps the token stream of every non-blank line, the
// debugging view of what the tokenizer actually saw.
func printTokens(path string) {
	input, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		fmt.Printf("Line %d: %s\n", i+1, line)
		for _, tok := range lexer.New(line).Tokens() {
			fmt.Printf("  %s\n", tok)
		}
	}
}

// inspectFile summarizes each line without evaluating anything:
// assignment target (if any) and the identifiers the expression
// references.
func inspectFile(path string) {
	input, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	assignments := 0
	expressions := 0

	for i, raw := range strings.Split(input, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		target := ""
		exprText := line
		if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
			target = strings.TrimSpace(parts[0])
			exprText = parts[1]
		}

		refs := referencedNames(exprText)
		if target != "" {
			assignments++
			fmt.Printf("Line %d: assigns %s", i+1, target)
		} else {
			expressions++
			fmt.Printf("Line %d: expression", i+1)
		}
		if len(refs) > 0 {
			fmt.Printf(" (reads %s)", strings.Join(refs, ", "))
		}
		fmt.Println()
	}

	fmt.Println()
	fmt.Printf("%d assignment(s), %d bare expression(s)\n", assignments, expressions)
}

// referencedNames returns the identifiers of an expression in first-use
// order, without duplicates.
func referencedNames(exprText string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, tok := range lexer.New(exprText).Tokens() {
		if tok.Type != token.IDENT || seen[tok.Literal] {
			continue
		}
		seen[tok.Literal] = true
		names = append(names, tok.Literal)
	}
	return names
}
