package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"minicalc/pkg/session"
	"minicalc/pkg/version"
)

const PROMPT = ">>> "

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	command := os.Args[1]

	// Handle flags
	switch command {
	case "--version", "-v":
		printVersion()
		return
	case "--help", "-h":
		printHelp()
		return
	}

	// A bare program path runs directly, like the .txt files the
	// original shell loaded.
	if strings.HasSuffix(command, ".txt") || strings.HasSuffix(command, ".in") || command == "-" {
		runInput(command)
		return
	}

	switch command {
	case "repl":
		startREPL()
	case "run":
		if len(os.Args) < 3 {
			fmt.Println("Usage: minicalc run <file>")
			os.Exit(1)
		}
		runInput(os.Args[2])
	case "eval":
		if len(os.Args) < 3 {
			fmt.Println("Usage: minicalc eval '<code>'")
			os.Exit(1)
		}
		runProgram(os.Args[2])
	case "tokens":
		if len(os.Args) < 3 {
			fmt.Println("Usage: minicalc tokens <file>")
			os.Exit(1)
		}
		printTokens(os.Args[2])
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Println("Usage: minicalc inspect <file>")
			os.Exit(1)
		}
		inspectFile(os.Args[2])
	case "serve":
		startServer()
	case "version":
		printVersion()
	case "help":
		printHelp()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printHelp()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("minicalc v" + version.Version)
	fmt.Println("\nUsage:")
	fmt.Println("  minicalc <file.txt|file.in>   Run a program file")
	fmt.Println("  minicalc repl                 Start interactive REPL")
	fmt.Println("  minicalc run <file>           Run a program file (explicit, '-' for stdin)")
	fmt.Println("  minicalc eval '<code>'        Run the argument as a program")
	fmt.Println("  minicalc serve                Start the web playground")
	fmt.Println("  minicalc version              Show version information")
	fmt.Println("  minicalc help                 Show this help message")
}

// runInput reads the program text (file path or "-" for stdin) and runs
// one session over it. Line-level errors are part of the report, not
// process failures; only unreadable or empty input exits non-zero.
func runInput(path string) {
	input, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	runProgram(input)
}

func runProgram(input string) {
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(os.Stderr, "Error: no input to process")
		os.Exit(1)
	}
	report := session.Run(input)
	renderReport(os.Stdout, report)
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func startREPL() {
	scanner := bufio.NewScanner(os.Stdin)
	s := session.New()

	fmt.Println("minicalc REPL v" + version.Version)
	fmt.Println("Type lines like \"x = 1 + 2\" or \"x * 3\" and press Enter")

	number := 0
	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			fmt.Println()
			renderSummary(os.Stdout, s.Report())
			return
		}

		line := strings.TrimSpace(scanner.Text())
		number++
		if line == "" {
			continue
		}

		outcome := s.ProcessLine(number, line)
		renderOutcome(os.Stdout, outcome)
	}
}

func printVersion() {
	fmt.Printf("minicalc %s\n", version.Version)
	fmt.Printf("Build Date: %s\n", version.BuildDate)
	fmt.Printf("Git Commit: %s\n", version.GitCommit)
}

func printHelp() {
	fmt.Println("minicalc — line-oriented expression interpreter")
	fmt.Println()
	fmt.Println("Each input line is either an assignment (x = 2 + 3) or a bare")
	fmt.Println("expression over integers, variables, + - * / % and parentheses.")
	fmt.Println("The report shows every line's postfix form and result, then the")
	fmt.Println("variables assigned and the errors found.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  minicalc <file.txt|file.in>  Run a program file (shortcut for 'minicalc run')")
	fmt.Println("  minicalc run <file>          Execute a program ('-' reads stdin)")
	fmt.Println("  minicalc repl                Start the interactive REPL")
	fmt.Println("  minicalc eval '<code>'       Run the argument as a program")
	fmt.Println("  minicalc tokens <file>       Dump the token stream per line")
	fmt.Println("  minicalc inspect <file>      Summarize assignments and references")
	fmt.Println("  minicalc serve               Start the web playground")
	fmt.Println("  minicalc version             Display build metadata")
	fmt.Println("  minicalc help                Show this help message")
	fmt.Println()
	fmt.Println("Global flags:")
	fmt.Println("  --help, -h                   Show help")
	fmt.Println("  --version, -v                Show version")
}
