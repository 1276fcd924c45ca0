// Command matheq is the CLI entry point for the math-equation parser.
//
// Usage:
//
//	matheq expr   <expression>     Parse and print the canonical form
//	matheq ast    <expression>     Parse and print the AST as JSON
//	matheq mathml <expression>     Parse and print MathML markup
//	matheq repl                    Start interactive REPL
//
// Each parsing command also accepts -f <file> to read the expression
// from a file instead of the command line.
package main

import (
	"fmt"
	"os"

	"math-equation/internal/ast"
	"math-equation/internal/mathml"
	"math-equation/internal/parser"
	"math-equation/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "expr":
		cmdExpr(sourceArg())
	case "ast":
		cmdAST(sourceArg())
	case "mathml":
		cmdMathML(sourceArg())
	case "repl":
		cmdRepl()
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command '%s'\n", command)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  matheq expr   <expression>   Parse and print the canonical form")
	fmt.Fprintln(os.Stderr, "  matheq ast    <expression>   Parse and print the AST (JSON)")
	fmt.Fprintln(os.Stderr, "  matheq mathml <expression>   Parse and print MathML markup")
	fmt.Fprintln(os.Stderr, "  matheq repl                  Start interactive REPL")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Use -f <file> to read the expression from a file.")
}

// sourceArg resolves the expression text for a parsing command, either
// inline or via -f <file>.
func sourceArg() string {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "error: missing expression argument")
		os.Exit(1)
	}
	if os.Args[2] == "-f" {
		if len(os.Args) < 4 {
			fmt.Fprintln(os.Stderr, "error: -f requires a file argument")
			os.Exit(1)
		}
		return readFile(os.Args[3])
	}
	return os.Args[2]
}

func readFile(filename string) string {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read file %s: %v\n", filename, err)
		os.Exit(1)
	}
	return string(source)
}

// parseOrExit parses source, printing the diagnostic and exiting on
// failure.
func parseOrExit(source string) ast.Expr {
	expr, err := parser.Parse(source)
	if err != nil {
		printDiag(os.Stderr, err)
		os.Exit(1)
	}
	return expr
}

// ---- expr command ----

func cmdExpr(source string) {
	expr := parseOrExit(source)
	fmt.Println(render.DebugString(expr))
}

// ---- ast command ----

func cmdAST(source string) {
	expr := parseOrExit(source)
	printJSON(map[string]interface{}{
		"ast": ast.NodeToMap(expr),
	})
}

// ---- mathml command ----

func cmdMathML(source string) {
	expr := parseOrExit(source)
	fmt.Println(mathml.Document(render.ToMathML(expr)))
}
