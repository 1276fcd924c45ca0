package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"math-equation/internal/mathml"
	"math-equation/internal/parser"
	"math-equation/internal/render"
)

// ---- ANSI colors ----

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// ---- repl command ----

func cmdRepl() {
	// Determine history file path (~/.matheq_history)
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".matheq_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            colorGreen + "matheq> " + colorReset,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	// Welcome banner
	fmt.Fprintf(rl.Stdout(), "%s%smatheq REPL%s %s(type 'exit' or Ctrl+D to quit)%s\n\n",
		colorBold, colorCyan, colorReset, colorGray, colorReset)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				// Show hint instead of exiting
				fmt.Fprintf(rl.Stdout(), "\n%s(use 'exit' or Ctrl+D to quit)%s\n", colorGray, colorReset)
				continue
			}
			// EOF (Ctrl+D) or other error → exit
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		source := strings.TrimSpace(line)
		if source == "" {
			continue
		}
		if source == "exit" {
			break
		}

		expr, perr := parser.Parse(source)
		if perr != nil {
			fmt.Fprintf(rl.Stderr(), "%s%s%s\n", colorRed, perr.Error(), colorReset)
			continue
		}

		fmt.Fprintf(rl.Stdout(), "%s=%s %s\n", colorGray, colorReset, render.DebugString(expr))
		fmt.Fprintf(rl.Stdout(), "%s#%s %s\n", colorGray, colorReset, mathml.Document(render.ToMathML(expr)))
	}
}
