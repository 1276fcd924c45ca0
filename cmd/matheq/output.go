package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"math-equation/internal/diag"
)

// ---- output helpers ----

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: JSON encoding failed: %v\n", err)
		os.Exit(1)
	}
}

// printDiag prints a parse failure, using the diagnostic's formatted
// position when available.
func printDiag(w io.Writer, err error) {
	var d *diag.Diagnostic
	if errors.As(err, &d) {
		fmt.Fprintln(w, d.String())
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
