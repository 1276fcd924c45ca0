// Package render implements the two read-only AST traversals: the
// canonical debug string and the presentation-markup tree. Both are
// pure functions of the tree shape; spans are ignored.
package render

import (
	"strconv"
	"strings"

	"math-equation/internal/ast"
)

// DebugString renders an expression in its canonical structural form:
// binExp(left, op, right) for binary expressions, unExp(op, x) for
// prefix and unExp(x, op) for postfix unary expressions. Grouping
// parentheses are not reproduced; structure alone disambiguates.
func DebugString(e ast.Expr) string {
	var b strings.Builder
	writeDebug(&b, e)
	return b.String()
}

func writeDebug(b *strings.Builder, e ast.Expr) {
	switch n := e.(type) {
	case *ast.UnaryExpr:
		b.WriteString("unExp(")
		if n.IsPrefix {
			b.WriteString(n.Op.String())
			b.WriteString(", ")
			writeDebug(b, n.Operand)
		} else {
			writeDebug(b, n.Operand)
			b.WriteString(", ")
			b.WriteString(n.Op.String())
		}
		b.WriteString(")")
	case *ast.BinaryExpr:
		b.WriteString("binExp(")
		writeDebug(b, n.Left)
		b.WriteString(", ")
		b.WriteString(n.Op.String())
		b.WriteString(", ")
		writeDebug(b, n.Right)
		b.WriteString(")")
	case *ast.GroupedExpr:
		writeDebug(b, n.Inner)
	case *ast.ArrayExpr:
		b.WriteString("[")
		for i, elem := range n.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDebug(b, elem)
		}
		b.WriteString("]")
	case *ast.CallExpr:
		b.WriteString(n.Name)
		b.WriteString("(")
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDebug(b, arg)
		}
		b.WriteString(")")
	case *ast.NumberLit:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *ast.IdentExpr:
		b.WriteString(n.Name)
	}
}
