package ast

import (
	"math-equation/internal/span"
)

// NodeToMap converts an AST node to a map suitable for JSON serialization.
// This produces a tagged-union structure: every node has a "kind" field.
func NodeToMap(node Node) map[string]interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *UnaryExpr:
		return m("UnaryExpr", n.Span,
			"op", n.Op.String(),
			"isPrefix", n.IsPrefix,
			"operand", NodeToMap(n.Operand))
	case *BinaryExpr:
		return m("BinaryExpr", n.Span,
			"op", n.Op.String(),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *GroupedExpr:
		return m("GroupedExpr", n.Span, "inner", NodeToMap(n.Inner))
	case *ArrayExpr:
		return m("ArrayExpr", n.Span, "elements", exprSlice(n.Elements))
	case *CallExpr:
		return m("CallExpr", n.Span,
			"name", n.Name,
			"args", exprSlice(n.Args))
	case *NumberLit:
		return m("NumberLit", n.Span, "value", n.Value)
	case *IdentExpr:
		return m("IdentExpr", n.Span, "name", n.Name)
	default:
		return map[string]interface{}{"kind": "Unknown"}
	}
}

// ---- helpers ----

// m builds a map with kind, span, and extra key-value pairs.
func m(kind string, s span.Span, kvs ...interface{}) map[string]interface{} {
	result := map[string]interface{}{
		"kind": kind,
		"span": spanToMap(s),
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]interface{} {
	return map[string]interface{}{
		"start": map[string]interface{}{
			"offset": s.Start.Offset,
			"line":   s.Start.Line,
			"column": s.Start.Column,
		},
		"end": map[string]interface{}{
			"offset": s.End.Offset,
			"line":   s.End.Line,
			"column": s.End.Column,
		},
	}
}

func exprSlice(exprs []Expr) []interface{} {
	result := make([]interface{}, len(exprs))
	for i, e := range exprs {
		result[i] = NodeToMap(e)
	}
	return result
}
