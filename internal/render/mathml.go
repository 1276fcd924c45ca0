package render

import (
	"strconv"

	"math-equation/internal/ast"
	"math-equation/internal/mathml"
)

// binaryGlyphs maps the binary operators whose display form differs
// from their source spelling. Operators not listed render verbatim.
var binaryGlyphs = map[ast.BinaryOp]string{
	ast.OpEq:  "≡", // ≡
	ast.OpNe:  "≠", // ≠
	ast.OpLe:  "≤", // ≤
	ast.OpGe:  "≥", // ≥
	ast.OpAnd: "∧", // ∧
	ast.OpOr:  "∨", // ∨
}

// ToMathML maps an expression to its presentation-markup tree. Division
// becomes a fraction and exponentiation a superscript; every other
// binary operator becomes a row of operand, glyph, operand. The mapping
// is total over well-formed trees.
func ToMathML(e ast.Expr) mathml.Node {
	switch n := e.(type) {
	case *ast.UnaryExpr:
		operand := ToMathML(n.Operand)
		glyph := &mathml.Op{Text: n.Op.String()}
		if n.IsPrefix {
			return &mathml.Row{Children: []mathml.Node{glyph, operand}}
		}
		return &mathml.Row{Children: []mathml.Node{operand, glyph}}
	case *ast.BinaryExpr:
		left := ToMathML(n.Left)
		right := ToMathML(n.Right)
		switch n.Op {
		case ast.OpDiv:
			return &mathml.Frac{Num: left, Den: right}
		case ast.OpPow:
			return &mathml.Sup{Base: left, Exp: right}
		}
		glyph := n.Op.String()
		if g, ok := binaryGlyphs[n.Op]; ok {
			glyph = g
		}
		return &mathml.Row{Children: []mathml.Node{left, &mathml.Op{Text: glyph}, right}}
	case *ast.GroupedExpr:
		// Grouping only affects tree shape; the markup delegates to
		// the inner expression.
		return ToMathML(n.Inner)
	case *ast.ArrayExpr:
		children := []mathml.Node{&mathml.Op{Text: "["}}
		for i, elem := range n.Elements {
			if i > 0 {
				children = append(children, &mathml.Op{Text: ","})
			}
			children = append(children, ToMathML(elem))
		}
		children = append(children, &mathml.Op{Text: "]"})
		return &mathml.Row{Children: children}
	case *ast.CallExpr:
		children := []mathml.Node{
			&mathml.Ident{Text: n.Name},
			&mathml.Op{Text: "("},
		}
		for i, arg := range n.Args {
			if i > 0 {
				children = append(children, &mathml.Op{Text: ","})
			}
			children = append(children, ToMathML(arg))
		}
		children = append(children, &mathml.Op{Text: ")"})
		return &mathml.Row{Children: children}
	case *ast.NumberLit:
		return &mathml.Num{Text: strconv.FormatInt(n.Value, 10)}
	case *ast.IdentExpr:
		return &mathml.Ident{Text: n.Name}
	default:
		return &mathml.Row{}
	}
}
