// Package ast defines the abstract syntax tree for math expressions.
package ast

import (
	"math-equation/internal/span"
)

// ============================================================
// Node interfaces
// ============================================================

// Node is the interface implemented by all AST nodes.
type Node interface {
	nodeNode()
	GetSpan() span.Span
}

// Expr is the closed interface for expression nodes. Exactly one of
// UnaryExpr, BinaryExpr, or a Primary variant implements it.
type Expr interface {
	Node
	exprNode()
}

// Primary is the interface for primary-expression nodes: grouped
// expressions, arrays, function calls, number literals, and identifiers.
type Primary interface {
	Expr
	primaryNode()
}

// ============================================================
// Base types (embedded to provide common fields)
// ============================================================

// NodeBase provides the common Span field for all AST nodes.
type NodeBase struct {
	Span span.Span
}

func (n NodeBase) nodeNode()          {}
func (n NodeBase) GetSpan() span.Span { return n.Span }

// ExprBase is embedded by all expression nodes.
type ExprBase struct{ NodeBase }

func (ExprBase) exprNode() {}

// PrimaryBase is embedded by all primary-expression nodes.
type PrimaryBase struct{ ExprBase }

func (PrimaryBase) primaryNode() {}

// ============================================================
// Operators
// ============================================================

// UnaryOp identifies a unary operator.
type UnaryOp int

const (
	OpNot UnaryOp = iota // !
	OpNeg                // -
	OpInc                // ++
	OpDec                // --
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpNeg:
		return "-"
	case OpInc:
		return "++"
	case OpDec:
		return "--"
	default:
		return "?"
	}
}

// BinaryOp identifies a binary operator.
type BinaryOp int

const (
	OpAdd    BinaryOp = iota // +
	OpSub                    // -
	OpMul                    // *
	OpDiv                    // /
	OpPow                    // ^
	OpEq                     // ==
	OpAssign                 // =
	OpNe                     // !=
	OpLe                     // <=
	OpGe                     // >=
	OpLt                     // <
	OpGt                     // >
	OpAnd                    // &&
	OpOr                     // ||
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpEq:
		return "=="
	case OpAssign:
		return "="
	case OpNe:
		return "!="
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "?"
	}
}

// ============================================================
// Expressions
// ============================================================

// UnaryExpr represents a unary operation: !x, -x, x++.
// IsPrefix distinguishes !x (prefix) from x++ (postfix); an operator is
// exactly one of the two.
type UnaryExpr struct {
	ExprBase
	Op       UnaryOp
	OpSpan   span.Span
	Operand  Expr
	IsPrefix bool
}

// BinaryExpr represents a binary operation: a + b, x == y.
// Its span covers exactly [Left.Span.Start, Right.Span.End).
type BinaryExpr struct {
	ExprBase
	Left   Expr
	Op     BinaryOp
	OpSpan span.Span
	Right  Expr
}

// ============================================================
// Primary expressions
// ============================================================

// GroupedExpr represents a parenthesized expression: (a + b).
type GroupedExpr struct {
	PrimaryBase
	Inner Expr
}

// ArrayExpr represents an array: [a, b, c]. The grammar requires at
// least one element.
type ArrayExpr struct {
	PrimaryBase
	Elements []Expr
}

// CallExpr represents a function call: f(a, b). Args may be empty.
type CallExpr struct {
	PrimaryBase
	Name     string
	NameSpan span.Span
	Args     []Expr
}

// NumberLit represents an integer literal. A leading minus scanned as
// part of the literal is folded into Value.
type NumberLit struct {
	PrimaryBase
	Value int64
}

// IdentExpr represents an identifier reference.
type IdentExpr struct {
	PrimaryBase
	Name string
}
