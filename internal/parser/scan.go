package parser

import (
	"strconv"

	"math-equation/internal/ast"
	"math-equation/internal/diag"
	"math-equation/internal/span"
)

// ============================================================
// Lexical primitives
// ============================================================

// scanNumber reads an integer literal: an optional leading minus
// followed by a digit run. The sign is folded into the value.
func (p *Parser) scanNumber() (*ast.NumberLit, *diag.Diagnostic) {
	start := p.curPos()
	if p.peek() == '-' {
		p.consume()
	}
	for !p.atEnd() && isDigit(p.peek()) {
		p.consume()
	}
	text := p.source[start.Offset:p.pos]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, diag.Errorf("E2004", p.makeSpan(start), "invalid number literal %q", text)
	}
	lit := &ast.NumberLit{Value: value}
	lit.Span = p.makeSpan(start)
	return lit, nil
}

// scanIdentifier reads an identifier: alpha (alpha | digit | '_')*.
func (p *Parser) scanIdentifier() (string, span.Span, *diag.Diagnostic) {
	start := p.curPos()
	if p.atEnd() || !isAlpha(p.peek()) {
		return "", span.Span{}, p.expectedIdentifier()
	}
	p.consume()
	for !p.atEnd() && isIdentPart(p.peek()) {
		p.consume()
	}
	return p.source[start.Offset:p.pos], p.makeSpan(start), nil
}

func (p *Parser) expectedIdentifier() *diag.Diagnostic {
	if p.atEnd() {
		return diag.Errorf("E2003", p.hereSpan(), "expected identifier, got end of input")
	}
	return diag.Errorf("E2003", p.hereSpan(), "expected identifier, got %q", p.peek())
}

// ============================================================
// Operator tables
// ============================================================

// binaryOps are tried strictly in order: "==" must precede "=", and
// every two-character operator must precede any one-character operator
// it shares a prefix with. Reordering changes parse results.
var binaryOps = []struct {
	lit string
	op  ast.BinaryOp
}{
	{"+", ast.OpAdd},
	{"-", ast.OpSub},
	{"*", ast.OpMul},
	{"/", ast.OpDiv},
	{"^", ast.OpPow},
	{"==", ast.OpEq},
	{"=", ast.OpAssign},
	{"!=", ast.OpNe},
	{"<=", ast.OpLe},
	{">=", ast.OpGe},
	{"<", ast.OpLt},
	{">", ast.OpGt},
	{"&&", ast.OpAnd},
	{"||", ast.OpOr},
}

// unaryOps are tried strictly in order. "-" shadows "--", so "--" never
// matches; the entry stays so the table lists the full operator set.
var unaryOps = []struct {
	lit string
	op  ast.UnaryOp
}{
	{"!", ast.OpNot},
	{"-", ast.OpNeg},
	{"++", ast.OpInc},
	{"--", ast.OpDec},
}

// scanBinaryOp matches a binary operator at the cursor. On a miss the
// cursor does not move.
func (p *Parser) scanBinaryOp() (ast.BinaryOp, span.Span, bool) {
	start := p.curPos()
	for _, cand := range binaryOps {
		if p.matchLit(cand.lit) {
			return cand.op, p.makeSpan(start), true
		}
	}
	return 0, span.Span{}, false
}

// scanUnaryOp matches a unary operator at the cursor. On a miss the
// cursor does not move.
func (p *Parser) scanUnaryOp() (ast.UnaryOp, span.Span, bool) {
	start := p.curPos()
	for _, cand := range unaryOps {
		if p.matchLit(cand.lit) {
			return cand.op, p.makeSpan(start), true
		}
	}
	return 0, span.Span{}, false
}

// ============================================================
// Precedence
// ============================================================

// precedence returns the binding strength of a binary operator; higher
// binds tighter. All levels are left-associative, including "^", which
// shares the multiplicative tier.
func precedence(op ast.BinaryOp) int {
	switch op {
	case ast.OpAssign:
		return 0
	case ast.OpOr:
		return 1
	case ast.OpAnd:
		return 2
	case ast.OpEq, ast.OpNe:
		return 3
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		return 4
	case ast.OpAdd, ast.OpSub:
		return 5
	case ast.OpMul, ast.OpDiv, ast.OpPow:
		return 6
	default:
		return 0
	}
}
