// Package parser implements the syntax analysis for math expressions.
// Scanning and parsing are fused: a single recursive-descent pass over
// the source bytes builds the AST, with binary operators resolved by a
// two-stack precedence reduction. The first error aborts the parse.
package parser

import (
	"math-equation/internal/ast"
	"math-equation/internal/diag"
	"math-equation/internal/span"
)

// Parser performs syntax analysis directly on source text.
type Parser struct {
	source string

	pos  int // current read position in source
	line int // current line (1-based)
	col  int // current column (1-based)
}

// New creates a new Parser for the given source text.
func New(source string) *Parser {
	return &Parser{source: source, line: 1, col: 1}
}

// Parse parses source as a single expression. The whole input must be
// consumed; trailing non-whitespace is an error. The returned error, if
// non-nil, is a *diag.Diagnostic carrying the failure position.
func Parse(source string) (ast.Expr, error) {
	p := New(source)
	expr, d := p.expression()
	if d != nil {
		return nil, d
	}
	p.skipWhitespace()
	if !p.atEnd() {
		return nil, diag.Errorf("E2005", p.hereSpan(), "unexpected input after expression: %q", p.peek())
	}
	return expr, nil
}

// ============================================================
// Expressions
// ============================================================

// pending is one (operator, operand) pair scanned ahead of the
// precedence reduction.
type pending struct {
	op      ast.BinaryOp
	opSpan  span.Span
	operand ast.Expr
}

// expression parses: unaryExpression (binaryOperator unaryExpression)*.
//
// The flat operator/operand sequence is scanned first, then reduced with
// an operand stack and an operator stack: an incoming operator pops
// while the stack top's precedence is >= its own, so equal precedence
// reduces immediately and every level is left-associative.
func (p *Parser) expression() (ast.Expr, *diag.Diagnostic) {
	first, d := p.unaryExpression()
	if d != nil {
		return nil, d
	}

	var matched []pending
	p.skipWhitespace()
	for {
		op, opSpan, ok := p.scanBinaryOp()
		if !ok {
			break
		}
		p.skipWhitespace()
		operand, d := p.unaryExpression()
		if d != nil {
			return nil, d
		}
		matched = append(matched, pending{op: op, opSpan: opSpan, operand: operand})
		p.skipWhitespace()
	}

	operands := []ast.Expr{first}
	var operators []pending
	for _, next := range matched {
		for len(operators) > 0 && precedence(operators[len(operators)-1].op) >= precedence(next.op) {
			operands, operators = reduce(operands, operators)
		}
		operands = append(operands, next.operand)
		operators = append(operators, next)
	}
	for len(operators) > 0 {
		operands, operators = reduce(operands, operators)
	}
	return operands[0], nil
}

// reduce pops the top operator and its two operands and pushes the
// combined binary expression.
func reduce(operands []ast.Expr, operators []pending) ([]ast.Expr, []pending) {
	right := operands[len(operands)-1]
	left := operands[len(operands)-2]
	top := operators[len(operators)-1]
	operands = operands[:len(operands)-2]
	operators = operators[:len(operators)-1]

	bin := &ast.BinaryExpr{Left: left, Op: top.op, OpSpan: top.opSpan, Right: right}
	bin.Span = span.Cover(left.GetSpan(), right.GetSpan())
	return append(operands, bin), operators
}

// unaryExpression parses: unaryOperator primaryExpression
// | primaryExpression unaryOperator?.
//
// The prefix attempt comes first; once a prefix operator has matched,
// no postfix check is made. The postfix check does not skip whitespace,
// so "3 ++" is not a postfix increment of 3.
func (p *Parser) unaryExpression() (ast.Expr, *diag.Diagnostic) {
	p.skipWhitespace()
	start := p.curPos()

	if op, opSpan, ok := p.scanUnaryOp(); ok {
		operand, d := p.primaryExpression()
		if d != nil {
			return nil, d
		}
		un := &ast.UnaryExpr{Op: op, OpSpan: opSpan, Operand: operand, IsPrefix: true}
		un.Span = p.makeSpan(start)
		return un, nil
	}

	operand, d := p.primaryExpression()
	if d != nil {
		return nil, d
	}
	if op, opSpan, ok := p.scanUnaryOp(); ok {
		un := &ast.UnaryExpr{Op: op, OpSpan: opSpan, Operand: operand, IsPrefix: false}
		un.Span = p.makeSpan(start)
		return un, nil
	}
	return operand, nil
}

// primaryExpression dispatches on the next character, in fixed order:
// grouping, array, function call (detected by lookahead), number,
// identifier. No case matching is a hard error.
func (p *Parser) primaryExpression() (ast.Expr, *diag.Diagnostic) {
	p.skipWhitespace()
	start := p.curPos()

	if p.matchLit("(") {
		inner, d := p.expression()
		if d != nil {
			return nil, d
		}
		p.skipWhitespace()
		if !p.matchLit(")") {
			return nil, p.expectedLit(")")
		}
		grp := &ast.GroupedExpr{Inner: inner}
		grp.Span = p.makeSpan(start)
		return grp, nil
	}

	if p.peek() == '[' {
		return p.array()
	}

	if p.startsWithFuncCall() {
		return p.functionCall()
	}

	if isDigit(p.peek()) {
		return p.scanNumber()
	}

	if isAlpha(p.peek()) {
		name, sp, d := p.scanIdentifier()
		if d != nil {
			return nil, d
		}
		id := &ast.IdentExpr{Name: name}
		id.Span = sp
		return id, nil
	}

	if p.atEnd() {
		return nil, diag.Errorf("E2002", p.hereSpan(), "expected expression, got end of input")
	}
	return nil, diag.Errorf("E2002", p.hereSpan(), "expected expression, got %q", p.peek())
}

// array parses: '[' expression (',' expression)* ']'. At least one
// element is required.
func (p *Parser) array() (ast.Expr, *diag.Diagnostic) {
	start := p.curPos()
	if !p.matchLit("[") {
		return nil, p.expectedLit("[")
	}

	var elements []ast.Expr
	elem, d := p.expression()
	if d != nil {
		return nil, d
	}
	elements = append(elements, elem)
	for p.matchLit(",") {
		elem, d := p.expression()
		if d != nil {
			return nil, d
		}
		elements = append(elements, elem)
	}

	if !p.matchLit("]") {
		return nil, p.expectedLit("]")
	}
	arr := &ast.ArrayExpr{Elements: elements}
	arr.Span = p.makeSpan(start)
	return arr, nil
}

// functionCall parses: identifier '(' (expression (',' expression)*)? ')'.
func (p *Parser) functionCall() (ast.Expr, *diag.Diagnostic) {
	start := p.curPos()
	name, nameSpan, d := p.scanIdentifier()
	if d != nil {
		return nil, d
	}
	if !p.matchLit("(") {
		return nil, p.expectedLit("(")
	}
	p.skipWhitespace()

	var args []ast.Expr
	if p.atEnd() {
		return nil, diag.Errorf("E2002", p.hereSpan(), "expected expression or ')', got end of input")
	}
	if p.peek() != ')' {
		arg, d := p.expression()
		if d != nil {
			return nil, d
		}
		args = append(args, arg)
		for p.matchLit(",") {
			arg, d := p.expression()
			if d != nil {
				return nil, d
			}
			args = append(args, arg)
		}
	}

	if !p.matchLit(")") {
		return nil, p.expectedLit(")")
	}
	call := &ast.CallExpr{Name: name, NameSpan: nameSpan, Args: args}
	call.Span = p.makeSpan(start)
	return call, nil
}

// startsWithFuncCall reports whether an identifier immediately followed
// by '(' begins at the cursor. It fully scans the identifier, checks for
// the paren, and unconditionally rewinds: a peek, not a commit.
func (p *Parser) startsWithFuncCall() bool {
	m := p.save()
	_, _, d := p.scanIdentifier()
	ok := d == nil && p.matchLit("(")
	p.restore(m)
	return ok
}

func (p *Parser) expectedLit(lit string) *diag.Diagnostic {
	if p.atEnd() {
		return diag.Errorf("E2001", p.hereSpan(), "expected %q, got end of input", lit)
	}
	return diag.Errorf("E2001", p.hereSpan(), "expected %q, got %q", lit, p.peek())
}
