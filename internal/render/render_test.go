package render

import (
	"testing"

	"math-equation/internal/ast"
	"math-equation/internal/mathml"
	"math-equation/internal/parser"
)

// helper: parse source and fail the test on error
func parseOK(t *testing.T, source string) ast.Expr {
	t.Helper()
	expr, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return expr
}

func TestDebugString(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"42", "42"},
		{"-42", "unExp(-, 42)"},
		{"x", "x"},
		{"2 + 3", "binExp(2, +, 3)"},
		{"(2 + 3)", "binExp(2, +, 3)"}, // grouping leaves no trace
		{"[1, x]", "[1, x]"},
		{"f(1, 2)", "f(1, 2)"},
		{"f()", "f()"},
		{"n!", "unExp(n, !)"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got := DebugString(parseOK(t, tt.source))
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFraction(t *testing.T) {
	frac, ok := ToMathML(parseOK(t, "a / b")).(*mathml.Frac)
	if !ok {
		t.Fatalf("expected Frac")
	}
	num, ok := frac.Num.(*mathml.Ident)
	if !ok || num.Text != "a" {
		t.Errorf("numerator: got %#v, want Ident a", frac.Num)
	}
	den, ok := frac.Den.(*mathml.Ident)
	if !ok || den.Text != "b" {
		t.Errorf("denominator: got %#v, want Ident b", frac.Den)
	}
}

func TestSuperscript(t *testing.T) {
	sup, ok := ToMathML(parseOK(t, "x ^ 2")).(*mathml.Sup)
	if !ok {
		t.Fatalf("expected Sup")
	}
	if base, ok := sup.Base.(*mathml.Ident); !ok || base.Text != "x" {
		t.Errorf("base: got %#v, want Ident x", sup.Base)
	}
	if exp, ok := sup.Exp.(*mathml.Num); !ok || exp.Text != "2" {
		t.Errorf("exponent: got %#v, want Num 2", sup.Exp)
	}
}

func TestBinaryGlyphs(t *testing.T) {
	tests := []struct {
		source string
		glyph  string
	}{
		{"a == b", "≡"},
		{"a != b", "≠"},
		{"a <= b", "≤"},
		{"a >= b", "≥"},
		{"a && b", "∧"},
		{"a || b", "∨"},
		{"a + b", "+"},
		{"a < b", "<"},
		{"a = b", "="},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			row, ok := ToMathML(parseOK(t, tt.source)).(*mathml.Row)
			if !ok {
				t.Fatalf("expected Row")
			}
			if len(row.Children) != 3 {
				t.Fatalf("expected 3 children, got %d", len(row.Children))
			}
			op, ok := row.Children[1].(*mathml.Op)
			if !ok {
				t.Fatalf("expected Op in the middle, got %#v", row.Children[1])
			}
			if op.Text != tt.glyph {
				t.Errorf("got glyph %q, want %q", op.Text, tt.glyph)
			}
		})
	}
}

func TestUnaryRows(t *testing.T) {
	row, ok := ToMathML(parseOK(t, "-x")).(*mathml.Row)
	if !ok {
		t.Fatalf("expected Row")
	}
	if op, ok := row.Children[0].(*mathml.Op); !ok || op.Text != "-" {
		t.Errorf("prefix: first child %#v, want Op -", row.Children[0])
	}

	row, ok = ToMathML(parseOK(t, "x++")).(*mathml.Row)
	if !ok {
		t.Fatalf("expected Row")
	}
	if op, ok := row.Children[1].(*mathml.Op); !ok || op.Text != "++" {
		t.Errorf("postfix: second child %#v, want Op ++", row.Children[1])
	}
}

func TestGroupedDelegates(t *testing.T) {
	grouped := mathml.Marshal(ToMathML(parseOK(t, "(a + b)")))
	bare := mathml.Marshal(ToMathML(parseOK(t, "a + b")))
	if grouped != bare {
		t.Errorf("grouped markup %s differs from bare %s", grouped, bare)
	}
}

func TestMarshalNested(t *testing.T) {
	got := mathml.Marshal(ToMathML(parseOK(t, "1 + 2 / 3")))
	want := "<mrow><mn>1</mn><mo>+</mo><mfrac><mn>2</mn><mn>3</mn></mfrac></mrow>"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestCallMarkup(t *testing.T) {
	got := mathml.Marshal(ToMathML(parseOK(t, "f(x, 2)")))
	want := "<mrow><mi>f</mi><mo>(</mo><mi>x</mi><mo>,</mo><mn>2</mn><mo>)</mo></mrow>"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestRenderersArePure(t *testing.T) {
	expr := parseOK(t, "f([1, 2]) ^ -3 / x")
	if a, b := DebugString(expr), DebugString(expr); a != b {
		t.Errorf("DebugString not idempotent: %s vs %s", a, b)
	}
	a := mathml.Marshal(ToMathML(expr))
	b := mathml.Marshal(ToMathML(expr))
	if a != b {
		t.Errorf("markup not idempotent: %s vs %s", a, b)
	}
}
