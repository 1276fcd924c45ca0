// Package mathml defines the presentation-markup tree produced from a
// parsed expression, and its serialization to MathML. The element kinds
// here (row, fraction, superscript, numeric leaf, symbol leaf, operator
// glyph) are the contract consumed by any downstream display layer.
package mathml

import "strings"

// Node is the interface implemented by all markup elements.
type Node interface {
	mathmlNode()
}

// Row lays out its children horizontally (MathML <mrow>).
type Row struct {
	Children []Node
}

// Frac is a fraction (MathML <mfrac>).
type Frac struct {
	Num Node // numerator
	Den Node // denominator
}

// Sup is a superscript (MathML <msup>).
type Sup struct {
	Base Node
	Exp  Node
}

// Num is a numeric literal leaf (MathML <mn>).
type Num struct {
	Text string
}

// Ident is a symbol leaf (MathML <mi>).
type Ident struct {
	Text string
}

// Op is an operator glyph (MathML <mo>).
type Op struct {
	Text string
}

func (*Row) mathmlNode()   {}
func (*Frac) mathmlNode()  {}
func (*Sup) mathmlNode()   {}
func (*Num) mathmlNode()   {}
func (*Ident) mathmlNode() {}
func (*Op) mathmlNode()    {}

// escaper handles the characters that are significant in XML text.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Marshal serializes a markup tree to MathML element text.
func Marshal(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// Document wraps a markup tree in a block-level <math> root.
func Document(n Node) string {
	var b strings.Builder
	b.WriteString(`<math display="block">`)
	writeNode(&b, n)
	b.WriteString(`</math>`)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch e := n.(type) {
	case *Row:
		b.WriteString("<mrow>")
		for _, child := range e.Children {
			writeNode(b, child)
		}
		b.WriteString("</mrow>")
	case *Frac:
		b.WriteString("<mfrac>")
		writeNode(b, e.Num)
		writeNode(b, e.Den)
		b.WriteString("</mfrac>")
	case *Sup:
		b.WriteString("<msup>")
		writeNode(b, e.Base)
		writeNode(b, e.Exp)
		b.WriteString("</msup>")
	case *Num:
		b.WriteString("<mn>")
		b.WriteString(escaper.Replace(e.Text))
		b.WriteString("</mn>")
	case *Ident:
		b.WriteString("<mi>")
		b.WriteString(escaper.Replace(e.Text))
		b.WriteString("</mi>")
	case *Op:
		b.WriteString("<mo>")
		b.WriteString(escaper.Replace(e.Text))
		b.WriteString("</mo>")
	}
}
