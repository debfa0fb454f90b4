package markup

import "fmt"

// Kind identifies the variant held by a Segment.
type Kind uint8

const (
	// KindLiteral is raw template text, scanned for markup.
	KindLiteral Kind = iota
	// KindExpression is the source text of an interpolated expression.
	KindExpression
	// KindValue is an interpolated runtime value.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindExpression:
		return "expression"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// Segment is one typed unit of a template.
type Segment struct {
	Kind  Kind
	Text  string
	Value interface{}
}

// Lit returns a literal segment.
func Lit(text string) Segment {
	return Segment{Kind: KindLiteral, Text: text}
}

// Expr returns an expression marker carrying the expression's source text.
func Expr(source string) Segment {
	return Segment{Kind: KindExpression, Text: source}
}

// Val returns a value segment.
func Val(v interface{}) Segment {
	return Segment{Kind: KindValue, Value: v}
}

// String returns the text the segment contributes before markup is
// interpreted: the raw text of a literal, the stringified value, or nothing
// for an expression marker.
func (s Segment) String() string {
	switch s.Kind {
	case KindLiteral:
		return s.Text
	case KindValue:
		return fmt.Sprint(s.Value)
	default:
		return ""
	}
}
