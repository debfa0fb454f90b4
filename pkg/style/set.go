package style

import "strings"

// Set is an immutable combination of active attributes. At most one
// foreground and one background color are held; decorations accumulate.
// The zero value is the empty set and two Sets are equal under ==.
type Set struct {
	fg   Attribute
	bg   Attribute
	deco uint8
}

// Token is one element of a style list: an attribute to add, or to remove
// when Negated.
type Token struct {
	Negated bool
	Attr    Attribute
}

// Empty returns the set with no attributes.
func Empty() Set {
	return Set{}
}

// Of builds a set by adding attrs in order.
func Of(attrs ...Attribute) Set {
	var s Set
	for _, a := range attrs {
		s = s.with(a)
	}
	return s
}

// Apply returns base with tokens applied left to right. Removing an attribute
// that is not active is a no-op. base is not modified.
func Apply(base Set, tokens []Token) Set {
	s := base
	for _, tok := range tokens {
		if tok.Negated {
			s = s.without(tok.Attr)
		} else {
			s = s.with(tok.Attr)
		}
	}
	return s
}

// Add is shorthand for applying non-negated tokens.
func (s Set) Add(attrs ...Attribute) Set {
	for _, a := range attrs {
		s = s.with(a)
	}
	return s
}

// Remove is shorthand for applying negated tokens.
func (s Set) Remove(attrs ...Attribute) Set {
	for _, a := range attrs {
		s = s.without(a)
	}
	return s
}

func (s Set) with(a Attribute) Set {
	if !a.Valid() {
		return s
	}
	switch a.Kind() {
	case KindForeground:
		s.fg = a
	case KindBackground:
		s.bg = a
	default:
		s.deco |= decoBit(a)
	}
	return s
}

func (s Set) without(a Attribute) Set {
	if !a.Valid() {
		return s
	}
	switch a.Kind() {
	case KindForeground:
		if s.fg == a {
			s.fg = none
		}
	case KindBackground:
		if s.bg == a {
			s.bg = none
		}
	default:
		s.deco &^= decoBit(a)
	}
	return s
}

func decoBit(a Attribute) uint8 {
	return 1 << (a - Bold)
}

// IsEmpty reports whether no attribute is active.
func (s Set) IsEmpty() bool {
	return s == Set{}
}

// Contains reports whether a is active in s.
func (s Set) Contains(a Attribute) bool {
	if !a.Valid() {
		return false
	}
	switch a.Kind() {
	case KindForeground:
		return s.fg == a
	case KindBackground:
		return s.bg == a
	default:
		return s.deco&decoBit(a) != 0
	}
}

// Covers reports whether every attribute of other is also active in s.
func (s Set) Covers(other Set) bool {
	if other.fg != none && other.fg != s.fg {
		return false
	}
	if other.bg != none && other.bg != s.bg {
		return false
	}
	return other.deco&^s.deco == 0
}

// Foreground returns the active foreground color, if any.
func (s Set) Foreground() (Attribute, bool) {
	return s.fg, s.fg != none
}

// Background returns the active background color, if any.
func (s Set) Background() (Attribute, bool) {
	return s.bg, s.bg != none
}

// Attributes lists the active attributes in a stable order: decorations by
// SGR code, then the foreground color, then the background color.
func (s Set) Attributes() []Attribute {
	var attrs []Attribute
	for a := Bold; a <= Strikethrough; a++ {
		if s.deco&decoBit(a) != 0 {
			attrs = append(attrs, a)
		}
	}
	if s.fg != none {
		attrs = append(attrs, s.fg)
	}
	if s.bg != none {
		attrs = append(attrs, s.bg)
	}
	return attrs
}

// Diff returns the attributes active in s but not in base.
func (s Set) Diff(base Set) []Attribute {
	var attrs []Attribute
	for _, a := range s.Attributes() {
		if !base.Contains(a) {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

// String renders the set in style-list form, e.g. "bold.red".
func (s Set) String() string {
	attrs := s.Attributes()
	names := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.String()
	}
	return strings.Join(names, ".")
}
