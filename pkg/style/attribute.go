// Package style models the fixed set of SGR text attributes and the immutable
// sets of attributes that are active at any point of a styled string.
package style

import "sort"

// Attribute is a single visual trait that can be toggled on terminal output.
type Attribute uint8

// Kind groups attributes that compete for the same slot.
type Kind uint8

const (
	// KindDecoration attributes accumulate freely.
	KindDecoration Kind = iota
	// KindForeground attributes replace each other.
	KindForeground
	// KindBackground attributes replace each other.
	KindBackground
)

const (
	none Attribute = iota

	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite

	BgBlack
	BgRed
	BgGreen
	BgYellow
	BgBlue
	BgMagenta
	BgCyan
	BgWhite
	BgBrightBlack
	BgBrightRed
	BgBrightGreen
	BgBrightYellow
	BgBrightBlue
	BgBrightMagenta
	BgBrightCyan
	BgBrightWhite

	Bold
	Dim
	Italic
	Underline
	Inverse
	Strikethrough

	attributeCount
)

var attributeNames = [attributeCount]string{
	Black:         "black",
	Red:           "red",
	Green:         "green",
	Yellow:        "yellow",
	Blue:          "blue",
	Magenta:       "magenta",
	Cyan:          "cyan",
	White:         "white",
	BrightBlack:   "brightBlack",
	BrightRed:     "brightRed",
	BrightGreen:   "brightGreen",
	BrightYellow:  "brightYellow",
	BrightBlue:    "brightBlue",
	BrightMagenta: "brightMagenta",
	BrightCyan:    "brightCyan",
	BrightWhite:   "brightWhite",

	BgBlack:         "bgBlack",
	BgRed:           "bgRed",
	BgGreen:         "bgGreen",
	BgYellow:        "bgYellow",
	BgBlue:          "bgBlue",
	BgMagenta:       "bgMagenta",
	BgCyan:          "bgCyan",
	BgWhite:         "bgWhite",
	BgBrightBlack:   "bgBrightBlack",
	BgBrightRed:     "bgBrightRed",
	BgBrightGreen:   "bgBrightGreen",
	BgBrightYellow:  "bgBrightYellow",
	BgBrightBlue:    "bgBrightBlue",
	BgBrightMagenta: "bgBrightMagenta",
	BgBrightCyan:    "bgBrightCyan",
	BgBrightWhite:   "bgBrightWhite",

	Bold:          "bold",
	Dim:           "dim",
	Italic:        "italic",
	Underline:     "underline",
	Inverse:       "inverse",
	Strikethrough: "strikethrough",
}

var decorationCodes = map[Attribute]int{
	Bold:          1,
	Dim:           2,
	Italic:        3,
	Underline:     4,
	Inverse:       7,
	Strikethrough: 9,
}

var byName = func() map[string]Attribute {
	m := make(map[string]Attribute, attributeCount)
	for a := Black; a < attributeCount; a++ {
		m[attributeNames[a]] = a
	}
	return m
}()

// Lookup resolves a case-sensitive attribute name such as "red" or "bgBlue".
func Lookup(name string) (Attribute, bool) {
	a, ok := byName[name]
	return a, ok
}

// Names returns every attribute name, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every attribute in declaration order.
func All() []Attribute {
	attrs := make([]Attribute, 0, attributeCount-1)
	for a := Black; a < attributeCount; a++ {
		attrs = append(attrs, a)
	}
	return attrs
}

// Valid reports whether a is one of the known attributes.
func (a Attribute) Valid() bool {
	return a > none && a < attributeCount
}

// String returns the markup name of the attribute.
func (a Attribute) String() string {
	if !a.Valid() {
		return "invalid"
	}
	return attributeNames[a]
}

// Kind reports which slot the attribute occupies.
func (a Attribute) Kind() Kind {
	switch {
	case a >= Black && a <= BrightWhite:
		return KindForeground
	case a >= BgBlack && a <= BgBrightWhite:
		return KindBackground
	default:
		return KindDecoration
	}
}

// Code returns the SGR parameter that turns the attribute on.
func (a Attribute) Code() int {
	switch {
	case a >= Black && a <= White:
		return 30 + int(a-Black)
	case a >= BrightBlack && a <= BrightWhite:
		return 90 + int(a-BrightBlack)
	case a >= BgBlack && a <= BgWhite:
		return 40 + int(a-BgBlack)
	case a >= BgBrightBlack && a <= BgBrightWhite:
		return 100 + int(a-BgBrightBlack)
	}
	return decorationCodes[a]
}

func (k Kind) String() string {
	switch k {
	case KindForeground:
		return "foreground"
	case KindBackground:
		return "background"
	default:
		return "decoration"
	}
}
