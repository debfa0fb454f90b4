// Package ansi converts style sets to Select Graphic Rendition sequences and
// scans text for embedded control sequences.
package ansi

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/tinct/pkg/style"
)

const (
	// ESC introduces every control sequence.
	ESC = '\x1b'
	// BEL terminates OSC sequences in the short form.
	BEL = '\x07'

	csi = "\x1b["

	// Reset clears every active attribute.
	Reset = "\x1b[0m"
)

// EncodeFull returns the SGR sequence that turns on every attribute of s,
// or "" for the empty set.
func EncodeFull(s style.Set) string {
	return sgr(false, s.Attributes())
}

// EncodeTransition returns the shortest sequence moving a terminal from the
// attributes in from to the attributes in to. Pure additions emit only the
// new codes. Any removal emits a reset followed by the full encoding of to,
// folded into a single sequence, since decorations cannot be cleared
// individually on every terminal.
func EncodeTransition(from, to style.Set) string {
	if from == to {
		return ""
	}
	if to.Covers(from) {
		return sgr(false, to.Diff(from))
	}
	return sgr(true, to.Attributes())
}

func sgr(reset bool, attrs []style.Attribute) string {
	if !reset && len(attrs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(csi)
	if reset {
		b.WriteByte('0')
	}
	for i, a := range attrs {
		if reset || i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(a.Code()))
	}
	b.WriteByte('m')
	return b.String()
}
