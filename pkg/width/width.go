// Package width measures how much room styled text occupies on a terminal.
//
// Layout code must size columns and borders with these functions rather than
// len or utf8.RuneCountInString, which would count the bytes of embedded
// control sequences.
package width

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/tinct/pkg/ansi"
	"github.com/mattn/go-runewidth"
)

// Visible returns the number of codepoints in s that are not part of a
// recognised control sequence. Malformed sequences count as visible text and
// invalid UTF-8 bytes count one each.
func Visible(s string) int {
	n := 0
	walk(s, func(rune) { n++ })
	return n
}

// Cells returns the number of terminal cells s occupies, accounting for wide
// and zero-width runes.
func Cells(s string) int {
	n := 0
	walk(s, func(r rune) { n += runewidth.RuneWidth(r) })
	return n
}

// Pad right-pads s with spaces until its visible width reaches w.
func Pad(s string, w int) string {
	if gap := w - Visible(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func walk(s string, visit func(rune)) {
	for i := 0; i < len(s); {
		if s[i] == ansi.ESC {
			if n, ok := ansi.ScanControlSequence(s, i); ok {
				i += n
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		visit(r)
		i += size
	}
}
