package ansi

import "strings"

// ScanControlSequence reports the byte length of the control sequence that
// starts at s[pos], if any. CSI sequences (which include SGR) and OSC
// sequences (which include OSC 8 hyperlinks) are recognised. Truncated or
// malformed sequences are not.
func ScanControlSequence(s string, pos int) (int, bool) {
	if pos < 0 || pos+1 >= len(s) || s[pos] != ESC {
		return 0, false
	}

	var n int
	switch s[pos+1] {
	case '[':
		n = csiLength(s[pos+2:])
	case ']':
		n = oscLength(s[pos+2:])
	}
	if n == 0 {
		return 0, false
	}
	return 2 + n, true
}

// csiLength returns the length of a CSI body: parameter bytes (0x30–0x3F),
// then intermediate bytes (0x20–0x2F), then one final byte (0x40–0x7E).
func csiLength(s string) int {
	seenIntermediate := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 0x30 && b <= 0x3F:
			if seenIntermediate {
				return 0
			}
		case b >= 0x20 && b <= 0x2F:
			seenIntermediate = true
		case b >= 0x40 && b <= 0x7E:
			return i + 1
		default:
			return 0
		}
	}
	return 0
}

// oscLength returns the length of an OSC payload including its terminator,
// either BEL or ST (ESC \).
func oscLength(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case BEL:
			return i + 1
		case ESC:
			if i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
			return 0
		}
	}
	return 0
}

// Strip removes every recognised control sequence from s.
func Strip(s string) string {
	if strings.IndexByte(s, ESC) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if n, ok := ScanControlSequence(s, i); ok {
			i += n
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
