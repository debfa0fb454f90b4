// Package ui decides whether output should carry escape sequences.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode is the user's color preference.
type ColorMode int

const (
	// ColorAuto enables color when the output is a color-capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways enables color unconditionally
	ColorAlways
	// ColorNever disables color
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "yes", "true", "force":
		return ColorAlways, nil
	case "never", "off", "no", "false", "none":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Newf(errors.ErrInvalidInput, "unknown color mode: %s", s).
			WithDetail("value", s)
	}
}

// Enabled resolves the mode against the writer output is going to.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return DetectColor(w)
	}
}

// DetectColor reports whether w is a terminal that should receive color.
// NO_COLOR disables and CLICOLOR_FORCE enables color regardless of the
// terminal. Writers that are not files never get color.
func DetectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}

	f, ok := w.(*os.File)
	if !ok || !IsTerminal(f) {
		return false
	}

	// Check terminal color support
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
