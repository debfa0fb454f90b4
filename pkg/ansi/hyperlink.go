package ansi

import xansi "github.com/charmbracelet/x/ansi"

// Hyperlink wraps text in an OSC 8 hyperlink pointing at url. Terminals
// without hyperlink support display text unchanged.
func Hyperlink(url, text string) string {
	return xansi.SetHyperlink(url) + text + xansi.ResetHyperlink()
}
