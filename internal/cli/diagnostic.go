package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/arthur-debert/tinct/pkg/width"
	"github.com/charmbracelet/lipgloss"
)

// diagnosticError carries a markup error together with the segments it was
// found in, so the report can point at the offending brace.
type diagnosticError struct {
	err      error
	segments []markup.Segment
	// printf is set when segments came from markup.Format, so the report
	// shows the template with its verbs and "%%" escapes as typed.
	printf bool
}

func (e *diagnosticError) Error() string { return e.err.Error() }
func (e *diagnosticError) Unwrap() error { return e.err }

type diagnosticStyles struct {
	label  lipgloss.Style
	code   lipgloss.Style
	gutter lipgloss.Style
	caret  lipgloss.Style
}

func newDiagnosticStyles(r *lipgloss.Renderer) diagnosticStyles {
	return diagnosticStyles{
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		code:   r.NewStyle().Faint(true),
		gutter: r.NewStyle().Foreground(lipgloss.Color("4")),
		caret:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
	}
}

// reportError writes err to w. Markup errors get the source line and a
// caret under the reported position.
func reportError(w io.Writer, err error) {
	st := newDiagnosticStyles(lipgloss.NewRenderer(w))

	var diag *diagnosticError
	if stderrors.As(err, &diag) {
		_, _ = fmt.Fprint(w, formatDiagnostic(st, diag))
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", st.label.Render("Error:"), message(err))
}

// message prefers the structured message over the bracketed Error() form.
func message(err error) string {
	var te *errors.TinctError
	if stderrors.As(err, &te) {
		if te.Wrapped != nil {
			return te.Message + ": " + te.Wrapped.Error()
		}
		return te.Message
	}
	return err.Error()
}

func formatDiagnostic(st diagnosticStyles, diag *diagnosticError) string {
	err, segments := diag.err, diag.segments

	var b strings.Builder
	b.WriteString(st.label.Render("Error:"))
	b.WriteString(" " + message(err))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		b.WriteString(" " + st.code.Render("["+string(code)+"]"))
	}
	b.WriteString("\n")

	seg, off, ok := markup.Position(err)
	if !ok || seg < 0 || seg >= len(segments) || segments[seg].Kind != markup.KindLiteral {
		return b.String()
	}
	if off < 0 || off > len(segments[seg].Text) {
		return b.String()
	}

	text, pos := sourceText(segments, seg, off, diag.printf)
	line, col := lineAt(text, pos)
	gutter := st.gutter.Render("  │ ")
	b.WriteString(gutter + line + "\n")
	b.WriteString(gutter + strings.Repeat(" ", col) + st.caret.Render("^") + "\n")
	return b.String()
}

// sourceText joins segments back into the template they came from and maps
// byte offset off in segment seg to an offset in it. Values that follow an
// expression marker are shown as that expression. With printf set, values
// are left out and literal percent signs are written as "%%".
func sourceText(segments []markup.Segment, seg, off int, printf bool) (string, int) {
	var b strings.Builder
	pos := 0
	for i, s := range segments {
		switch s.Kind {
		case markup.KindLiteral:
			text := s.Text
			if i == seg {
				head := text[:off]
				if printf {
					head = strings.ReplaceAll(head, "%", "%%")
				}
				pos = b.Len() + len(head)
			}
			if printf {
				text = strings.ReplaceAll(text, "%", "%%")
			}
			b.WriteString(text)
		case markup.KindExpression:
			b.WriteString(s.Text)
		case markup.KindValue:
			if printf || (i > 0 && segments[i-1].Kind == markup.KindExpression) {
				continue
			}
			b.WriteString(s.String())
		}
	}
	return b.String(), pos
}

// lineAt returns the line of text containing byte offset off and the
// visible column of off within it.
func lineAt(text string, off int) (string, int) {
	start := strings.LastIndexByte(text[:off], '\n') + 1
	end := len(text)
	if i := strings.IndexByte(text[off:], '\n'); i >= 0 {
		end = off + i
	}
	return text[start:end], width.Visible(text[start:off])
}
