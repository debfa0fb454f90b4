package cli

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAt(t *testing.T) {
	tests := []struct {
		text     string
		off      int
		wantLine string
		wantCol  int
	}{
		{text: "{red x", off: 0, wantLine: "{red x", wantCol: 0},
		{text: "ab {bogus x}", off: 4, wantLine: "ab {bogus x}", wantCol: 4},
		{text: "one\ntwo {x", off: 8, wantLine: "two {x", wantCol: 4},
		{text: "héllo {x", off: 7, wantLine: "héllo {x", wantCol: 6},
		{text: "end", off: 3, wantLine: "end", wantCol: 3},
	}
	for _, tt := range tests {
		line, col := lineAt(tt.text, tt.off)
		assert.Equal(t, tt.wantLine, line, tt.text)
		assert.Equal(t, tt.wantCol, col, tt.text)
	}
}

func TestSourceText(t *testing.T) {
	tests := []struct {
		name     string
		segments []markup.Segment
		printf   bool
		seg, off int
		wantText string
		wantPos  int
	}{
		{
			name:     "verbs shown as typed",
			segments: markup.Format("%s and %5d: {bogus x}", "first", 7),
			printf:   true,
			seg:      5,
			off:      3,
			wantText: "%s and %5d: {bogus x}",
			wantPos:  13,
		},
		{
			name:     "percent escapes restored",
			segments: markup.Format("100%% {bogus x}"),
			printf:   true,
			seg:      0,
			off:      6,
			wantText: "100%% {bogus x}",
			wantPos:  7,
		},
		{
			name:     "extra arguments left out",
			segments: markup.Format("{bogus x}", "extra"),
			printf:   true,
			seg:      0,
			off:      1,
			wantText: "{bogus x}",
			wantPos:  1,
		},
		{
			name:     "plain values stay",
			segments: []markup.Segment{markup.Lit("ok "), markup.Val(1), markup.Lit(" {x")},
			seg:      2,
			off:      1,
			wantText: "ok 1 {x",
			wantPos:  5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, pos := sourceText(tt.segments, tt.seg, tt.off, tt.printf)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantPos, pos)
		})
	}
}

func TestReportError(t *testing.T) {
	t.Run("markup error points at the brace", func(t *testing.T) {
		segments := []markup.Segment{markup.Lit("ok "), markup.Val(1), markup.Lit(" {green open")}
		_, err := markup.NewParser().Collect(segments)
		require.Error(t, err)

		var buf bytes.Buffer
		reportError(&buf, &diagnosticError{err: err, segments: segments})
		out := buf.String()
		assert.Contains(t, out, "unmatched '{'")
		assert.Contains(t, out, "[UNMATCHED_OPEN_BRACE]")
		assert.Contains(t, out, " {green open\n")
		assert.Contains(t, out, " ^")
	})

	t.Run("caret accounts for values before the error", func(t *testing.T) {
		segments := markup.Format("%s: {bogus x}", "a long value")
		_, err := markup.NewParser().Collect(segments)
		require.Error(t, err)

		var buf bytes.Buffer
		reportError(&buf, &diagnosticError{err: err, segments: segments, printf: true})
		out := buf.String()
		assert.Contains(t, out, "│ %s: {bogus x}\n")
		assert.Contains(t, out, "│      ^\n")
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		reportError(&buf, stderrors.New("boom"))
		assert.Contains(t, buf.String(), "Error: boom")
	})

	t.Run("structured error uses its message", func(t *testing.T) {
		var buf bytes.Buffer
		reportError(&buf, errors.New(errors.ErrNotFound, "theme missing"))
		assert.Contains(t, buf.String(), "theme missing")
		assert.NotContains(t, buf.String(), "[NOT_FOUND]")
	})
}
