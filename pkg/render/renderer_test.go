package render_test

import (
	"bytes"
	stderrors "errors"
	"testing"
	"unicode/utf8"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/arthur-debert/tinct/pkg/render"
	"github.com/arthur-debert/tinct/pkg/style"
	"github.com/arthur-debert/tinct/pkg/width"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderString(t *testing.T) {
	tests := []struct {
		name     string
		segments []markup.Segment
		want     string
	}{
		{
			name:     "single block",
			segments: []markup.Segment{markup.Lit("{red hi}")},
			want:     "\x1b[31mhi\x1b[0m",
		},
		{
			name:     "removal forces reset and reapply",
			segments: []markup.Segment{markup.Lit("{bold.red Both {~red just bold} both again}")},
			want:     "\x1b[1;31mBoth \x1b[0;1mjust bold\x1b[31m both again\x1b[0m",
		},
		{
			name:     "escaped braces",
			segments: []markup.Segment{markup.Lit("Use {{literal}} here")},
			want:     "Use {literal} here",
		},
		{
			name: "value is not markup",
			segments: []markup.Segment{
				markup.Lit("{green got "), markup.Val("{red fake}"), markup.Lit("}"),
			},
			want: "\x1b[32mgot {red fake}\x1b[0m",
		},
		{
			name:     "nested frames restore in order",
			segments: []markup.Segment{markup.Lit("{bold A {italic B {underline C} B} A}")},
			want:     "\x1b[1mA \x1b[3mB \x1b[4mC\x1b[0;1;3m B\x1b[0;1m A\x1b[0m",
		},
		{
			name:     "plain text has no sequences",
			segments: []markup.Segment{markup.Lit("just text")},
			want:     "just text",
		},
		{
			name:     "styled then plain resets once",
			segments: []markup.Segment{markup.Lit("{red a} b")},
			want:     "\x1b[31ma\x1b[0m b",
		},
		{
			name:     "color replacement",
			segments: []markup.Segment{markup.Lit("{red a {blue b} }")},
			want:     "\x1b[31ma \x1b[0;34mb\x1b[0;31m \x1b[0m",
		},
		{
			name:     "empty input",
			segments: nil,
			want:     "",
		},
	}

	rd := render.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rd.String(tt.segments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderPreservesVisibleWidth(t *testing.T) {
	inputs := []string{
		"{red hi}",
		"{bold.red Both {~red just bold} both again}",
		"{bold A {italic B {underline C} B} A}",
		"{green héllo wörld} and {{more}}",
		"{bgBrightWhite.black 日本語}",
	}

	parser := markup.NewParser()
	rd := render.New()
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			segs := []markup.Segment{markup.Lit(in)}
			runs, err := parser.Collect(segs)
			require.NoError(t, err)

			want := 0
			for _, r := range runs {
				want += utf8.RuneCountInString(r.Text)
			}

			got, err := rd.String(segs)
			require.NoError(t, err)
			assert.Equal(t, want, width.Visible(got))
		})
	}
}

func TestRenderWithoutColor(t *testing.T) {
	rd := render.New(render.WithColor(false))
	assert.False(t, rd.Color())

	got, err := rd.String([]markup.Segment{markup.Lit("{bold.red Both {~red just bold} both again}")})
	require.NoError(t, err)
	assert.Equal(t, "Both just bold both again", got)
}

func TestRenderBufferedIsAtomic(t *testing.T) {
	var buf bytes.Buffer
	rd := render.New()
	assert.False(t, rd.Streaming())

	err := rd.Render([]markup.Segment{markup.Lit("{red a} {bogus b}")}, &buf)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownAttribute))
	assert.Empty(t, buf.String())
}

func TestRenderStreamingWritesPrefix(t *testing.T) {
	rd := render.New(render.WithStreaming(true))
	assert.True(t, rd.Streaming())

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "styled prefix is reset", input: "{red a} {bogus b}", want: "\x1b[31ma\x1b[0m"},
		{name: "reset inside open blocks", input: "{bold a {italic b} {bogus c} }", want: "\x1b[1ma \x1b[3mb\x1b[0m"},
		{name: "plain prefix gets no reset", input: "a {red b {bogus c} }", want: "a "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := rd.Render([]markup.Segment{markup.Lit(tt.input)}, &buf)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownAttribute))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderStreamingSuccessMatchesBuffered(t *testing.T) {
	segs := []markup.Segment{markup.Lit("{bold A {italic B {underline C} B} A}")}

	var streamed, buffered bytes.Buffer
	require.NoError(t, render.New(render.WithStreaming(true)).Render(segs, &streamed))
	require.NoError(t, render.New().Render(segs, &buffered))
	assert.Equal(t, buffered.String(), streamed.String())
}

func TestRenderUnmatchedOpenBrace(t *testing.T) {
	_, err := render.New().String([]markup.Segment{markup.Lit("{green unterminated")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnmatchedOpenBrace))

	seg, off, ok := markup.Position(err)
	require.True(t, ok)
	assert.Equal(t, 0, seg)
	assert.Equal(t, 0, off)
}

func TestRenderLogsOperation(t *testing.T) {
	var logs bytes.Buffer
	rd := render.New(render.WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)))

	_, err := rd.String([]markup.Segment{markup.Lit("{red x}")})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"operation":"render"`)
	assert.Contains(t, logs.String(), "Operation completed")
	assert.Contains(t, logs.String(), `"duration"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestRenderWriteError(t *testing.T) {
	for _, streaming := range []bool{false, true} {
		rd := render.New(render.WithStreaming(streaming))
		err := rd.Render([]markup.Segment{markup.Lit("{red x}")}, failingWriter{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrWrite))
		assert.Contains(t, err.Error(), "disk full")
	}
}

type aliases map[string][]style.Attribute

func (a aliases) Resolve(name string) ([]style.Attribute, bool) {
	if attr, ok := style.Lookup(name); ok {
		return []style.Attribute{attr}, true
	}
	attrs, ok := a[name]
	return attrs, ok
}

func TestRenderWithResolver(t *testing.T) {
	rd := render.New(render.WithResolver(aliases{"danger": {style.Bold, style.Red}}))
	got, err := rd.String([]markup.Segment{markup.Lit("{danger boom}")})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1;31mboom\x1b[0m", got)
}

func TestSprintf(t *testing.T) {
	rd := render.New()

	got, err := rd.Sprintf("{bold %d files} in {cyan %s}", 3, "{red}")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m3 files\x1b[0m in \x1b[36m{red}\x1b[0m", got)

	var buf bytes.Buffer
	require.NoError(t, rd.Fprintf(&buf, "{dim %s}", "x"))
	assert.Equal(t, "\x1b[2mx\x1b[0m", buf.String())
}

func TestMust(t *testing.T) {
	rd := render.New()
	assert.Equal(t, "\x1b[31mok\x1b[0m", render.Must(rd.Sprintf("{red ok}")))
	assert.Panics(t, func() {
		render.Must(rd.Sprintf("{red oops"))
	})
}
