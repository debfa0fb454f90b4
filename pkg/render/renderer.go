// Package render turns markup segments into terminal output.
//
// A Renderer parses segments with a markup.Parser, tracks the style that is
// currently active on the sink, and writes only the transitions between
// consecutive runs. Output always ends with every attribute cleared.
//
// By default output is buffered and written in one call once parsing has
// succeeded, so a markup error leaves the sink untouched. In streaming mode
// each run is written as soon as the parser produces it; when an error
// occurs the runs before it have already been written, followed by a reset
// if they left a style active.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/tinct/pkg/ansi"
	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/logging"
	"github.com/arthur-debert/tinct/pkg/markup"
	"github.com/arthur-debert/tinct/pkg/style"
	"github.com/rs/zerolog"
)

// Renderer holds immutable configuration and may be shared between
// goroutines as long as each call writes to its own sink.
type Renderer struct {
	parser    *markup.Parser
	resolver  markup.Resolver
	color     bool
	streaming bool
	logger    zerolog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithResolver sets the resolver used for style names.
func WithResolver(r markup.Resolver) Option {
	return func(rd *Renderer) {
		rd.resolver = r
	}
}

// WithColor enables or disables escape sequences. With color disabled only
// the visible text is written. Enabled by default.
func WithColor(enabled bool) Option {
	return func(rd *Renderer) {
		rd.color = enabled
	}
}

// WithStreaming makes Render write each run as it is produced instead of
// buffering the whole output.
func WithStreaming(enabled bool) Option {
	return func(rd *Renderer) {
		rd.streaming = enabled
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(rd *Renderer) {
		rd.logger = logger
	}
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	rd := &Renderer{
		color:  true,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(rd)
	}

	parserOpts := []markup.Option{markup.WithLogger(rd.logger)}
	if rd.resolver != nil {
		parserOpts = append(parserOpts, markup.WithResolver(rd.resolver))
	}
	rd.parser = markup.NewParser(parserOpts...)
	return rd
}

// Color reports whether escape sequences are written.
func (rd *Renderer) Color() bool {
	return rd.color
}

// Streaming reports whether runs are written as they are produced.
func (rd *Renderer) Streaming() bool {
	return rd.streaming
}

// Render writes the styled form of segments to w.
func (rd *Renderer) Render(segments []markup.Segment, w io.Writer) error {
	if rd.streaming {
		return rd.render(segments, w)
	}

	var buf strings.Builder
	if err := rd.render(segments, &buf); err != nil {
		return err
	}
	if _, err := io.WriteString(w, buf.String()); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write rendered output")
	}
	return nil
}

// String renders segments into a string.
func (rd *Renderer) String(segments []markup.Segment) (string, error) {
	var buf strings.Builder
	if err := rd.render(segments, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Sprintf renders a printf-style markup template. Arguments are formatted
// with their verbs and are never interpreted as markup.
func (rd *Renderer) Sprintf(format string, args ...interface{}) (string, error) {
	return rd.String(markup.Format(format, args...))
}

// Fprintf renders a printf-style markup template to w.
func (rd *Renderer) Fprintf(w io.Writer, format string, args ...interface{}) error {
	return rd.Render(markup.Format(format, args...), w)
}

// sink writes runs and remembers the style active on the terminal.
type sink struct {
	w       io.Writer
	color   bool
	current style.Set
	runs    int
}

func (s *sink) write(text string) error {
	if _, err := io.WriteString(s.w, text); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write rendered output")
	}
	return nil
}

func (s *sink) run(r markup.Run) error {
	s.runs++
	if !s.color {
		return s.write(r.Text)
	}
	out := ansi.EncodeTransition(s.current, r.Style) + r.Text
	s.current = r.Style
	return s.write(out)
}

func (s *sink) close() error {
	if !s.color {
		return nil
	}
	out := ansi.EncodeTransition(s.current, style.Empty())
	s.current = style.Empty()
	return s.write(out)
}

func (rd *Renderer) render(segments []markup.Segment, w io.Writer) error {
	defer logging.LogOperationStart(rd.logger, "render")()

	s := &sink{w: w, color: rd.color}
	if err := rd.parser.Parse(segments, s.run); err != nil {
		// Close any style left active by runs already written.
		_ = s.close()
		rd.logger.Debug().
			Err(err).
			Int("runs", s.runs).
			Bool("streaming", rd.streaming).
			Msg("render failed")
		return err
	}
	if err := s.close(); err != nil {
		return err
	}

	rd.logger.Debug().
		Int("segments", len(segments)).
		Int("runs", s.runs).
		Bool("color", rd.color).
		Msg("rendered")
	return nil
}

// Must panics if err is non-nil and otherwise returns s. It is meant for
// templates fixed at compile time.
func Must(s string, err error) string {
	if err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	return s
}
