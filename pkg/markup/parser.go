package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/tinct/pkg/style"
	"github.com/rs/zerolog"
)

// Run is a stretch of visible text sharing one style.
type Run struct {
	Text  string
	Style style.Set
}

// Parser turns segment sequences into styled runs. A Parser holds only
// configuration and may be shared between goroutines.
type Parser struct {
	resolver Resolver
	logger   zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithResolver sets the resolver used for style names. The default resolves
// only built-in attribute names.
func WithResolver(r Resolver) Option {
	return func(p *Parser) {
		if r != nil {
			p.resolver = r
		}
	}
}

// WithLogger sets the logger used for trace output.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		resolver: Builtin{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse interprets segments and calls emit for each styled run, in order.
// Adjacent text with the same style is coalesced and empty runs are never
// emitted. Parsing stops at the first markup error or the first error
// returned by emit; runs emitted before that point are not retracted.
func (p *Parser) Parse(segments []Segment, emit func(Run) error) error {
	m := &machine{
		resolver: p.resolver,
		logger:   p.logger,
		emit:     emit,
		stack:    []frame{{}},
	}

	for i, seg := range segments {
		var err error
		switch seg.Kind {
		case KindLiteral:
			err = m.literal(i, seg.Text)
		case KindValue:
			err = m.write(seg.String())
		}
		if err != nil {
			return err
		}
	}
	return m.finish()
}

// Collect parses segments and returns every run, or the first error.
func (p *Parser) Collect(segments []Segment) ([]Run, error) {
	var runs []Run
	err := p.Parse(segments, func(r Run) error {
		runs = append(runs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

type state uint8

const (
	stateText state = iota
	stateStyleList
)

// frame is one level of block nesting. The root frame has the empty style.
type frame struct {
	style   style.Set
	segment int
	offset  int
}

// rawToken is a style-list element before name resolution.
type rawToken struct {
	negated bool
	name    string
	offset  int
}

type machine struct {
	resolver Resolver
	logger   zerolog.Logger
	emit     func(Run) error

	state state
	stack []frame

	pending      strings.Builder
	pendingStyle style.Set

	// style list being collected
	listSegment int
	listOffset  int
	tokens      []rawToken
	tokNegated  bool
	tokStart    int
	tokOffset   int
}

func (m *machine) top() frame {
	return m.stack[len(m.stack)-1]
}

func (m *machine) literal(seg int, text string) error {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch m.state {
		case stateText:
			switch r {
			case '{':
				if i+1 < len(text) && text[i+1] == '{' {
					if err := m.write("{"); err != nil {
						return err
					}
					i += 2
					continue
				}
				m.beginList(seg, i)
			case '}':
				if i+1 < len(text) && text[i+1] == '}' {
					if err := m.write("}"); err != nil {
						return err
					}
					i += 2
					continue
				}
				if err := m.pop(seg, i); err != nil {
					return err
				}
			default:
				if err := m.write(text[i : i+size]); err != nil {
					return err
				}
			}

		case stateStyleList:
			switch {
			case unicode.IsSpace(r):
				if err := m.endList(text, i); err != nil {
					return err
				}
			case r == '.':
				if err := m.endToken(text, i); err != nil {
					return err
				}
			case r == '~' && m.tokStart < 0 && !m.tokNegated:
				m.tokNegated = true
			case r == '}' && m.tokStart < 0:
				if len(m.tokens) == 0 && !m.tokNegated {
					return errEmptyStyleList(m.listSegment, m.listOffset)
				}
				return errEmptyStyleName(m.listSegment, m.tokOffset)
			default:
				if m.tokStart < 0 {
					m.tokStart = i
				}
			}
		}
		i += size
	}

	if m.state == stateStyleList {
		return errUnmatchedOpenBrace(m.listSegment, m.listOffset)
	}
	return nil
}

func (m *machine) beginList(seg, offset int) {
	m.state = stateStyleList
	m.listSegment = seg
	m.listOffset = offset
	m.tokens = m.tokens[:0]
	m.resetToken(offset + 1)
}

func (m *machine) resetToken(offset int) {
	m.tokNegated = false
	m.tokStart = -1
	m.tokOffset = offset
}

// endToken closes the token that ends just before text[end].
func (m *machine) endToken(text string, end int) error {
	if m.tokStart < 0 {
		return errEmptyStyleName(m.listSegment, m.tokOffset)
	}
	m.tokens = append(m.tokens, rawToken{
		negated: m.tokNegated,
		name:    text[m.tokStart:end],
		offset:  m.tokOffset,
	})
	m.resetToken(end + 1)
	return nil
}

// endList handles the whitespace at text[end] that terminates a style list:
// the tokens are resolved against the enclosing frame and a new frame is
// pushed.
func (m *machine) endList(text string, end int) error {
	if len(m.tokens) == 0 && m.tokStart < 0 && !m.tokNegated {
		return errEmptyStyleList(m.listSegment, m.listOffset)
	}
	if err := m.endToken(text, end); err != nil {
		return err
	}

	var tokens []style.Token
	for _, raw := range m.tokens {
		attrs, ok := m.resolver.Resolve(raw.name)
		if !ok {
			return errUnknownAttribute(raw.name, m.listSegment, raw.offset)
		}
		for _, a := range attrs {
			tokens = append(tokens, style.Token{Negated: raw.negated, Attr: a})
		}
	}

	parent := m.top()
	next := frame{
		style:   style.Apply(parent.style, tokens),
		segment: m.listSegment,
		offset:  m.listOffset,
	}
	m.stack = append(m.stack, next)
	m.state = stateText

	m.logger.Trace().
		Int("depth", len(m.stack)-1).
		Str("style", next.style.String()).
		Int("segment", next.segment).
		Int("offset", next.offset).
		Msg("block opened")
	return nil
}

func (m *machine) pop(seg, offset int) error {
	if len(m.stack) == 1 {
		return errUnmatchedCloseBrace(seg, offset)
	}
	m.stack = m.stack[:len(m.stack)-1]

	m.logger.Trace().
		Int("depth", len(m.stack)-1).
		Str("style", m.top().style.String()).
		Msg("block closed")
	return nil
}

// write appends visible text under the current style, emitting the pending
// run first if the style changed.
func (m *machine) write(text string) error {
	if text == "" {
		return nil
	}
	current := m.top().style
	if m.pending.Len() > 0 && m.pendingStyle != current {
		if err := m.flush(); err != nil {
			return err
		}
	}
	m.pendingStyle = current
	m.pending.WriteString(text)
	return nil
}

func (m *machine) flush() error {
	if m.pending.Len() == 0 {
		return nil
	}
	run := Run{Text: m.pending.String(), Style: m.pendingStyle}
	m.pending.Reset()
	return m.emit(run)
}

func (m *machine) finish() error {
	if len(m.stack) > 1 {
		open := m.top()
		return errUnmatchedOpenBrace(open.segment, open.offset)
	}
	return m.flush()
}
