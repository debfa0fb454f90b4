package markup

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Format splits a printf-style format string into segments. The text between
// verbs becomes Literal segments and is scanned for markup; each verb becomes
// an Expression marker holding the verb as written, followed by a Value
// holding its formatted argument. "%%" is a literal percent sign.
//
// Verbs accept everything package fmt accepts, including "*" for width and
// precision and explicit argument indexes such as "%[2]s". Missing, extra
// and badly indexed arguments are reported inline the way package fmt
// reports them.
//
//	markup.Format("{bold %s} has %d {red errors}", name, n)
func Format(format string, args ...interface{}) []Segment {
	var (
		segs      []Segment
		lit       strings.Builder
		argNext   int
		reordered bool
	)

	flushLit := func() {
		if lit.Len() > 0 {
			segs = append(segs, Lit(lit.String()))
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		c := format[i]
		if c != '%' {
			lit.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			lit.WriteByte('%')
			i += 2
			continue
		}

		v := parseVerb(format, i, argNext, len(args))
		source := format[i:v.end]
		i = v.end
		argNext = v.argNext
		reordered = reordered || v.reordered

		if v.verb == '%' && !v.badIndex {
			lit.WriteByte('%')
			continue
		}

		flushLit()
		segs = append(segs, Expr(source))
		segs = append(segs, Val(v.format(args)))
	}
	flushLit()

	if !reordered && argNext < len(args) {
		extra := make([]string, 0, len(args)-argNext)
		for _, arg := range args[argNext:] {
			extra = append(extra, fmt.Sprintf("%T=%v", arg, arg))
		}
		segs = append(segs, Val("%!(EXTRA "+strings.Join(extra, ", ")+")"))
	}
	return segs
}

// verb is one parsed conversion.
type verb struct {
	end       int    // index just past the verb in the format
	text      string // the verb with argument indexes removed
	verb      rune   // the conversion character, or 0 if absent
	args      []int  // arguments consumed, in the order fmt expects them
	missing   bool   // an argument was needed past the end
	badIndex  bool   // an index was malformed or out of range
	reordered bool   // an explicit index was used
	argNext   int    // the argument the next verb starts from
}

// parseVerb parses the verb starting at the '%' at format[start]. argNext is
// the argument the verb consumes unless an index says otherwise.
func parseVerb(format string, start, argNext, nargs int) verb {
	v := verb{argNext: argNext}
	var b strings.Builder
	b.WriteByte('%')
	i := start + 1

	for i < len(format) && strings.IndexByte("+-# 0", format[i]) >= 0 {
		b.WriteByte(format[i])
		i++
	}

	// index handles an optional "[n]" at format[i].
	index := func() {
		if i >= len(format) || format[i] != '[' {
			return
		}
		v.reordered = true
		closing := strings.IndexByte(format[i:], ']')
		if closing < 0 {
			v.badIndex = true
			i++
			return
		}
		n, err := strconv.Atoi(format[i+1 : i+closing])
		if err != nil || n < 1 || n > nargs {
			v.badIndex = true
		} else {
			v.argNext = n - 1
		}
		i += closing + 1
	}
	consume := func() {
		if v.argNext < nargs {
			v.args = append(v.args, v.argNext)
			v.argNext++
		} else {
			v.missing = true
		}
	}
	// number handles a width or precision, literal or "*".
	number := func() {
		index()
		if i < len(format) && format[i] == '*' {
			b.WriteByte('*')
			i++
			consume()
			return
		}
		for i < len(format) && format[i] >= '0' && format[i] <= '9' {
			b.WriteByte(format[i])
			i++
		}
	}

	number()
	if i < len(format) && format[i] == '.' {
		b.WriteByte('.')
		i++
		number()
	}
	index()

	if i < len(format) {
		r, size := utf8.DecodeRuneInString(format[i:])
		b.WriteRune(r)
		i += size
		v.verb = r
		if r != '%' {
			consume()
		}
	}

	v.end = i
	v.text = b.String()
	return v
}

// format renders the verb against args, mirroring fmt's inline reports.
func (v verb) format(args []interface{}) string {
	switch {
	case v.verb == 0:
		return "%!(NOVERB)"
	case v.badIndex:
		return "%!" + string(v.verb) + "(BADINDEX)"
	case v.missing:
		return "%!" + string(v.verb) + "(MISSING)"
	}
	picked := make([]interface{}, len(v.args))
	for i, n := range v.args {
		picked[i] = args[n]
	}
	return fmt.Sprintf(v.text, picked...)
}
