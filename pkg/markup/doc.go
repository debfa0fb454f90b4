/*
Package markup interprets the brace markup used to declare styled regions
inline in literal text.

# Syntax

A block opens with an unescaped "{", a dot-separated list of style names, and
a single whitespace character. Everything up to the matching "}" is styled:

	{red hi}
	{bold.red Both {~red just bold} both again}
	Use {{literal}} here

Names are the case-sensitive attribute names of package style ("red",
"bgBlue", "brightCyan", "bold", ...) or aliases supplied by a Resolver.
A leading "~" removes an attribute for the extent of the block. Blocks nest,
and a nested block starts from the style of its enclosing block. "{{" and
"}}" produce literal braces. Escapes are matched first, so two blocks that
close back to back must be separated: write "{red a {bold b} }" rather than
"{red a {bold b}}".

# Segments

Templates arrive as a sequence of segments produced by an interpolation
front end: Literal text, which is scanned for markup, Expression markers,
which are ignored, and Values, which are stringified and emitted verbatim
under the active style. Values are never scanned for markup, so user data
containing braces cannot alter styling.

	segs := []markup.Segment{
		markup.Lit("{bold Hello, }"),
		markup.Val(name),
	}

Format builds segments from a printf-style format string.

# Errors

Malformed markup fails with a *errors.TinctError whose code is one of
ErrUnknownAttribute, ErrUnmatchedOpenBrace, ErrUnmatchedCloseBrace or
ErrEmptyStyleList. The error details carry the segment index and the byte
offset within that segment; Position extracts them. Parsing stops at the
first error.
*/
package markup
