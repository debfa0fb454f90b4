// Package tags converts XML-style tag markup into brace markup.
//
// Older templates wrap styled text in tags named after the style:
//
//	<bold.red>failed</bold.red> see <underline>log.txt</underline>
//
// Convert rewrites this as
//
//	{bold.red failed} see {underline log.txt}
//
// Nested tags are flattened: every text node becomes one block whose style
// list is the dot-joined chain of enclosing tag names, outermost first,
// which resolves to the same style as the nested form. Literal braces in
// text are escaped. Entities are decoded, comments and processing
// instructions are dropped.
package tags

import (
	"strings"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/beevik/etree"
)

const rootTag = "tinct-root"

// Convert rewrites tag markup as brace markup.
func Convert(input string) (string, error) {
	root, err := parse(input)
	if err != nil {
		return "", err
	}

	c := &converter{}
	c.walk(root, nil)
	return c.out.String(), nil
}

// Strip returns the text of input with every tag removed.
func Strip(input string) (string, error) {
	root, err := parse(input)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	stripText(root, &b)
	return b.String(), nil
}

func parse(input string) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromString("<" + rootTag + ">" + input + "</" + rootTag + ">"); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid tag markup")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrInvalidInput, "invalid tag markup")
	}
	return root, nil
}

type converter struct {
	out strings.Builder
	// closed is true when the output ends with a block's closing brace.
	closed bool
}

func (c *converter) walk(el *etree.Element, chain []string) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			c.text(t.Data, chain)
		case *etree.Element:
			c.walk(t, append(chain[:len(chain):len(chain)], t.FullTag()))
		}
	}
}

func (c *converter) text(data string, chain []string) {
	if data == "" {
		return
	}
	escaped := escape(data)

	switch {
	case len(chain) > 0:
		c.out.WriteString("{" + strings.Join(chain, ".") + " " + escaped + "}")
		c.closed = true
	case c.closed && escaped[0] == '}':
		// "}" + "}}" would read as an escape followed by a close, so the
		// text goes into a block whose style change is a no-op.
		c.out.WriteString("{~bold " + escaped + "}")
	default:
		c.out.WriteString(escaped)
		c.closed = false
	}
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "{", "{{")
	return strings.ReplaceAll(s, "}", "}}")
}

func stripText(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			stripText(t, b)
		}
	}
}
