// Package theme provides named style aliases loaded from YAML.
//
// A theme file maps alias names to style lists made of built-in attribute
// names:
//
//	name: default
//	styles:
//	  error: bold.red
//	  muted: dim
//
// A Theme implements markup.Resolver. Built-in attribute names always
// resolve to themselves, so an alias can never shadow "red" or "bold".
package theme

import (
	_ "embed"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/arthur-debert/tinct/pkg/errors"
	"github.com/arthur-debert/tinct/pkg/style"
	"gopkg.in/yaml.v3"
)

//go:embed theme.yaml
var embeddedTheme []byte

// File is the on-disk form of a theme.
type File struct {
	Name   string            `yaml:"name"`
	Styles map[string]string `yaml:"styles"`
}

// Theme resolves alias names to attributes.
type Theme struct {
	name    string
	aliases map[string][]style.Attribute
}

// Parse decodes and validates a theme.
func Parse(data []byte) (*Theme, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeLoad, "failed to parse theme")
	}
	return FromFile(f)
}

// Load reads a theme from path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "theme file %s not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme %s", path).
			WithDetail("path", path)
	}

	t, err := Parse(data)
	if err != nil {
		if te, ok := err.(*errors.TinctError); ok {
			return nil, te.WithDetail("path", path)
		}
		return nil, err
	}
	return t, nil
}

// Default returns the theme embedded in the binary.
func Default() *Theme {
	t, err := Parse(embeddedTheme)
	if err != nil {
		panic("embedded theme is invalid: " + err.Error())
	}
	return t
}

// FromFile validates f and builds a Theme from it.
func FromFile(f File) (*Theme, error) {
	t := &Theme{
		name:    f.Name,
		aliases: make(map[string][]style.Attribute, len(f.Styles)),
	}

	for alias, def := range f.Styles {
		if err := validateAlias(alias); err != nil {
			return nil, err
		}
		attrs, err := parseDefinition(alias, def)
		if err != nil {
			return nil, err
		}
		t.aliases[alias] = attrs
	}
	return t, nil
}

func validateAlias(alias string) error {
	if alias == "" {
		return errors.New(errors.ErrThemeInvalid, "theme alias name is empty")
	}
	if _, ok := style.Lookup(alias); ok {
		return errors.Newf(errors.ErrThemeInvalid, "theme alias %q shadows a built-in attribute", alias).
			WithDetail(errors.DetailName, alias)
	}
	for _, r := range alias {
		if unicode.IsSpace(r) || strings.ContainsRune(".~{}", r) {
			return errors.Newf(errors.ErrThemeInvalid, "theme alias %q contains %q", alias, r).
				WithDetail(errors.DetailName, alias)
		}
	}
	return nil
}

func parseDefinition(alias, def string) ([]style.Attribute, error) {
	def = strings.TrimSpace(def)
	if def == "" {
		return nil, errors.Newf(errors.ErrThemeInvalid, "theme alias %q has no attributes", alias).
			WithDetail(errors.DetailName, alias)
	}

	var attrs []style.Attribute
	for _, name := range strings.Split(def, ".") {
		a, ok := style.Lookup(name)
		if !ok {
			return nil, errors.Newf(errors.ErrThemeInvalid, "theme alias %q uses unknown attribute %q", alias, name).
				WithDetail(errors.DetailName, alias)
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

// Name returns the theme's declared name.
func (t *Theme) Name() string {
	return t.name
}

// Resolve implements markup.Resolver.
func (t *Theme) Resolve(name string) ([]style.Attribute, bool) {
	if a, ok := style.Lookup(name); ok {
		return []style.Attribute{a}, true
	}
	attrs, ok := t.aliases[name]
	return attrs, ok
}

// Aliases returns the alias names in sorted order.
func (t *Theme) Aliases() []string {
	names := make([]string, 0, len(t.aliases))
	for name := range t.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style returns the set an alias produces on an empty base.
func (t *Theme) Style(alias string) (style.Set, bool) {
	attrs, ok := t.aliases[alias]
	if !ok {
		return style.Empty(), false
	}
	return style.Of(attrs...), true
}

// Merge returns a theme with the aliases of t overridden by those of other.
func (t *Theme) Merge(other *Theme) *Theme {
	merged := &Theme{
		name:    t.name,
		aliases: make(map[string][]style.Attribute, len(t.aliases)+len(other.aliases)),
	}
	for k, v := range t.aliases {
		merged.aliases[k] = v
	}
	for k, v := range other.aliases {
		merged.aliases[k] = v
	}
	if other.name != "" {
		merged.name = other.name
	}
	return merged
}
