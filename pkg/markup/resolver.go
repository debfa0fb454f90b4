package markup

import "github.com/arthur-debert/tinct/pkg/style"

// Resolver maps a style name from a style list to the attributes it stands
// for.
type Resolver interface {
	Resolve(name string) ([]style.Attribute, bool)
}

// Builtin resolves the fixed attribute names of package style.
type Builtin struct{}

// Resolve implements Resolver.
func (Builtin) Resolve(name string) ([]style.Attribute, bool) {
	a, ok := style.Lookup(name)
	if !ok {
		return nil, false
	}
	return []style.Attribute{a}, true
}
