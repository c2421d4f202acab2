package placeholder

import (
	"strings"
)

// DefaultIdentifier prefixes every token in templates, as in "%parkour_leader%".
const DefaultIdentifier = "parkour"

// Expander substitutes %<identifier>_<token>% occurrences in text.
type Expander struct {
	resolver   *Resolver
	identifier string
}

// NewExpander creates an Expander. An empty identifier means DefaultIdentifier.
func NewExpander(r *Resolver, identifier string) *Expander {
	if identifier == "" {
		identifier = DefaultIdentifier
	}
	return &Expander{resolver: r, identifier: identifier}
}

// Expand replaces every placeholder it can resolve. Absent tokens and text
// that is not a placeholder are left as written; a malformed rank token
// fails the whole call.
func (e *Expander) Expand(ctx Context, template string) (string, error) {
	prefix := "%" + e.identifier + "_"
	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		start := strings.Index(rest, prefix)
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start+len(prefix):], '%')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start + len(prefix)

		b.WriteString(rest[:start])
		name := rest[start+len(prefix) : end]
		v, ok, err := e.resolver.Resolve(ctx, name)
		if err != nil {
			return "", err
		}
		if ok {
			b.WriteString(v)
		} else {
			b.WriteString(rest[start : end+1])
		}
		rest = rest[end+1:]
	}
	return b.String(), nil
}
