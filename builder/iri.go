package builder

import (
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"
)

// localNameEscapes maps characters that are legal in Elixir identifiers but
// illegal (or structural) in an IRI path segment to their percent-encoded
// form. Applied only to local name segments, never to the structural
// slashes and dots of the path.
var localNameEscapes = map[rune]string{
	'?':  "%3F",
	'!':  "%21",
	'/':  "%2F",
	'#':  "%23",
	'%':  "%25",
	'<':  "%3C",
	'>':  "%3E",
	'=':  "%3D",
	'&':  "%26",
	'|':  "%7C",
	'^':  "%5E",
	'~':  "%7E",
	'*':  "%2A",
	'+':  "%2B",
	'"':  "%22",
	'`':  "%60",
	' ':  "%20",
	'\\': "%5C",
}

// EscapeLocalName percent-encodes the characters of a local name segment
// that may not appear raw in an IRI path. Underscores, letters, and digits
// pass through untouched.
func EscapeLocalName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if esc, ok := localNameEscapes[r]; ok {
			sb.WriteString(esc)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// JoinModule renders a module path as its dot-joined source form,
// e.g. ["MyApp","Users"] -> "MyApp.Users".
func JoinModule(segments []string) string {
	return strings.Join(segments, ".")
}

// ModuleIRI mints the IRI for a module path under baseIRI.
func ModuleIRI(baseIRI string, module []string) quad.IRI {
	return quad.IRI(baseIRI + JoinModule(module))
}

// entityIRI joins path parts under baseIRI with slash separators.
func entityIRI(baseIRI string, parts ...string) quad.IRI {
	return quad.IRI(baseIRI + strings.Join(parts, "/"))
}

// itoa is shorthand for decimal formatting of indices.
func itoa(n int) string { return strconv.Itoa(n) }
