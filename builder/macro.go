package builder

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// MacroInvocationIRI mints the IRI for a macro call site under its module:
// <module>/invocation/<index>-<qualified-name>.
func MacroInvocationIRI(baseIRI, modulePath string, index int, qualifiedName string) quad.IRI {
	return entityIRI(baseIRI, modulePath, "invocation", itoa(index)+"-"+EscapeLocalName(qualifiedName))
}

// macroIndex picks the IRI index for an invocation: the extraction-assigned
// invocation counter when present, the source line number otherwise.
func macroIndex(m extract.MacroInvocation) int {
	if m.InvocationIndex != nil {
		return *m.InvocationIndex
	}
	if m.Location != nil {
		return m.Location.StartLine
	}
	return 0
}

// qualifiedMacroName joins the resolved module path and the macro name.
// Unresolved macros qualify as the bare name.
func qualifiedMacroName(m extract.MacroInvocation) string {
	if len(m.Module) > 0 {
		return JoinModule(m.Module) + "." + m.Name
	}
	return m.Name
}

// BuildMacroInvocation emits the triples for one macro call site. Name,
// arity, category, and resolution status are always present; the
// macroModule literal is emitted only when the macro actually resolved to a
// module, never as an empty placeholder.
func BuildMacroInvocation(m extract.MacroInvocation, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: macro invocation %s", ErrNoModuleContext, m.Name)
	}

	iri := MacroInvocationIRI(ctx.BaseIRI(), modPath, macroIndex(m), qualifiedMacroName(m))
	moduleIRI := quad.IRI(ctx.BaseIRI() + modPath)

	triples := []rdf.Triple{
		rdf.Type(iri, quad.IRI(structure.ClassMacroInvocation)),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropMacroName), m.Name),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropMacroArity), m.Arity),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropMacroCategory), string(m.Category)),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropResolutionStatus), string(m.Resolution)),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), moduleIRI),
	}

	if len(m.Module) > 0 {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropMacroModule), JoinModule(m.Module)))
	}

	triples = append(triples, locationTriples(iri, m.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildMacroInvocations builds every invocation in input order.
func BuildMacroInvocations(macros []extract.MacroInvocation, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(macros))
	var all []rdf.Triple
	for _, m := range macros {
		iri, triples, err := BuildMacroInvocation(m, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
