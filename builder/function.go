package builder

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/core"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// FunctionIRI mints the IRI for a named function: the module path followed
// by the escaped name and arity.
func FunctionIRI(baseIRI string, module []string, name string, arity int) quad.IRI {
	return entityIRI(baseIRI, JoinModule(module), EscapeLocalName(name), itoa(arity))
}

// functionClass selects the RDF class for a definition kind.
func functionClass(kind extract.FunctionKind) (quad.IRI, error) {
	switch kind {
	case extract.KindDef:
		return quad.IRI(structure.ClassPublicFunction), nil
	case extract.KindDefp:
		return quad.IRI(structure.ClassPrivateFunction), nil
	case extract.KindDefguard, extract.KindDefguardp:
		return quad.IRI(structure.ClassGuardFunction), nil
	case extract.KindDefdelegate:
		return quad.IRI(structure.ClassDelegatedFunction), nil
	default:
		return "", fmt.Errorf("builder: unknown function kind %q", kind)
	}
}

// BuildFunction emits the triples for a named function definition. The
// context must carry a resolvable module (enclosing module segments or a
// parent module IRI); calling without one is a caller bug and returns
// ErrNoModuleContext.
func BuildFunction(fn extract.Function, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: function %s/%d", ErrNoModuleContext, fn.Name, fn.Arity)
	}

	class, err := functionClass(fn.Kind)
	if err != nil {
		return "", nil, err
	}

	iri := entityIRI(ctx.BaseIRI(), modPath, EscapeLocalName(fn.Name), itoa(fn.Arity))
	moduleIRI := quad.IRI(ctx.BaseIRI() + modPath)

	triples := []rdf.Triple{
		rdf.Type(iri, class),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropFunctionName), fn.Name),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropArity), fn.Arity),
	}

	// minArity is asserted only when default parameters make it differ.
	if fn.MinArity != fn.Arity {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropMinArity), fn.MinArity))
	}

	if fn.Doc != nil {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(core.PropDocumentation), *fn.Doc))
	}

	triples = append(triples,
		rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), moduleIRI),
		rdf.ObjectProperty(moduleIRI, quad.IRI(structure.PropContainsFunction), iri),
	)

	if fn.Delegate != nil {
		target := FunctionIRI(ctx.BaseIRI(), fn.Delegate.Module, fn.Delegate.Function, fn.Delegate.Arity)
		triples = append(triples, rdf.ObjectProperty(iri, quad.IRI(structure.PropDelegatesTo), target))
	}

	triples = append(triples, locationTriples(iri, fn.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildFunctions builds every function in input order, concatenating the
// triple streams in that order.
func BuildFunctions(fns []extract.Function, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(fns))
	var all []rdf.Triple
	for _, fn := range fns {
		iri, triples, err := BuildFunction(fn, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
