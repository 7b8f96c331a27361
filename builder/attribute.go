package builder

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semcode/extract"
	"github.com/c360studio/semcode/rdf"
	"github.com/c360studio/semcode/vocabulary/structure"
)

// AttributeIRI mints the IRI for the attribute at 0-indexed position under
// its module.
func AttributeIRI(baseIRI string, module []string, index int) quad.IRI {
	return entityIRI(baseIRI, JoinModule(module), "attribute", itoa(index))
}

// attributeClass selects the RDF class for an attribute subkind. The match
// is exhaustive over the closed AttributeKind enum.
func attributeClass(kind extract.AttributeKind) (quad.IRI, error) {
	switch kind {
	case extract.AttrDoc:
		return quad.IRI(structure.ClassDocAttribute), nil
	case extract.AttrModuleDoc:
		return quad.IRI(structure.ClassModuleDoc), nil
	case extract.AttrDeprecated:
		return quad.IRI(structure.ClassDeprecatedAttr), nil
	case extract.AttrSince:
		return quad.IRI(structure.ClassSinceAttribute), nil
	case extract.AttrDerive:
		return quad.IRI(structure.ClassDeriveAttribute), nil
	case extract.AttrBehaviour:
		return quad.IRI(structure.ClassBehaviourAttribute), nil
	case extract.AttrCustom:
		return quad.IRI(structure.ClassAttribute), nil
	default:
		return "", fmt.Errorf("builder: unknown attribute kind %q", kind)
	}
}

// BuildAttribute emits the triples for one module attribute at the given
// 0-indexed position.
func BuildAttribute(attr extract.Attribute, index int, ctx *Context) (quad.IRI, []rdf.Triple, error) {
	if err := ctx.Validate(); err != nil {
		return "", nil, err
	}
	modPath, ok := ctx.modulePath()
	if !ok {
		return "", nil, fmt.Errorf("%w: attribute @%s", ErrNoModuleContext, attr.Name)
	}

	class, err := attributeClass(attr.Kind)
	if err != nil {
		return "", nil, err
	}

	iri := entityIRI(ctx.BaseIRI(), modPath, "attribute", itoa(index))
	moduleIRI := quad.IRI(ctx.BaseIRI() + modPath)

	triples := []rdf.Triple{
		rdf.Type(iri, class),
		rdf.DatatypeProperty(iri, quad.IRI(structure.PropAttributeName), attr.Name),
		rdf.ObjectProperty(iri, quad.IRI(structure.PropBelongsTo), moduleIRI),
	}

	if attr.Value != "" {
		triples = append(triples, rdf.DatatypeProperty(iri, quad.IRI(structure.PropAttributeValue), attr.Value))
	}

	triples = append(triples, locationTriples(iri, attr.Location, ctx.FilePath())...)

	return iri, rdf.Deduplicate(triples), nil
}

// BuildAttributes builds every attribute in input order with sequential
// 0-based indices.
func BuildAttributes(attrs []extract.Attribute, ctx *Context) ([]quad.IRI, []rdf.Triple, error) {
	iris := make([]quad.IRI, 0, len(attrs))
	var all []rdf.Triple
	for i, attr := range attrs {
		iri, triples, err := BuildAttribute(attr, i, ctx)
		if err != nil {
			return nil, nil, err
		}
		iris = append(iris, iri)
		all = append(all, triples...)
	}
	return iris, rdf.Deduplicate(all), nil
}
